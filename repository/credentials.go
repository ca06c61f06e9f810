package repository

import (
	"context"

	"github.com/oncoflow/mobilecore/domain"
)

// CredentialStore owns the persisted token pair. Implementations must be safe
// for concurrent use: Get never observes a partially written pair, Set
// replaces the pair atomically and Clear removes it atomically.
//
// Get returns domain.ErrNotAuthenticated when no pair is stored. Medium
// failures are reported with domain.ErrCodeStoreUnavailable and must never be
// collapsed into "logged out".
type CredentialStore interface {
	Get(ctx context.Context) (domain.Credentials, error)
	Set(ctx context.Context, creds domain.Credentials) error
	Clear(ctx context.Context) error
}
