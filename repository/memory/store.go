// Package memory provides an in-process CredentialStore for tests and for
// embedders that supply their own secure persistence.
package memory

import (
	"context"
	"sync"

	"github.com/oncoflow/mobilecore/domain"
)

// Store keeps the pair behind a mutex; the pair is read and replaced as a
// single value, so readers never observe a partial write.
type Store struct {
	mu     sync.RWMutex
	creds  domain.Credentials
	loaded bool
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

func (s *Store) Get(ctx context.Context) (domain.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, domain.WrapError(domain.ErrCodeStoreUnavailable, "store context done", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.Credentials{}, domain.ErrNotAuthenticated
	}
	return s.creds, nil
}

func (s *Store) Set(ctx context.Context, creds domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeStoreUnavailable, "store context done", err)
	}
	if !creds.Valid() {
		return domain.ErrIncompleteCredentials
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	s.loaded = true
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeStoreUnavailable, "store context done", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = domain.Credentials{}
	s.loaded = false
	return nil
}
