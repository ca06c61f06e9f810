package boltdb

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncoflow/mobilecore/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "keystore.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	pair := domain.Credentials{AccessToken: "A1", RefreshToken: "R1"}
	require.NoError(t, store.Set(ctx, pair))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, pair, got)

	// Replace wholesale.
	next := domain.Credentials{AccessToken: "A2", RefreshToken: "R2"}
	require.NoError(t, store.Set(ctx, next))
	got, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestStoreRejectsIncompletePair(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	err := store.Set(ctx, domain.Credentials{AccessToken: "A1"})
	assert.ErrorIs(t, err, domain.ErrIncompleteCredentials)
	err = store.Set(ctx, domain.Credentials{RefreshToken: "R1"})
	assert.ErrorIs(t, err, domain.ErrIncompleteCredentials)

	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestStoreUnavailableDistinctFromLoggedOut(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Close())
	store.db = nil

	_, err := store.Get(context.Background())
	assert.True(t, domain.IsCode(err, domain.ErrCodeStoreUnavailable))
	assert.NotErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.Set(ctx, domain.Credentials{AccessToken: "A0", RefreshToken: "R0"}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			pair := domain.Credentials{AccessToken: "A", RefreshToken: "R"}
			_ = store.Set(ctx, pair)
			got, err := store.Get(ctx)
			if err == nil {
				// Never a half-written pair.
				assert.True(t, got.Valid())
			}
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.Valid())
}
