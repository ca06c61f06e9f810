// Package boltdb persists the credential pair in a local BoltDB file, the
// opaque keystore handed to the SDK by the host platform.
package boltdb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/oncoflow/mobilecore/domain"
)

const (
	defaultBucket = "credentials"
	pairKey       = "current"
)

// Store is a bbolt-backed CredentialStore. Atomicity of Set and Clear comes
// from the underlying write transaction; Get runs in a read transaction and
// therefore never sees a half-written pair.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the keystore file and ensures the bucket exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStoreUnavailable, "create keystore directory", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStoreUnavailable, "open keystore", err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(defaultBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, domain.WrapError(domain.ErrCodeStoreUnavailable, "prepare keystore bucket", err)
	}

	return &Store{
		db:     db,
		bucket: []byte(defaultBucket),
	}, nil
}

// Get returns the stored pair, or domain.ErrNotAuthenticated when absent.
func (s *Store) Get(ctx context.Context) (domain.Credentials, error) {
	if err := s.ready(ctx); err != nil {
		return domain.Credentials{}, err
	}

	var creds domain.Credentials
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(pairKey))
		if raw == nil {
			return nil
		}
		found = true
		return json.Unmarshal(raw, &creds)
	})
	if err != nil {
		return domain.Credentials{}, domain.WrapError(domain.ErrCodeStoreUnavailable, "read keystore", err)
	}
	if !found {
		return domain.Credentials{}, domain.ErrNotAuthenticated
	}
	return creds, nil
}

// Set replaces the stored pair wholesale. Incomplete pairs are rejected so the
// keystore never holds an access token without the means to renew it.
func (s *Store) Set(ctx context.Context, creds domain.Credentials) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if !creds.Valid() {
		return domain.ErrIncompleteCredentials
	}

	raw, err := json.Marshal(creds)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "encode credential pair", err)
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(pairKey), raw)
	}); err != nil {
		return domain.WrapError(domain.ErrCodeStoreUnavailable, "write keystore", err)
	}
	return nil
}

// Clear removes the stored pair. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(pairKey))
	}); err != nil {
		return domain.WrapError(domain.ErrCodeStoreUnavailable, "clear keystore", err)
	}
	return nil
}

// Close releases the underlying file handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if s == nil || s.db == nil {
		return domain.WrapError(domain.ErrCodeStoreUnavailable, "keystore not open", bolt.ErrDatabaseNotOpen)
	}
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeStoreUnavailable, "keystore context done", err)
	}
	return nil
}
