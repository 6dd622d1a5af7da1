// Package store persists the application's collections as whole JSON
// array documents: a read returns the full collection (empty when the
// document does not exist yet) and every mutation rewrites the whole
// document. There is no locking and no transaction spanning two
// collections; callers that touch both transports and bookings issue
// two independent writes.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection names.
const (
	Users      = "users"
	Transports = "transports"
	Bookings   = "bookings"
)

// Backend reads and writes whole collection documents. Read returns
// (nil, nil) when the collection has never been written.
type Backend interface {
	Read(ctx context.Context, collection string) ([]byte, error)
	Write(ctx context.Context, collection string, data []byte) error
}

// Store decodes and encodes collections over a Backend.
type Store struct {
	backend Backend
}

// New returns a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// ReadCollection unmarshals the named collection into out, which must be
// a pointer to a slice. A collection that does not exist yet leaves out
// untouched, so callers see an empty collection rather than an error.
func (s *Store) ReadCollection(ctx context.Context, collection string, out any) error {
	data, err := s.backend.Read(ctx, collection)
	if err != nil {
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// WriteCollection replaces the named collection with v.
func (s *Store) WriteCollection(ctx context.Context, collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := s.backend.Write(ctx, collection, data); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}
