package repository

import (
	"context"
	"fmt"

	"github.com/samara-logia/cadaster-portal/internal/registration"
)

// StorageError wraps a failure of the backing store. Handlers report these as
// an opaque server error and log the detail.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Repository persists registration records. Records are never updated or
// deleted through this interface.
type Repository interface {
	// Init idempotently ensures the backing table exists. Safe on every start.
	Init(ctx context.Context) error
	// Insert stores a new record and returns its assigned id. Status and
	// CreatedAt are defaulted by the store when zero.
	Insert(ctx context.Context, rec *registration.Record) (int64, error)
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]*registration.Record, error)
}
