package upload

import (
	"context"
	"fmt"
	"io"
)

// Error indicates a supporting document could not be durably stored.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("upload: %v", e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// DocumentStore persists uploaded supporting documents and returns the path
// reference recorded on the registration row.
type DocumentStore interface {
	// Save writes the document and returns its stored path. originalName is
	// the client-supplied filename; only its base name is used.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Remove deletes a previously stored document. Used as best-effort
	// compensation when the registration insert fails after the write.
	Remove(ctx context.Context, storedPath string) error
}
