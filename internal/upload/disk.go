package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

// DiskStore writes documents under a fixed directory created once at
// construction. Destination names combine the creation epoch-millis with a
// per-process counter so two same-named uploads in the same millisecond
// cannot overwrite each other.
type DiskStore struct {
	dir    string // absolute or relative directory documents are written to
	prefix string // path component recorded on records, e.g. "uploads"
	seq    atomic.Uint64
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory not configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskStore{dir: dir, prefix: filepath.Base(dir)}, nil
}

var _ DocumentStore = (*DiskStore)(nil)

func (d *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), d.seq.Add(1), sanitizeName(originalName))
	dst := filepath.Join(d.dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", &Error{Err: err}
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", &Error{Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", &Error{Err: err}
	}
	return path.Join(d.prefix, name), nil
}

func (d *DiskStore) Remove(ctx context.Context, storedPath string) error {
	if storedPath == "" {
		return nil
	}
	return os.Remove(filepath.Join(d.dir, filepath.Base(storedPath)))
}

// Resolve maps a stored path back to the file on disk, for serving and tests.
func (d *DiskStore) Resolve(storedPath string) string {
	return filepath.Join(d.dir, filepath.Base(storedPath))
}

// sanitizeName strips any directory components and characters that do not
// survive a filesystem round trip.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "document"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, base)
}
