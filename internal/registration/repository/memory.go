package repository

import (
	"context"
	"sync"
	"time"

	"github.com/samara-logia/cadaster-portal/internal/registration"
)

// MemoryRepo is an in-memory Repository used by unit tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	recs   []*registration.Record

	// FailInsert forces Insert to fail, for exercising compensation paths.
	FailInsert bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

var _ Repository = (*MemoryRepo)(nil)

func (m *MemoryRepo) Init(ctx context.Context) error { return nil }

func (m *MemoryRepo) Insert(ctx context.Context, rec *registration.Record) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailInsert {
		return 0, &StorageError{Op: "insert", Err: context.Canceled}
	}
	cp := *rec
	cp.ID = m.nextID
	m.nextID++
	if cp.Status == "" {
		cp.Status = registration.StatusInitialReview
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	m.recs = append(m.recs, &cp)
	rec.ID = cp.ID
	rec.Status = cp.Status
	rec.CreatedAt = cp.CreatedAt
	return cp.ID, nil
}

func (m *MemoryRepo) ListAll(ctx context.Context) ([]*registration.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*registration.Record, 0, len(m.recs))
	// insertion order is id order, so reverse for newest first
	for i := len(m.recs) - 1; i >= 0; i-- {
		cp := *m.recs[i]
		out = append(out, &cp)
	}
	return out, nil
}
