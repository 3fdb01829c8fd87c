package news

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository is the in-memory Repository used by unit tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []*Announcement
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (m *MemoryRepository) Init(ctx context.Context) error { return nil }

func (m *MemoryRepository) Create(ctx context.Context, a *Announcement) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	cp.ID = m.nextID
	m.nextID++
	if cp.Lang == "" {
		cp.Lang = "en"
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	m.items = append(m.items, &cp)
	a.ID = cp.ID
	return cp.ID, nil
}

func (m *MemoryRepository) ListAll(ctx context.Context) ([]*Announcement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Announcement, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		cp := *m.items[i]
		out = append(out, &cp)
	}
	return out, nil
}
