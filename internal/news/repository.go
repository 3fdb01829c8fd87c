package news

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository provides announcement persistence operations
type Repository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, a *Announcement) (int64, error)
	ListAll(ctx context.Context) ([]*Announcement, error)
}

const createAnnouncementsTable = `
CREATE TABLE IF NOT EXISTS announcements (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	lang TEXT DEFAULT 'en',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const timeLayout = "2006-01-02 15:04:05.999999999"

// SQLiteRepository implements Repository on the portal store.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createAnnouncementsTable); err != nil {
		return fmt.Errorf("init announcements: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Create(ctx context.Context, a *Announcement) (int64, error) {
	if a.Lang == "" {
		a.Lang = "en"
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO announcements (title, body, lang, created_at) VALUES (?, ?, ?, ?)`,
		a.Title, a.Body, a.Lang, a.CreatedAt.Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("insert announcement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert announcement: %w", err)
	}
	a.ID = id
	return id, nil
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]*Announcement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, body, lang, created_at FROM announcements ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var out []*Announcement
	for rows.Next() {
		var a Announcement
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Lang, &createdAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		if t, perr := time.Parse(timeLayout, createdAt); perr == nil {
			a.CreatedAt = t.UTC()
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
