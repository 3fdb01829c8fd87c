package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/samara-logia/cadaster-portal/internal/registration"
)

const createRegistrationsTable = `
CREATE TABLE IF NOT EXISTS registrations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL,
	phone_number TEXT NOT NULL,
	subcity_kebele TEXT,
	house_number TEXT,
	area_sqm REAL,
	document_path TEXT,
	status TEXT DEFAULT 'በሂደት ላይ',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// timeLayout is how this repository stores created_at. parseTime also accepts
// the bare CURRENT_TIMESTAMP layout for rows written by office tooling.
const timeLayout = "2006-01-02 15:04:05.999999999"

// SQLiteRepo implements Repository on the single-file SQLite store.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db}
}

var _ Repository = (*SQLiteRepo)(nil)

func (r *SQLiteRepo) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createRegistrationsTable); err != nil {
		return &StorageError{Op: "init", Err: err}
	}
	return nil
}

func (r *SQLiteRepo) Insert(ctx context.Context, rec *registration.Record) (int64, error) {
	status := rec.Status
	if status == "" {
		status = registration.StatusInitialReview
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO registrations (full_name, phone_number, subcity_kebele, house_number, area_sqm, document_path, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.FullName, rec.PhoneNumber,
		nullString(rec.SubcityKebele), nullString(rec.HouseNumber),
		nullFloat(rec.AreaSqm), nullString(rec.DocumentPath),
		status, createdAt.Format(timeLayout),
	)
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}
	rec.ID = id
	rec.Status = status
	rec.CreatedAt = createdAt
	return id, nil
}

func (r *SQLiteRepo) ListAll(ctx context.Context) ([]*registration.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, full_name, phone_number, subcity_kebele, house_number, area_sqm, document_path, status, created_at
		 FROM registrations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	var out []*registration.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, &StorageError{Op: "scan", Err: err}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return out, nil
}

func scanRecord(rows *sql.Rows) (*registration.Record, error) {
	var (
		rec       registration.Record
		subcity   sql.NullString
		house     sql.NullString
		area      sql.NullFloat64
		docPath   sql.NullString
		status    sql.NullString
		createdAt string
	)
	if err := rows.Scan(&rec.ID, &rec.FullName, &rec.PhoneNumber, &subcity, &house, &area, &docPath, &status, &createdAt); err != nil {
		return nil, err
	}
	rec.SubcityKebele = subcity.String
	rec.HouseNumber = house.String
	if area.Valid {
		v := area.Float64
		rec.AreaSqm = &v
	}
	rec.DocumentPath = docPath.String
	rec.Status = status.String
	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
