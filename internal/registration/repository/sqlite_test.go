package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samara-logia/cadaster-portal/internal/database"
	"github.com/samara-logia/cadaster-portal/internal/registration"
)

func newTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSQLiteRepo(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestSQLiteRepoInsertAssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := repo.Insert(ctx, &registration.Record{
			FullName:    "Alem Kedir",
			PhoneNumber: "0911000000",
		})
		require.NoError(t, err)
		require.Greater(t, id, last)
		last = id
	}
}

func TestSQLiteRepoInsertDefaults(t *testing.T) {
	repo := newTestRepo(t)

	rec := &registration.Record{FullName: "Alem Kedir", PhoneNumber: "0911000000"}
	_, err := repo.Insert(context.Background(), rec)
	require.NoError(t, err)

	require.Equal(t, registration.StatusInitialReview, rec.Status)
	require.False(t, rec.CreatedAt.IsZero())
}

func TestSQLiteRepoListAllNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		_, err := repo.Insert(ctx, &registration.Record{FullName: n, PhoneNumber: "0911"})
		require.NoError(t, err)
	}

	recs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	require.Equal(t, "third", recs[0].FullName)
	require.Equal(t, "second", recs[1].FullName)
	require.Equal(t, "first", recs[2].FullName)
	require.Greater(t, recs[0].ID, recs[1].ID)
	require.Greater(t, recs[1].ID, recs[2].ID)
}

func TestSQLiteRepoListAllIsReadOnly(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, &registration.Record{FullName: "a", PhoneNumber: "1"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &registration.Record{FullName: "b", PhoneNumber: "2"})
	require.NoError(t, err)

	first, err := repo.ListAll(ctx)
	require.NoError(t, err)
	second, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSQLiteRepoOptionalFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	area := 250.5
	_, err := repo.Insert(ctx, &registration.Record{
		FullName:      "Full Row",
		PhoneNumber:   "0911",
		SubcityKebele: "Erer / 03",
		HouseNumber:   "H-12",
		AreaSqm:       &area,
		DocumentPath:  "uploads/1-1-deed.pdf",
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &registration.Record{
		FullName:    "Bare Row",
		PhoneNumber: "0912",
	})
	require.NoError(t, err)

	recs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	bare := recs[0]
	require.Equal(t, "Bare Row", bare.FullName)
	require.Empty(t, bare.SubcityKebele)
	require.Empty(t, bare.HouseNumber)
	require.Nil(t, bare.AreaSqm)
	require.Empty(t, bare.DocumentPath)

	full := recs[1]
	require.Equal(t, "Erer / 03", full.SubcityKebele)
	require.Equal(t, "H-12", full.HouseNumber)
	require.NotNil(t, full.AreaSqm)
	require.Equal(t, 250.5, *full.AreaSqm)
	require.Equal(t, "uploads/1-1-deed.pdf", full.DocumentPath)
}

func TestSQLiteRepoRoundTripsCreatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rec := &registration.Record{FullName: "a", PhoneNumber: "1"}
	_, err := repo.Insert(ctx, rec)
	require.NoError(t, err)

	recs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.True(t, recs[0].CreatedAt.Equal(rec.CreatedAt),
		"stored %v, read back %v", rec.CreatedAt, recs[0].CreatedAt)
}
