package news

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samara-logia/cadaster-portal/internal/database"
)

func newSQLiteRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestSQLiteRepositoryCreateAndList(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	id1, err := repo.Create(ctx, &Announcement{Title: "Office hours", Body: "Open 8:30 to 5"})
	require.NoError(t, err)
	id2, err := repo.Create(ctx, &Announcement{Title: "የቢሮ ማሳሰቢያ", Body: "ማሳወቂያ", Lang: "am"})
	require.NoError(t, err)
	require.Greater(t, id2, id1)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "የቢሮ ማሳሰቢያ", list[0].Title)
	require.Equal(t, "am", list[0].Lang)
	require.Equal(t, "en", list[1].Lang, "lang defaults to English")
	require.False(t, list[0].CreatedAt.IsZero())
}

func TestServicePublishValidates(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Publish(ctx, "  ", "body", "")
	require.Error(t, err)
	_, err = svc.Publish(ctx, "title", "   ", "")
	require.Error(t, err)

	id, err := svc.Publish(ctx, " Road closure ", " Kebele 03 office road closed. ", "en")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Road closure", list[0].Title)
	require.Equal(t, "Kebele 03 office road closed.", list[0].Body)
}

func TestMemoryRepositoryNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, &Announcement{Title: title, Body: "b"})
		require.NoError(t, err)
	}

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "third", list[0].Title)
	require.Equal(t, "first", list[2].Title)
}
