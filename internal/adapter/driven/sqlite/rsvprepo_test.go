package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvashisht/weddingsite/internal/domain/model"
)

func TestRSVPRepo_InsertAndListAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRSVPRepo(db)
	ctx := context.Background()

	submitted := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
	entry := model.RSVP{
		ID:          "e1b6c9d2-0000-4000-8000-000000000001",
		Name:        "Priya Sharma",
		Mobile:      "9876543210",
		Guests:      3,
		Attending:   "yes",
		SubmittedAt: submitted,
	}
	require.NoError(t, repo.Insert(ctx, entry))

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestRSVPRepo_ListAllInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRSVPRepo(db)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for i, name := range names {
		err := repo.Insert(ctx, model.RSVP{
			ID:          name, // Any unique string works as an ID.
			Name:        name,
			Mobile:      "1",
			Guests:      i,
			Attending:   "yes",
			SubmittedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, name := range names {
		assert.Equal(t, name, entries[i].Name)
	}
}

func TestRSVPRepo_ListAllEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRSVPRepo(db)

	entries, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRSVPRepo_DuplicateSubmissionsAllowed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRSVPRepo(db)
	ctx := context.Background()

	// The same guest submitting twice is two separate entries.
	for _, id := range []string{"a", "b"} {
		err := repo.Insert(ctx, model.RSVP{
			ID:          id,
			Name:        "Priya Sharma",
			Mobile:      "9876543210",
			Guests:      2,
			Attending:   "yes",
			SubmittedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
