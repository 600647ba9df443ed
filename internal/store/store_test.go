package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localnerve/nickstore/internal/models"
	"github.com/localnerve/nickstore/internal/store"
	"github.com/localnerve/nickstore/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAssignsIDAndDetectsDuplicates(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()

	first := &models.Category{Name: "PUBG Mobile", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Categories.Insert(ctx, first))
	assert.NotZero(t, first.ID)

	dup := &models.Category{Name: "PUBG Mobile", CreatedAt: time.Now().UTC()}
	err := s.Categories.Insert(ctx, dup)
	assert.ErrorIs(t, err, store.ErrUniqueViolation)
}

func TestGetAndDeleteMissing(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := s.Listings.Get(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Listings.GetForUpdate(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, s.Listings.Delete(ctx, 1), store.ErrNotFound)
}

func TestListFindWhereAndOrdering(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, cat := range []string{"A", "B", "A"} {
		require.NoError(t, s.Listings.Insert(ctx, &models.Listing{
			Title:     string(rune('x' + i)),
			Category:  cat,
			Details:   "-",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := s.Listings.List(ctx, store.Desc("created_at"))
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"z", "y", "x"}, []string{all[0].Title, all[1].Title, all[2].Title})

	asc, err := s.Listings.List(ctx, store.Asc("created_at"))
	require.NoError(t, err)
	assert.Equal(t, "x", asc[0].Title)

	onlyA, err := s.Listings.FindWhere(ctx, "category", "A", store.Asc("id"))
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, "x", onlyA[0].Title)
	assert.Equal(t, "z", onlyA[1].Title)

	none, err := s.Listings.FindWhere(ctx, "category", "C")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	exists, err := s.Listings.Exists(ctx, "category", "B")
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := s.Listings.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestFindFirst(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, s.Accounts.Insert(ctx, &models.Account{Username: "a", Password: "p"}))

	account, err := s.Accounts.FindFirst(ctx, map[string]interface{}{"username": "a", "password": "p"})
	require.NoError(t, err)
	assert.Equal(t, "a", account.Username)

	_, err = s.Accounts.FindFirst(ctx, map[string]interface{}{"username": "a", "password": "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Categories.Insert(ctx, &models.Category{Name: "temp", CreatedAt: time.Now().UTC()}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := s.Categories.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImagesRoundTrip(t *testing.T) {
	s := store.New(testutil.NewTestDB(t))
	ctx := context.Background()

	empty := &models.Listing{Title: "e", Category: "A", Details: "-", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Listings.Insert(ctx, empty))
	withImages := &models.Listing{
		Title: "i", Category: "A", Details: "-", CreatedAt: time.Now().UTC(),
		Images: models.ImageList{"b.png", "a.png"},
	}
	require.NoError(t, s.Listings.Insert(ctx, withImages))

	got, err := s.Listings.Get(ctx, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)

	got, err = s.Listings.Get(ctx, withImages.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ImageList{"b.png", "a.png"}, got.Images)
}
