package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamstack/attire/internal/common"
	"github.com/glamstack/attire/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testItems() []model.Item {
	return []model.Item{
		{
			ID:          "a1",
			Name:        "Linen Shirt",
			Brand:       "Uniqlo",
			Category:    model.CategoryTops,
			Price:       39.9,
			Description: "relaxed linen shirt",
			ImageRef:    "https://cdn.example.com/shirt.jpg",
			SourceURL:   "https://example.com/shirt",
		},
		{
			ID:       "a2",
			Name:     "Suede Loafer",
			Category: model.CategoryShoes,
			Price:    150,
		},
	}
}

func TestSQLiteStorage_SaveAndList(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveItems(ctx, testItems()))

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, testItems(), items)
}

func TestSQLiteStorage_GetItem(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveItems(ctx, testItems()))

	item, err := s.GetItem(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", item.Name)
	assert.Equal(t, model.CategoryTops, item.Category)

	_, err = s.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_Upsert(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveItems(ctx, testItems()))

	updated := testItems()[0]
	updated.Price = 29.9
	updated.Name = "Linen Shirt (Sale)"
	require.NoError(t, s.SaveItems(ctx, []model.Item{updated}))

	count, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	item, err := s.GetItem(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt (Sale)", item.Name)
	assert.InDelta(t, 29.9, item.Price, 0.0001)
}

func TestSQLiteStorage_Clear(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveItems(ctx, testItems()))
	require.NoError(t, s.Clear(ctx))

	count, err := s.CountItems(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSQLiteStorage_RejectsInvalidItems(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.SaveItems(ctx, []model.Item{{Name: "No ID", Price: 10}})
	assert.ErrorIs(t, err, ErrInvalidItem)

	err = s.SaveItems(ctx, []model.Item{{ID: "x", Name: "Bad Price", Price: -1}})
	assert.ErrorIs(t, err, ErrInvalidItem)

	err = s.SaveItems(ctx, []model.Item{})
	assert.ErrorIs(t, err, ErrEmptySlice)
}

func TestSQLiteStorage_MigrateIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Second run is a no-op.
	require.NoError(t, s.Migrate(ctx))

	var version int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestNewSQLiteStorage_RequiresPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.ErrorIs(t, err, ErrEmptyString)
}
