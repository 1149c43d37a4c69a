package vector

import (
	"context"
	"testing"

	"guidegen/core/database"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Path: ":memory:"})
	assert.NoError(t, err)

	store := NewEmbeddedStore(db, "docs")
	assert.NoError(t, store.EnsureCollection(context.Background(), 3))
	return store
}

func seedPoints(t *testing.T, store Store) {
	t.Helper()

	points := []Point{
		{ID: "p1", Vector: []float32{1, 0, 0}, Payload: Payload{Source: "printer.txt", Chunk: "Load paper into tray two."}},
		{ID: "p2", Vector: []float32{0, 1, 0}, Payload: Payload{Source: "printer.txt", Chunk: "Replace the toner cartridge."}},
		{ID: "p3", Vector: []float32{0, 0, 1}, Payload: Payload{Source: "router.txt", Chunk: "Hold the reset button for ten seconds."}},
	}
	assert.NoError(t, store.Upsert(context.Background(), points))
}

// TestEmbeddedStore_SearchRanksBySimilarity tests that the nearest point comes first.
func TestEmbeddedStore_SearchRanksBySimilarity(t *testing.T) {
	store := newTestStore(t)
	seedPoints(t, store)

	hits, err := store.Search(context.Background(), []float32{0.9, 0.1, 0}, 2, nil)

	assert.NoError(t, err)
	assert.Len(t, hits, 2)
	assert.Equal(t, "p1", hits[0].ID)
	assert.Equal(t, "Load paper into tray two.", hits[0].Payload.Chunk)
	assert.Greater(t, hits[0].Score, hits[1].Score)
}

// TestEmbeddedStore_SearchSourceFilter tests substring filtering on the source name.
func TestEmbeddedStore_SearchSourceFilter(t *testing.T) {
	store := newTestStore(t)
	seedPoints(t, store)

	hits, err := store.Search(context.Background(), []float32{1, 1, 1}, 10, &Filter{SourceContains: "router"})

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, "router.txt", hits[0].Payload.Source)
}

// TestEmbeddedStore_UpsertReplacesByID tests that rewriting an ID replaces the row.
func TestEmbeddedStore_UpsertReplacesByID(t *testing.T) {
	store := newTestStore(t)
	seedPoints(t, store)

	err := store.Upsert(context.Background(), []Point{
		{ID: "p1", Vector: []float32{1, 0, 0}, Payload: Payload{Source: "printer.txt", Chunk: "Load paper into tray one."}},
	})
	assert.NoError(t, err)

	count, err := store.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	hits, err := store.Search(context.Background(), []float32{1, 0, 0}, 1, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Load paper into tray one.", hits[0].Payload.Chunk)
}

// TestEmbeddedStore_ScrollPagination tests cursor paging over the whole collection.
func TestEmbeddedStore_ScrollPagination(t *testing.T) {
	store := newTestStore(t)
	seedPoints(t, store)

	var seen []string
	cursor := ""
	for {
		points, next, err := store.Scroll(context.Background(), cursor, 2)
		assert.NoError(t, err)
		assert.LessOrEqual(t, len(points), 2)

		for _, p := range points {
			seen = append(seen, p.ID)
		}
		if next == "" {
			break
		}
		cursor = next
	}

	assert.Equal(t, []string{"p1", "p2", "p3"}, seen)
}

// TestEmbeddedStore_ScrollRejectsBadCursor tests the error path for garbage cursors.
func TestEmbeddedStore_ScrollRejectsBadCursor(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Scroll(context.Background(), "not-a-cursor", 10)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scroll cursor")
}

// TestEmbeddedStore_SkipsDimensionMismatch tests that stale rows are excluded from ranking.
func TestEmbeddedStore_SkipsDimensionMismatch(t *testing.T) {
	store := newTestStore(t)

	err := store.Upsert(context.Background(), []Point{
		{ID: "old", Vector: []float32{1, 0}, Payload: Payload{Source: "old.txt", Chunk: "old"}},
		{ID: "new", Vector: []float32{1, 0, 0}, Payload: Payload{Source: "new.txt", Chunk: "new"}},
	})
	assert.NoError(t, err)

	hits, err := store.Search(context.Background(), []float32{1, 0, 0}, 10, nil)

	assert.NoError(t, err)
	assert.Len(t, hits, 1)
	assert.Equal(t, "new", hits[0].ID)
}

// TestEmbeddedStore_CollectionsAreIsolated tests that stores on the same database don't mix.
func TestEmbeddedStore_CollectionsAreIsolated(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Path: ":memory:"})
	assert.NoError(t, err)

	docs := NewEmbeddedStore(db, "docs")
	handbook := NewEmbeddedStore(db, "handbook")
	assert.NoError(t, docs.EnsureCollection(context.Background(), 3))

	err = docs.Upsert(context.Background(), []Point{
		{ID: "d1", Vector: []float32{1, 0, 0}, Payload: Payload{Source: "a.txt", Chunk: "a"}},
	})
	assert.NoError(t, err)

	count, err := handbook.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = docs.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}
