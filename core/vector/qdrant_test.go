package vector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newQdrantTestStore(url string) Store {
	return NewQdrantStore(Config{
		Mode:       ModeQdrant,
		URL:        url,
		Collection: "docs",
	})
}

// TestQdrantStore_EnsureCollectionCreatesWhenMissing tests the 404-then-create flow.
func TestQdrantStore_EnsureCollectionCreatesWhenMissing(t *testing.T) {
	var created map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/docs", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			w.Write([]byte(`{"result":true,"status":"ok"}`))
		}
	}))
	defer srv.Close()

	err := newQdrantTestStore(srv.URL).EnsureCollection(context.Background(), 1536)

	assert.NoError(t, err)
	vectors := created["vectors"].(map[string]any)
	assert.Equal(t, float64(1536), vectors["size"])
	assert.Equal(t, "Cosine", vectors["distance"])
}

// TestQdrantStore_EnsureCollectionExisting tests that an existing collection is left alone.
func TestQdrantStore_EnsureCollectionExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"result":{"status":"green"}}`))
	}))
	defer srv.Close()

	err := newQdrantTestStore(srv.URL).EnsureCollection(context.Background(), 1536)

	assert.NoError(t, err)
}

// TestQdrantStore_Upsert tests the points write request.
func TestQdrantStore_Upsert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/collections/docs/points", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))

		var body struct {
			Points []map[string]any `json:"points"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Points, 1)
		assert.Equal(t, "11111111-2222-3333-4444-555555555555", body.Points[0]["id"])

		w.Write([]byte(`{"result":{"status":"acknowledged"}}`))
	}))
	defer srv.Close()

	err := newQdrantTestStore(srv.URL).Upsert(context.Background(), []Point{
		{
			ID:      "11111111-2222-3333-4444-555555555555",
			Vector:  []float32{0.1, 0.2},
			Payload: Payload{Source: "printer.txt", Chunk: "Load paper."},
		},
	})

	assert.NoError(t, err)
}

// TestQdrantStore_SearchSendsFilter tests the filter body and hit decoding.
func TestQdrantStore_SearchSendsFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/docs/points/search", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(8), body["limit"])
		assert.Equal(t, true, body["with_payload"])

		filter := body["filter"].(map[string]any)
		must := filter["must"].([]any)[0].(map[string]any)
		assert.Equal(t, "source", must["key"])
		assert.Equal(t, map[string]any{"text": "printer"}, must["match"])

		w.Write([]byte(`{"result":[
			{"id":"aaa","score":0.93,"payload":{"source":"printer.txt","chunk":"Load paper."}},
			{"id":42,"score":0.71,"payload":{"source":"printer.txt","chunk":"Replace toner."}}
		]}`))
	}))
	defer srv.Close()

	hits, err := newQdrantTestStore(srv.URL).Search(context.Background(), []float32{0.5}, 8, &Filter{SourceContains: "printer"})

	assert.NoError(t, err)
	assert.Len(t, hits, 2)
	assert.Equal(t, "aaa", hits[0].ID)
	assert.InDelta(t, 0.93, hits[0].Score, 1e-6)
	assert.Equal(t, "42", hits[1].ID)
	assert.Equal(t, "Replace toner.", hits[1].Payload.Chunk)
}

// TestQdrantStore_SearchWithoutFilter tests that no filter key is sent when none is set.
func TestQdrantStore_SearchWithoutFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "filter")

		w.Write([]byte(`{"result":[]}`))
	}))
	defer srv.Close()

	hits, err := newQdrantTestStore(srv.URL).Search(context.Background(), []float32{0.5}, 8, nil)

	assert.NoError(t, err)
	assert.Empty(t, hits)
}

// TestQdrantStore_ScrollFollowsCursor tests paging through next_page_offset.
func TestQdrantStore_ScrollFollowsCursor(t *testing.T) {
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/docs/points/scroll", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		calls++
		if calls == 1 {
			assert.NotContains(t, body, "offset")
			w.Write([]byte(`{"result":{
				"points":[{"id":"p1","payload":{"source":"a.txt","chunk":"one"}}],
				"next_page_offset":"p2"
			}}`))
			return
		}

		assert.Equal(t, "p2", body["offset"])
		w.Write([]byte(`{"result":{
			"points":[{"id":"p2","payload":{"source":"b.txt","chunk":"two"}}],
			"next_page_offset":null
		}}`))
	}))
	defer srv.Close()

	store := newQdrantTestStore(srv.URL)

	points, next, err := store.Scroll(context.Background(), "", 1)
	assert.NoError(t, err)
	assert.Len(t, points, 1)
	assert.Equal(t, "p2", next)

	points, next, err = store.Scroll(context.Background(), next, 1)
	assert.NoError(t, err)
	assert.Equal(t, "b.txt", points[0].Payload.Source)
	assert.Empty(t, next)
}

// TestQdrantStore_Count tests the exact count request.
func TestQdrantStore_Count(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/docs/points/count", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["exact"])

		w.Write([]byte(`{"result":{"count":137}}`))
	}))
	defer srv.Close()

	count, err := newQdrantTestStore(srv.URL).Count(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 137, count)
}

// TestQdrantStore_APIKeyHeader tests that the api-key header is attached when configured.
func TestQdrantStore_APIKeyHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		w.Write([]byte(`{"result":{"count":0}}`))
	}))
	defer srv.Close()

	store := NewQdrantStore(Config{URL: srv.URL, APIKey: "secret", Collection: "docs"})

	_, err := store.Count(context.Background())
	assert.NoError(t, err)
}

// TestQdrantStore_ErrorStatus tests that API errors surface status and body.
func TestQdrantStore_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":{"error":"wrong vector size"}}`))
	}))
	defer srv.Close()

	_, err := newQdrantTestStore(srv.URL).Count(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "wrong vector size")
}
