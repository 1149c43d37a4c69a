package vector

import "context"

// Point is one indexed chunk with its embedding vector.
type Point struct {
	ID      string    `json:"id"`
	Vector  []float32 `json:"vector,omitempty"`
	Payload Payload   `json:"payload"`
}

// Payload carries the source document name and the raw chunk text.
type Payload struct {
	Source string `json:"source"`
	Chunk  string `json:"chunk"`
}

// ScoredPoint is a search hit with its similarity score.
type ScoredPoint struct {
	Point
	Score float32 `json:"score"`
}

// Filter narrows a search to matching payloads.
type Filter struct {
	// SourceContains keeps only points whose source name contains the value.
	SourceContains string
}

// Store indexes chunk embeddings and answers similarity queries.
type Store interface {
	// EnsureCollection creates the collection when missing. dim is the
	// embedding dimensionality used on creation.
	EnsureCollection(ctx context.Context, dim int) error
	// Upsert writes points, replacing any with the same ID.
	Upsert(ctx context.Context, points []Point) error
	// Search returns the limit nearest points to vec, optionally filtered.
	Search(ctx context.Context, vec []float32, limit int, filter *Filter) ([]ScoredPoint, error)
	// Scroll pages through all points, payloads only. Pass the returned
	// cursor to continue; an empty cursor means the end was reached.
	Scroll(ctx context.Context, cursor string, limit int) ([]Point, string, error)
	// Count returns the number of points in the collection.
	Count(ctx context.Context) (int, error)
}
