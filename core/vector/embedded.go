package vector

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IndexPoint is the GORM model backing the embedded vector index.
type IndexPoint struct {
	ID         string `gorm:"primaryKey;size:36"`
	Collection string `gorm:"index;size:190"`
	Source     string `gorm:"index;size:190"`
	Chunk      string `gorm:"type:text"`
	Vector     []byte
	Dim        int
}

// TableName overrides the GORM table name.
func (IndexPoint) TableName() string {
	return "index_points"
}

// embeddedStore keeps the vector index in the application database. Search
// scans candidate rows and ranks them in memory, which stays fast for the
// corpus sizes this service indexes.
type embeddedStore struct {
	db         *gorm.DB
	collection string
}

// NewEmbeddedStore creates a Store backed by db.
func NewEmbeddedStore(db *gorm.DB, collection string) Store {
	return &embeddedStore{db: db, collection: collection}
}

func (s *embeddedStore) EnsureCollection(ctx context.Context, dim int) error {
	// Collections share one table, so creating one just means migrating it.
	// The dimensionality is stored per row instead of per collection.
	return s.db.WithContext(ctx).AutoMigrate(&IndexPoint{})
}

func (s *embeddedStore) Upsert(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	rows := make([]IndexPoint, 0, len(points))
	for _, p := range points {
		rows = append(rows, IndexPoint{
			ID:         p.ID,
			Collection: s.collection,
			Source:     p.Payload.Source,
			Chunk:      p.Payload.Chunk,
			Vector:     encodeVector(p.Vector),
			Dim:        len(p.Vector),
		})
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(rows, 500).Error
}

func (s *embeddedStore) Search(ctx context.Context, vec []float32, limit int, filter *Filter) ([]ScoredPoint, error) {
	query := s.db.WithContext(ctx).Where("collection = ?", s.collection)
	if filter != nil && filter.SourceContains != "" {
		query = query.Where("source LIKE ?", "%"+filter.SourceContains+"%")
	}

	var rows []IndexPoint
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	hits := make([]ScoredPoint, 0, len(rows))
	for _, row := range rows {
		if row.Dim != len(vec) {
			// Rows written by an older embedding model cannot be compared.
			continue
		}
		hits = append(hits, ScoredPoint{
			Point: Point{ID: row.ID, Payload: Payload{Source: row.Source, Chunk: row.Chunk}},
			Score: Cosine(vec, decodeVector(row.Vector)),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (s *embeddedStore) Scroll(ctx context.Context, cursor string, limit int) ([]Point, string, error) {
	offset := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil {
			return nil, "", fmt.Errorf("invalid scroll cursor %q: %w", cursor, err)
		}
		offset = parsed
	}

	var rows []IndexPoint
	err := s.db.WithContext(ctx).
		Where("collection = ?", s.collection).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, "", err
	}

	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		points = append(points, Point{ID: row.ID, Payload: Payload{Source: row.Source, Chunk: row.Chunk}})
	}

	next := ""
	if len(rows) == limit {
		next = strconv.Itoa(offset + limit)
	}
	return points, next, nil
}

func (s *embeddedStore) Count(ctx context.Context) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&IndexPoint{}).
		Where("collection = ?", s.collection).
		Count(&count).Error
	return int(count), err
}
