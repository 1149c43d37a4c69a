package mocks

import (
	"context"

	"guidegen/core/vector"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of vector.Store.
type Store struct {
	mock.Mock
}

func (m *Store) EnsureCollection(ctx context.Context, dim int) error {
	args := m.Called(ctx, dim)
	return args.Error(0)
}

func (m *Store) Upsert(ctx context.Context, points []vector.Point) error {
	args := m.Called(ctx, points)
	return args.Error(0)
}

func (m *Store) Search(ctx context.Context, vec []float32, limit int, filter *vector.Filter) ([]vector.ScoredPoint, error) {
	args := m.Called(ctx, vec, limit, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]vector.ScoredPoint), args.Error(1)
}

func (m *Store) Scroll(ctx context.Context, cursor string, limit int) ([]vector.Point, string, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]vector.Point), args.String(1), args.Error(2)
}

func (m *Store) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
