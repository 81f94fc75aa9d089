package ports

import (
	"context"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
)

// MetricRepository defines persistence operations for performance metrics.
// Metrics are written by the external training process (or the seeder); this
// service only reads them.
type MetricRepository interface {
	// FindLatest returns the metric with the highest round number, or
	// domain.ErrNoMetrics when the collection is empty.
	FindLatest(ctx context.Context) (*domain.PerformanceMetric, error)
	// ListAscending returns all metrics ordered by round number ascending.
	ListAscending(ctx context.Context) ([]*domain.PerformanceMetric, error)
	// Insert persists a new metric and returns its generated identifier.
	Insert(ctx context.Context, m *domain.PerformanceMetric) (string, error)
}
