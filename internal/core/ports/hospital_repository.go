package ports

import (
	"context"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
)

// HospitalRepository defines persistence operations for hospitals.
type HospitalRepository interface {
	// List returns every hospital in stable store order.
	List(ctx context.Context) ([]*domain.Hospital, error)
	// Count returns the total number of hospitals, active or not.
	Count(ctx context.Context) (int64, error)
	// CountByActive counts hospitals whose is_active flag matches active.
	CountByActive(ctx context.Context, active bool) (int64, error)
	// Insert persists a new hospital and returns its generated identifier.
	Insert(ctx context.Context, h *domain.Hospital) (string, error)
}
