package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

type HospitalService struct {
	repo   ports.HospitalRepository
	logger zerolog.Logger
}

func NewHospitalService(repo ports.HospitalRepository, logger zerolog.Logger) *HospitalService {
	return &HospitalService{repo: repo, logger: logger}
}

// List returns every registered hospital in its external projection.
func (s *HospitalService) List(ctx context.Context) ([]ports.HospitalView, error) {
	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}

	views := make([]ports.HospitalView, 0, len(hospitals))
	for _, h := range hospitals {
		views = append(views, toHospitalView(h))
	}
	return views, nil
}

// Register creates a new hospital. Name is required; location defaults to ""
// and data points to 0. Multiple hospitals may share a name; registration is
// intentionally duplicate-tolerant.
func (s *HospitalService) Register(ctx context.Context, input ports.RegisterHospitalInput) (*ports.HospitalView, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.DataPoints < 0 {
		return nil, fmt.Errorf("%w: data points must not be negative", domain.ErrValidation)
	}

	hospital := &domain.Hospital{
		Name:       input.Name,
		Location:   input.Location,
		IsActive:   true,
		JoinedAt:   time.Now().UTC(),
		DataPoints: input.DataPoints,
	}

	id, err := s.repo.Insert(ctx, hospital)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to register hospital")
		return nil, fmt.Errorf("register hospital: %w", err)
	}
	hospital.ID = id

	s.logger.Info().Str("hospital_id", id).Str("name", hospital.Name).Msg("hospital registered")

	view := toHospitalView(hospital)
	return &view, nil
}

func toHospitalView(h *domain.Hospital) ports.HospitalView {
	return ports.HospitalView{
		ID:         h.ID,
		Name:       h.Name,
		Location:   h.Location,
		IsActive:   h.IsActive,
		DataPoints: h.DataPoints,
		JoinedAt:   h.JoinedAt,
	}
}
