package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

// Fixed color tokens for the participation breakdown chart. These are
// presentation metadata the frontend relies on, not entity attributes.
const (
	colorActive   = "#10B981"
	colorInactive = "#6B7280"
)

// defaultDashboardMetrics is the illustrative placeholder returned while no
// training round has completed yet. The frontend renders it as-is, so the
// values are fixed rather than derived from live data.
var defaultDashboardMetrics = ports.DashboardMetrics{
	Accuracy:               0.847,
	F1Score:                0.823,
	ParticipatingHospitals: 12,
	TotalHospitals:         15,
	DataPoints:             125000,
}

type DashboardService struct {
	hospitals ports.HospitalRepository
	metrics   ports.MetricRepository
	logger    zerolog.Logger
}

func NewDashboardService(hospitals ports.HospitalRepository, metrics ports.MetricRepository, logger zerolog.Logger) *DashboardService {
	return &DashboardService{hospitals: hospitals, metrics: metrics, logger: logger}
}

// GetDashboardMetrics returns the aggregate header metrics: accuracy and F1
// from the latest round, live hospital counts, and the live data-point sum
// (falling back to the snapshot's stored total when the sum is zero).
func (s *DashboardService) GetDashboardMetrics(ctx context.Context) (*ports.DashboardMetrics, error) {
	latest, err := s.metrics.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoMetrics) {
			s.logger.Debug().Msg("no performance metrics yet, serving default dashboard payload")
			result := defaultDashboardMetrics
			return &result, nil
		}
		return nil, fmt.Errorf("dashboard metrics: %w", err)
	}

	active, err := s.hospitals.CountByActive(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("dashboard metrics: count active: %w", err)
	}

	total, err := s.hospitals.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard metrics: count total: %w", err)
	}

	all, err := s.hospitals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard metrics: list hospitals: %w", err)
	}

	var dataPoints int64
	for _, h := range all {
		dataPoints += h.DataPoints
	}
	if dataPoints == 0 {
		dataPoints = latest.TotalDataPoints
	}

	return &ports.DashboardMetrics{
		Accuracy:               latest.Accuracy,
		F1Score:                latest.F1Score,
		ParticipatingHospitals: active,
		TotalHospitals:         total,
		DataPoints:             dataPoints,
	}, nil
}

// GetPerformanceHistory returns all recorded rounds ordered by round number
// ascending. An empty store yields an empty series, not an error.
func (s *DashboardService) GetPerformanceHistory(ctx context.Context) ([]ports.HistoryPoint, error) {
	metrics, err := s.metrics.ListAscending(ctx)
	if err != nil {
		return nil, fmt.Errorf("performance history: %w", err)
	}

	history := make([]ports.HistoryPoint, 0, len(metrics))
	for _, m := range metrics {
		history = append(history, ports.HistoryPoint{
			Round:     m.RoundNumber,
			Accuracy:  m.Accuracy,
			F1Score:   m.F1Score,
			Hospitals: m.ParticipatingHospitals,
		})
	}
	return history, nil
}

// GetHospitalParticipation returns the active/inactive split, always as a
// two-element series in Active, Inactive order.
func (s *DashboardService) GetHospitalParticipation(ctx context.Context) ([]ports.ParticipationSlice, error) {
	active, err := s.hospitals.CountByActive(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("hospital participation: count active: %w", err)
	}

	inactive, err := s.hospitals.CountByActive(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("hospital participation: count inactive: %w", err)
	}

	return []ports.ParticipationSlice{
		{Name: "Active", Value: active, Color: colorActive},
		{Name: "Inactive", Value: inactive, Color: colorInactive},
	}, nil
}
