package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fedhealth/dashboard-api/internal/core/domain"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubHospitalRepo struct {
	hospitals []*domain.Hospital
	err       error // if set, every call returns this error
}

func (r *stubHospitalRepo) List(_ context.Context) ([]*domain.Hospital, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Hospital, len(r.hospitals))
	for i, h := range r.hospitals {
		clone := *h
		out[i] = &clone
	}
	return out, nil
}

func (r *stubHospitalRepo) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.hospitals)), nil
}

func (r *stubHospitalRepo) CountByActive(_ context.Context, active bool) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, h := range r.hospitals {
		if h.IsActive == active {
			n++
		}
	}
	return n, nil
}

func (r *stubHospitalRepo) Insert(_ context.Context, h *domain.Hospital) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	clone := *h
	id := fmt.Sprintf("hosp-%d", len(r.hospitals)+1)
	clone.ID = id
	r.hospitals = append(r.hospitals, &clone)
	return id, nil
}

type stubMetricRepo struct {
	metrics []*domain.PerformanceMetric
	err     error
}

func (r *stubMetricRepo) FindLatest(_ context.Context) (*domain.PerformanceMetric, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.metrics) == 0 {
		return nil, domain.ErrNoMetrics
	}
	latest := r.metrics[0]
	for _, m := range r.metrics[1:] {
		if m.RoundNumber > latest.RoundNumber {
			latest = m
		}
	}
	clone := *latest
	return &clone, nil
}

func (r *stubMetricRepo) ListAscending(_ context.Context) ([]*domain.PerformanceMetric, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.PerformanceMetric, len(r.metrics))
	for i, m := range r.metrics {
		clone := *m
		out[i] = &clone
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoundNumber < out[j].RoundNumber })
	return out, nil
}

func (r *stubMetricRepo) Insert(_ context.Context, m *domain.PerformanceMetric) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	clone := *m
	r.metrics = append(r.metrics, &clone)
	return "metric-1", nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func activeHospital(name string, dataPoints int64) *domain.Hospital {
	return &domain.Hospital{Name: name, IsActive: true, DataPoints: dataPoints}
}

func inactiveHospital(name string, dataPoints int64) *domain.Hospital {
	return &domain.Hospital{Name: name, IsActive: false, DataPoints: dataPoints}
}

// ---------------------------------------------------------------------------
// GetDashboardMetrics tests
// ---------------------------------------------------------------------------

func TestDashboardService_Metrics_DefaultWhenNoSnapshots(t *testing.T) {
	// Participant data present but no metrics: the fixed placeholder wins.
	hospitals := &stubHospitalRepo{hospitals: []*domain.Hospital{
		activeHospital("A", 100),
		inactiveHospital("B", 50),
	}}
	svc := NewDashboardService(hospitals, &stubMetricRepo{}, discardLogger)

	got, err := svc.GetDashboardMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := ports.DashboardMetrics{
		Accuracy:               0.847,
		F1Score:                0.823,
		ParticipatingHospitals: 12,
		TotalHospitals:         15,
		DataPoints:             125000,
	}
	if *got != want {
		t.Errorf("default payload mismatch:\n got %+v\nwant %+v", *got, want)
	}
}

func TestDashboardService_Metrics_UsesHighestRound(t *testing.T) {
	metrics := &stubMetricRepo{metrics: []*domain.PerformanceMetric{
		{RoundNumber: 1, Accuracy: 0.70, F1Score: 0.65},
		{RoundNumber: 3, Accuracy: 0.90, F1Score: 0.88},
		{RoundNumber: 2, Accuracy: 0.80, F1Score: 0.75},
	}}
	svc := NewDashboardService(&stubHospitalRepo{}, metrics, discardLogger)

	got, err := svc.GetDashboardMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Accuracy != 0.90 || got.F1Score != 0.88 {
		t.Errorf("expected round 3 accuracy/f1 (0.90/0.88), got %v/%v", got.Accuracy, got.F1Score)
	}
}

func TestDashboardService_Metrics_LiveCountsBeatSnapshot(t *testing.T) {
	hospitals := &stubHospitalRepo{hospitals: []*domain.Hospital{
		activeHospital("A", 10),
		activeHospital("B", 10),
		activeHospital("C", 10),
		inactiveHospital("D", 10),
		inactiveHospital("E", 10),
	}}
	metrics := &stubMetricRepo{metrics: []*domain.PerformanceMetric{
		{RoundNumber: 1, Accuracy: 0.8, F1Score: 0.7, ParticipatingHospitals: 5},
	}}
	svc := NewDashboardService(hospitals, metrics, discardLogger)

	got, err := svc.GetDashboardMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ParticipatingHospitals != 3 {
		t.Errorf("participating: expected live count 3, got %d", got.ParticipatingHospitals)
	}
	if got.TotalHospitals != 5 {
		t.Errorf("total: expected 5, got %d", got.TotalHospitals)
	}
	if got.DataPoints != 50 {
		t.Errorf("data points: expected live sum 50, got %d", got.DataPoints)
	}
}

func TestDashboardService_Metrics_DataPointsFallbackToSnapshot(t *testing.T) {
	hospitals := &stubHospitalRepo{hospitals: []*domain.Hospital{
		activeHospital("A", 0),
		activeHospital("B", 0),
	}}
	metrics := &stubMetricRepo{metrics: []*domain.PerformanceMetric{
		{RoundNumber: 6, Accuracy: 0.847, F1Score: 0.823, TotalDataPoints: 170000},
	}}
	svc := NewDashboardService(hospitals, metrics, discardLogger)

	got, err := svc.GetDashboardMetrics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DataPoints != 170000 {
		t.Errorf("expected snapshot fallback 170000, got %d", got.DataPoints)
	}
}

func TestDashboardService_Metrics_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := NewDashboardService(&stubHospitalRepo{}, &stubMetricRepo{err: storeErr}, discardLogger)

	_, err := svc.GetDashboardMetrics(context.Background())
	if !errors.Is(err, storeErr) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetPerformanceHistory tests
// ---------------------------------------------------------------------------

func TestDashboardService_History_AscendingByRound(t *testing.T) {
	// Inserted out of order; retrieval must be ascending.
	metrics := &stubMetricRepo{metrics: []*domain.PerformanceMetric{
		{RoundNumber: 3, Accuracy: 0.78, F1Score: 0.74, ParticipatingHospitals: 11},
		{RoundNumber: 1, Accuracy: 0.72, F1Score: 0.68, ParticipatingHospitals: 8},
		{RoundNumber: 2, Accuracy: 0.75, F1Score: 0.71, ParticipatingHospitals: 10},
	}}
	svc := NewDashboardService(&stubHospitalRepo{}, metrics, discardLogger)

	history, err := svc.GetPerformanceHistory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 points, got %d", len(history))
	}
	for i, wantRound := range []int{1, 2, 3} {
		if history[i].Round != wantRound {
			t.Errorf("history[%d].Round: expected %d, got %d", i, wantRound, history[i].Round)
		}
	}
	if history[0].Hospitals != 8 {
		t.Errorf("history[0].Hospitals: expected 8, got %d", history[0].Hospitals)
	}
}

func TestDashboardService_History_EmptyStoreYieldsEmptySeries(t *testing.T) {
	svc := NewDashboardService(&stubHospitalRepo{}, &stubMetricRepo{}, discardLogger)

	history, err := svc.GetPerformanceHistory(context.Background())
	if err != nil {
		t.Fatalf("expected no error on empty store, got %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Errorf("expected empty non-nil series, got %#v", history)
	}
}

// ---------------------------------------------------------------------------
// GetHospitalParticipation tests
// ---------------------------------------------------------------------------

func TestDashboardService_Participation_CountsAndColors(t *testing.T) {
	hospitals := &stubHospitalRepo{hospitals: []*domain.Hospital{
		activeHospital("A", 0), activeHospital("B", 0),
		activeHospital("C", 0), activeHospital("D", 0),
		inactiveHospital("E", 0), inactiveHospital("F", 0),
	}}
	svc := NewDashboardService(hospitals, &stubMetricRepo{}, discardLogger)

	slices, err := svc.GetHospitalParticipation(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}

	want := []ports.ParticipationSlice{
		{Name: "Active", Value: 4, Color: "#10B981"},
		{Name: "Inactive", Value: 2, Color: "#6B7280"},
	}
	for i := range want {
		if slices[i] != want[i] {
			t.Errorf("slice[%d]: expected %+v, got %+v", i, want[i], slices[i])
		}
	}
}

func TestDashboardService_Participation_EmptyStore(t *testing.T) {
	svc := NewDashboardService(&stubHospitalRepo{}, &stubMetricRepo{}, discardLogger)

	slices, err := svc.GetHospitalParticipation(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slices[0].Value != 0 || slices[1].Value != 0 {
		t.Errorf("expected zero counts, got %+v", slices)
	}
}
