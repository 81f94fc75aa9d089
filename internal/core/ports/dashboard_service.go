package ports

import "context"

// DashboardMetrics is the aggregate read model for the dashboard header.
// ParticipatingHospitals and TotalHospitals are live counts, not the values
// stored on the latest metric snapshot.
type DashboardMetrics struct {
	Accuracy               float64
	F1Score                float64
	ParticipatingHospitals int64
	TotalHospitals         int64
	DataPoints             int64
}

// HistoryPoint is one round in the performance-history chart series.
type HistoryPoint struct {
	Round     int
	Accuracy  float64
	F1Score   float64
	Hospitals int
}

// ParticipationSlice is one segment of the participation breakdown chart.
// Color is presentation metadata owned by the aggregation service.
type ParticipationSlice struct {
	Name  string
	Value int64
	Color string
}

// DashboardService computes the dashboard-facing read models.
type DashboardService interface {
	GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error)
	GetPerformanceHistory(ctx context.Context) ([]HistoryPoint, error)
	GetHospitalParticipation(ctx context.Context) ([]ParticipationSlice, error)
}
