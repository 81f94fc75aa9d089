package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fedhealth/dashboard-api/internal/api/metrics"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

// DashboardHandler serves the aggregate read models for the dashboard.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type dashboardMetricsResponse struct {
	Accuracy               float64 `json:"accuracy"`
	F1Score                float64 `json:"f1Score"`
	ParticipatingHospitals int64   `json:"participatingHospitals"`
	TotalHospitals         int64   `json:"totalHospitals"`
	DataPoints             int64   `json:"dataPoints"`
}

type historyPointResponse struct {
	Round     int     `json:"round"`
	Accuracy  float64 `json:"accuracy"`
	F1Score   float64 `json:"f1Score"`
	Hospitals int     `json:"hospitals"`
}

type participationSliceResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// Metrics handles GET /api/dashboard/metrics.
//
// @Summary      Current global metrics for the dashboard header
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardMetricsResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	m, err := h.service.GetDashboardMetrics(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.DashboardReadsTotal.WithLabelValues("metrics").Inc()
	return c.JSON(http.StatusOK, dashboardMetricsResponse{
		Accuracy:               m.Accuracy,
		F1Score:                m.F1Score,
		ParticipatingHospitals: m.ParticipatingHospitals,
		TotalHospitals:         m.TotalHospitals,
		DataPoints:             m.DataPoints,
	})
}

// History handles GET /api/dashboard/performance-history.
//
// @Summary      Per-round performance series for charts
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  historyPointResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/dashboard/performance-history [get]
func (h *DashboardHandler) History(c echo.Context) error {
	points, err := h.service.GetPerformanceHistory(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]historyPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, historyPointResponse{
			Round:     p.Round,
			Accuracy:  p.Accuracy,
			F1Score:   p.F1Score,
			Hospitals: p.Hospitals,
		})
	}

	metrics.DashboardReadsTotal.WithLabelValues("history").Inc()
	return c.JSON(http.StatusOK, resp)
}

// Participation handles GET /api/dashboard/hospital-participation.
//
// @Summary      Active/inactive hospital split
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  participationSliceResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/dashboard/hospital-participation [get]
func (h *DashboardHandler) Participation(c echo.Context) error {
	slices, err := h.service.GetHospitalParticipation(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]participationSliceResponse, 0, len(slices))
	for _, s := range slices {
		resp = append(resp, participationSliceResponse{
			Name:  s.Name,
			Value: s.Value,
			Color: s.Color,
		})
	}

	metrics.DashboardReadsTotal.WithLabelValues("participation").Inc()
	return c.JSON(http.StatusOK, resp)
}
