package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fedhealth/dashboard-api/internal/api/metrics"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

// HealthHandler handles GET /health. The probe round-trips the document store
// with a trivial count so orchestration only sees "healthy" when the database
// is actually reachable.
type HealthHandler struct {
	hospitals ports.HospitalRepository
}

func NewHealthHandler(hospitals ports.HospitalRepository) *HealthHandler {
	return &HealthHandler{hospitals: hospitals}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Message  string `json:"message,omitempty"`
}

func (h *HealthHandler) Check(c echo.Context) error {
	if _, err := h.hospitals.Count(c.Request().Context()); err != nil {
		metrics.HealthCheckFailuresTotal.Inc()
		return c.JSON(http.StatusInternalServerError, healthResponse{
			Status:  "error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, healthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
