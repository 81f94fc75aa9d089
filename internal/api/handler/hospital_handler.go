package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fedhealth/dashboard-api/internal/api/metrics"
	"github.com/fedhealth/dashboard-api/internal/core/domain"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

// HospitalHandler handles hospital listing and registration.
type HospitalHandler struct {
	service ports.HospitalService
}

func NewHospitalHandler(service ports.HospitalService) *HospitalHandler {
	return &HospitalHandler{service: service}
}

type registerHospitalRequest struct {
	Name       string `json:"name"       validate:"required"`
	Location   string `json:"location"`
	DataPoints int64  `json:"dataPoints" validate:"min=0"`
}

type hospitalResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	IsActive   bool    `json:"isActive"`
	DataPoints int64   `json:"dataPoints"`
	JoinedAt   *string `json:"joinedAt"`
}

// List handles GET /api/hospitals.
//
// @Summary      List all hospitals
// @Tags         hospitals
// @Produce      json
// @Success      200  {array}  hospitalResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/hospitals [get]
func (h *HospitalHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]hospitalResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toHospitalResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// Register handles POST /api/hospitals.
//
// @Summary      Register a new hospital
// @Tags         hospitals
// @Accept       json
// @Produce      json
// @Param        body  body      registerHospitalRequest  true  "Hospital details"
// @Success      201   {object}  hospitalResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/hospitals [post]
func (h *HospitalHandler) Register(c echo.Context) error {
	var req registerHospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	view, err := h.service.Register(c.Request().Context(), ports.RegisterHospitalInput{
		Name:       req.Name,
		Location:   req.Location,
		DataPoints: req.DataPoints,
	})
	if err != nil {
		return err
	}

	metrics.HospitalsRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, toHospitalResponse(*view))
}

func toHospitalResponse(v ports.HospitalView) hospitalResponse {
	resp := hospitalResponse{
		ID:         v.ID,
		Name:       v.Name,
		Location:   v.Location,
		IsActive:   v.IsActive,
		DataPoints: v.DataPoints,
	}
	if !v.JoinedAt.IsZero() {
		joined := v.JoinedAt.UTC().Format(time.RFC3339)
		resp.JoinedAt = &joined
	}
	return resp
}
