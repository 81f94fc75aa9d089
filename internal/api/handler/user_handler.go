package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fedhealth/dashboard-api/internal/api/metrics"
	"github.com/fedhealth/dashboard-api/internal/core/domain"
	"github.com/fedhealth/dashboard-api/internal/core/ports"
)

// UserHandler handles user upserts from the external identity provider.
// The payload is trusted as-is; no identity verification happens here.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type upsertUserRequest struct {
	Email       string  `json:"email"       validate:"required,email"`
	DisplayName *string `json:"displayName"`
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Upsert handles POST /api/users.
//
// @Summary      Create or refresh a user account by email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      upsertUserRequest  true  "Identity payload"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Upsert(c echo.Context) error {
	var req upsertUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	view, err := h.service.Upsert(c.Request().Context(), ports.UpsertUserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return err
	}

	result := "updated"
	if view.Created {
		result = "created"
	}
	metrics.UserUpsertsTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, userResponse{
		ID:          view.ID,
		Email:       view.Email,
		DisplayName: view.DisplayName,
	})
}
