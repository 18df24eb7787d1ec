package handlers

import (
	"errors"
	"net/http"

	"github.com/apoorva792/Reseller-Dashboard/internal/auth"
	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/labstack/echo/v4"
)

// DisputeHandler обрабатывает споры по заказам.
type DisputeHandler struct {
	disputeService services.DisputeService
}

// NewDisputeHandler создаёт новый экземпляр DisputeHandler.
func NewDisputeHandler(disputeService services.DisputeService) *DisputeHandler {
	return &DisputeHandler{disputeService: disputeService}
}

// Submit обрабатывает POST /api/orders/dispute.
func (h *DisputeHandler) Submit(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req models.DisputeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	dispute, err := h.disputeService.Submit(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyDispute) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return sellerHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dispute)
}

// List обрабатывает GET /api/disputes.
func (h *DisputeHandler) List(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	disputes, err := h.disputeService.List(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("failed to list disputes: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, disputes)
}
