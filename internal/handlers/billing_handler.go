package handlers

import (
	"net/http"

	"github.com/apoorva792/Reseller-Dashboard/internal/auth"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/labstack/echo/v4"
)

// BillingHandler обрабатывает запросы кошелька продавца.
type BillingHandler struct {
	billingService services.BillingService
}

// NewBillingHandler создаёт новый экземпляр BillingHandler.
func NewBillingHandler(billingService services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// GetBalance обрабатывает GET /api/wallet/balance.
func (h *BillingHandler) GetBalance(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	balance, err := h.billingService.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return sellerHTTPError(err)
	}

	return c.JSON(http.StatusOK, balance)
}

// GetBills обрабатывает GET /api/wallet/bills.
func (h *BillingHandler) GetBills(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	bills, err := h.billingService.GetBills(c.Request().Context(), userID,
		intParam(c, "page"), intParam(c, "page_size"))
	if err != nil {
		return sellerHTTPError(err)
	}

	return c.JSON(http.StatusOK, bills)
}
