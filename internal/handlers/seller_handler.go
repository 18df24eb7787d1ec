package handlers

import (
	"errors"
	"net/http"

	"github.com/apoorva792/Reseller-Dashboard/internal/auth"
	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/labstack/echo/v4"
)

// SellerHandler обрабатывает привязку аккаунта продавца.
type SellerHandler struct {
	sessions services.SessionService
}

// NewSellerHandler создаёт новый экземпляр SellerHandler.
func NewSellerHandler(sessions services.SessionService) *SellerHandler {
	return &SellerHandler{sessions: sessions}
}

// Login обрабатывает POST /api/seller/login.
func (h *SellerHandler) Login(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req models.SellerLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	if err := h.sessions.Link(c.Request().Context(), userID, req.Login, req.Password); err != nil {
		if errors.Is(err, services.ErrEmptyCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return sellerHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Refresh обрабатывает POST /api/seller/refresh.
func (h *SellerHandler) Refresh(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Refresh(c.Request().Context(), userID); err != nil {
		return sellerHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Logout обрабатывает POST /api/seller/logout.
func (h *SellerHandler) Logout(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), userID); err != nil {
		c.Logger().Errorf("failed to logout seller: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.NoContent(http.StatusNoContent)
}

// Profile обрабатывает GET /api/seller/profile: отдаёт профиль в том виде,
// в каком его прислал бэкенд.
func (h *SellerHandler) Profile(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	profile, err := h.sessions.Profile(c.Request().Context(), userID)
	if err != nil {
		return sellerHTTPError(err)
	}
	if len(profile) == 0 {
		profile = []byte("{}")
	}

	return c.JSONBlob(http.StatusOK, profile)
}
