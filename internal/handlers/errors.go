package handlers

import (
	"errors"
	"net/http"

	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/labstack/echo/v4"
)

// sellerHTTPError переводит нормализованную ошибку фасада продавца в ответ
// дашборда. Отказ авторизации бэкенда отдаётся клиенту как 401: привязка
// уже сброшена сервисом, клиенту остаётся уйти на экран входа продавца.
func sellerHTTPError(err error) error {
	if errors.Is(err, services.ErrSellerNotLinked) {
		return echo.NewHTTPError(http.StatusUnauthorized, "seller account is not linked")
	}
	if errors.Is(err, seller.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	var apiErr *seller.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsAuth():
			return echo.NewHTTPError(http.StatusUnauthorized, "seller authorization expired")
		case apiErr.IsValidation():
			return echo.NewHTTPError(http.StatusUnprocessableEntity, apiErr.Message)
		case apiErr.Kind == seller.KindNetwork:
			return echo.NewHTTPError(http.StatusBadGateway, "seller service unreachable")
		case apiErr.IsServer():
			return echo.NewHTTPError(http.StatusBadGateway, apiErr.Message)
		case apiErr.Kind == seller.KindHTTP:
			return echo.NewHTTPError(http.StatusBadRequest, apiErr.Message)
		}
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
