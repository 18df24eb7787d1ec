package handlers

import (
	"net/http"
	"strconv"

	"github.com/apoorva792/Reseller-Dashboard/internal/auth"
	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/labstack/echo/v4"
)

// OrderHandler обрабатывает запросы, связанные с заказами.
type OrderHandler struct {
	orderService services.OrderService
}

// NewOrderHandler создаёт новый экземпляр OrderHandler.
func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders обрабатывает GET /api/orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	tab := models.TabID(c.QueryParam("tab"))
	filter := models.OrderFilter{
		FromDate: c.QueryParam("from"),
		ToDate:   c.QueryParam("to"),
		Search:   c.QueryParam("search"),
		Source:   c.QueryParam("source"),
		SortKey:  c.QueryParam("sort"),
		Page:     intParam(c, "page"),
		PageSize: intParam(c, "page_size"),
	}

	resp, err := h.orderService.ListOrders(c.Request().Context(), userID, tab, filter)
	if err != nil {
		return sellerHTTPError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetOrder обрабатывает GET /api/orders/:id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	orderID := c.Param("id")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order id is required")
	}

	order, err := h.orderService.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return sellerHTTPError(err)
	}

	return c.JSON(http.StatusOK, order)
}

// Upload обрабатывает POST /api/orders/upload (multipart, поле file).
func (h *OrderHandler) Upload(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to open file")
	}
	defer src.Close()

	result, err := h.orderService.UploadOrders(c.Request().Context(), userID, fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		return sellerHTTPError(err)
	}

	switch result.Status {
	case services.UploadBlocked:
		return c.JSON(http.StatusUnprocessableEntity, result)
	case services.UploadFailed:
		return c.JSON(http.StatusBadGateway, result)
	default:
		return c.JSON(http.StatusOK, result)
	}
}

// Template обрабатывает GET /api/orders/template.
func (h *OrderHandler) Template(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders-template.csv"`)
	return c.Blob(http.StatusOK, "text/csv", h.orderService.Template())
}

// intParam читает числовой query-параметр; мусор превращается в ноль,
// значения по умолчанию выставляет сервис.
func intParam(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return v
}
