package seller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
)

// tabEndpoints — фиксированная таблица вкладка → ресурс бэкенда.
// Наружу таблица не отдаётся: вызывающий код оперирует только TabID.
var tabEndpoints = map[models.TabID]string{
	models.TabAll:        "/orders/get-all-orders",
	models.TabUnpaid:     "/orders/get-unpaid-orders",
	models.TabProcessing: "/orders/get-unshipped-orders",
	models.TabShipped:    "/orders/get-confirmed-orders",
	models.TabAbnormal:   "/orders/get-returned-orders",
	models.TabTicketed:   "/orders/get-ticketed-orders",
	models.TabCancelled:  "/orders/get-cancelled-orders",
}

// scanPageSize — размер страницы при линейном поиске заказа по спискам.
const scanPageSize = 100

// listEnvelope принимает разнобой форматов ответа списка: заказы приходят
// под ключом orders, data или items, счётчик — total, total_count или count.
type listEnvelope struct {
	Orders     []*models.Order `json:"orders"`
	Data       []*models.Order `json:"data"`
	Items      []*models.Order `json:"items"`
	Total      *int            `json:"total"`
	TotalCount *int            `json:"total_count"`
	Count      *int            `json:"count"`
}

// page приводит конверт к единому виду OrderPage.
func (e *listEnvelope) page() *models.OrderPage {
	orders := e.Orders
	if orders == nil {
		orders = e.Data
	}
	if orders == nil {
		orders = e.Items
	}
	if orders == nil {
		orders = []*models.Order{}
	}

	total := len(orders)
	switch {
	case e.Total != nil:
		total = *e.Total
	case e.TotalCount != nil:
		total = *e.TotalCount
	case e.Count != nil:
		total = *e.Count
	}

	return &models.OrderPage{Orders: orders, TotalCount: total}
}

// FetchOrders запрашивает страницу заказов вкладки tab с учётом фильтров.
// Неизвестная вкладка обслуживается как TabAll.
func (c *Client) FetchOrders(ctx context.Context, token string, tab models.TabID, filter models.OrderFilter) (*models.OrderPage, error) {
	filter.Normalize()

	path, ok := tabEndpoints[tab]
	if !ok {
		path = tabEndpoints[models.TabAll]
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("page_size", strconv.Itoa(filter.PageSize))
	if filter.FromDate != "" {
		query.Set("from_date", filter.FromDate)
	}
	if filter.ToDate != "" {
		query.Set("to_date", filter.ToDate)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Source != "" {
		query.Set("source", filter.Source)
	}
	if filter.SortKey != "" {
		query.Set("sort", filter.SortKey)
	}

	var env listEnvelope
	if err := c.getJSON(ctx, token, path, query, &env); err != nil {
		return nil, err
	}
	return env.page(), nil
}

// lookupStrategy — один способ найти заказ.
type lookupStrategy struct {
	name string
	run  func(ctx context.Context) (*models.Order, error)
}

// runFirstSuccess перебирает стратегии по порядку и возвращает первый успех.
// Если провалились все — агрегированную ошибку по всем попыткам.
func runFirstSuccess(ctx context.Context, strategies []lookupStrategy) (*models.Order, error) {
	var errs []error
	for _, s := range strategies {
		order, err := s.run(ctx)
		if err == nil {
			return order, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
	}
	return nil, errors.Join(errs...)
}

// GetOrder ищет один заказ каскадом: прямой ресурс, затем линейный поиск
// по общему списку, затем по списку отменённых (их общий список не отдаёт).
func (c *Client) GetOrder(ctx context.Context, token, id string) (*models.Order, error) {
	strategies := []lookupStrategy{
		{
			name: "direct lookup",
			run: func(ctx context.Context) (*models.Order, error) {
				var order models.Order
				if err := c.getJSON(ctx, token, "/orders/order/"+url.PathEscape(id), nil, &order); err != nil {
					return nil, err
				}
				if order.OrderID == "" && order.OrderSerial == "" {
					return nil, ErrOrderNotFound
				}
				return &order, nil
			},
		},
		{
			name: "all orders scan",
			run: func(ctx context.Context) (*models.Order, error) {
				return c.findInTab(ctx, token, models.TabAll, id)
			},
		},
		{
			name: "cancelled orders scan",
			run: func(ctx context.Context) (*models.Order, error) {
				return c.findInTab(ctx, token, models.TabCancelled, id)
			},
		},
	}

	return runFirstSuccess(ctx, strategies)
}

// findInTab грузит страницу вкладки и ищет точное совпадение по
// order_id либо order_serial.
func (c *Client) findInTab(ctx context.Context, token string, tab models.TabID, id string) (*models.Order, error) {
	page, err := c.FetchOrders(ctx, token, tab, models.OrderFilter{Search: id, PageSize: scanPageSize})
	if err != nil {
		return nil, err
	}
	for _, order := range page.Orders {
		if order == nil {
			continue
		}
		if order.OrderID == id || order.OrderSerial == id {
			return order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UploadOrders отправляет файл заказов на бэкенд multipart-запросом,
// не изменяя содержимое файла.
func (c *Client) UploadOrders(ctx context.Context, token, filename string, file io.Reader) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return localError(fmt.Errorf("create form file: %w", err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return localError(fmt.Errorf("copy file: %w", err))
	}
	if err := writer.Close(); err != nil {
		return localError(fmt.Errorf("close multipart writer: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/orders/upload", token, nil, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, err = c.do(req)
	return err
}

// SubmitDispute отправляет спор по заказу.
func (c *Client) SubmitDispute(ctx context.Context, token string, req *models.DisputeRequest) error {
	return c.postJSON(ctx, token, "/orders/dispute", req, nil)
}
