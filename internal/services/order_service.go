package services

import (
	"bytes"
	"context"
	"io"

	"github.com/apoorva792/Reseller-Dashboard/internal/csvcheck"
	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/apoorva792/Reseller-Dashboard/internal/status"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadStatus — состояние попытки загрузки файла заказов.
// Blocked и Failed терминальны для попытки; новый файл начинает новую.
type UploadStatus string

const (
	UploadIdle       UploadStatus = "idle"
	UploadValidating UploadStatus = "validating"
	UploadBlocked    UploadStatus = "blocked"
	UploadUploading  UploadStatus = "uploading"
	UploadSucceeded  UploadStatus = "succeeded"
	UploadFailed     UploadStatus = "failed"
)

// UploadResult — итог одной попытки загрузки.
type UploadResult struct {
	Status   UploadStatus `json:"status"`
	Warnings []string     `json:"warnings,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// OrderService определяет операции дашборда с заказами.
type OrderService interface {
	ListOrders(ctx context.Context, userID uuid.UUID, tab models.TabID, filter models.OrderFilter) (*models.OrderListResponse, error)
	GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*models.OrderView, error)
	UploadOrders(ctx context.Context, userID uuid.UUID, filename string, size int64, file io.Reader) (*UploadResult, error)
	Template() []byte
}

// OrderServiceImpl реализует OrderService.
type OrderServiceImpl struct {
	api      SellerAPI
	sessions SessionService
	logger   *zap.SugaredLogger
}

// NewOrderService создаёт новый сервис заказов.
func NewOrderService(api SellerAPI, sessions SessionService, logger *zap.SugaredLogger) *OrderServiceImpl {
	return &OrderServiceImpl{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// ListOrders возвращает страницу заказов вкладки с вычисленными
// отображаемыми статусами и суммами.
func (s *OrderServiceImpl) ListOrders(ctx context.Context, userID uuid.UUID, tab models.TabID, filter models.OrderFilter) (*models.OrderListResponse, error) {
	token, err := s.sessions.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	page, err := s.api.FetchOrders(ctx, token, tab, filter)
	if err != nil {
		return nil, s.noteAuthFailure(ctx, userID, err)
	}

	views := make([]*models.OrderView, 0, len(page.Orders))
	for _, order := range page.Orders {
		if order == nil {
			continue
		}
		views = append(views, orderView(order))
	}

	return &models.OrderListResponse{
		Orders:     views,
		TotalCount: page.TotalCount,
	}, nil
}

// GetOrder возвращает один заказ, найденный каскадом фасада.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*models.OrderView, error) {
	token, err := s.sessions.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, err := s.api.GetOrder(ctx, token, orderID)
	if err != nil {
		return nil, s.noteAuthFailure(ctx, userID, err)
	}

	return orderView(order), nil
}

// UploadOrders проверяет файл локально и при отсутствии блокирующих ошибок
// отправляет оригинал на бэкенд. Предупреждения отправку не останавливают.
func (s *OrderServiceImpl) UploadOrders(ctx context.Context, userID uuid.UUID, filename string, size int64, file io.Reader) (*UploadResult, error) {
	// Validating: проверка читает содержимое через tee, чтобы при успехе
	// наверх ушёл нетронутый оригинал.
	var buf bytes.Buffer
	check := csvcheck.Validate(filename, size, io.TeeReader(file, &buf))
	if !check.Proceed {
		s.logger.Infow("upload blocked by local validation",
			"user_id", userID, "file", filename, "error", check.BlockingError)
		return &UploadResult{
			Status:   UploadBlocked,
			Warnings: check.Warnings,
			Error:    check.BlockingError,
		}, nil
	}

	token, err := s.sessions.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Uploading
	if err := s.api.UploadOrders(ctx, token, filename, &buf); err != nil {
		if seller.IsAuthError(err) {
			return nil, s.noteAuthFailure(ctx, userID, err)
		}
		return &UploadResult{
			Status:   UploadFailed,
			Warnings: check.Warnings,
			Error:    err.Error(),
		}, nil
	}

	return &UploadResult{
		Status:   UploadSucceeded,
		Warnings: check.Warnings,
	}, nil
}

// Template возвращает CSV-шаблон загрузки.
func (s *OrderServiceImpl) Template() []byte {
	return csvcheck.Template()
}

// noteAuthFailure сбрасывает привязку продавца при отказе авторизации
// бэкенда и возвращает исходную ошибку.
func (s *OrderServiceImpl) noteAuthFailure(ctx context.Context, userID uuid.UUID, err error) error {
	if seller.IsAuthError(err) {
		if clearErr := s.sessions.Invalidate(ctx, userID); clearErr != nil {
			s.logger.Errorw("failed to invalidate seller session",
				"user_id", userID, "error", clearErr)
		}
	}
	return err
}

// orderView собирает DTO заказа: отображаемый статус по приоритетным
// правилам и сумма по позициям.
func orderView(order *models.Order) *models.OrderView {
	label := status.Display(order)
	amount, _ := order.TotalAmount().Float64()

	products := order.Products
	if products == nil {
		products = []models.Product{}
	}

	return &models.OrderView{
		OrderID:       order.OrderID,
		OrderSerial:   order.OrderSerial,
		DisplayStatus: label.Text,
		StatusVariant: label.Variant,
		TotalAmount:   amount,
		PurchaseDate:  order.PurchaseDate,
		RecipientName: order.RecipientName,
		Source:        order.Source,
		Products:      products,
	}
}
