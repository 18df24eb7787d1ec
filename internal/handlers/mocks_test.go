package handlers

import (
	"context"
	"encoding/json"
	"io"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/google/uuid"
)

// MockUserService - мок для тестирования handlers
type MockUserService struct {
	RegisterFunc func(ctx context.Context, login, password string) (*models.User, string, error)
	LoginFunc    func(ctx context.Context, login, password string) (*models.User, string, error)
}

func (m *MockUserService) Register(ctx context.Context, login, password string) (*models.User, string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, login, password)
	}
	return nil, "", nil
}

func (m *MockUserService) Login(ctx context.Context, login, password string) (*models.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, login, password)
	}
	return nil, "", nil
}

// MockOrderService - мок сервиса заказов.
type MockOrderService struct {
	ListOrdersFunc   func(ctx context.Context, userID uuid.UUID, tab models.TabID, filter models.OrderFilter) (*models.OrderListResponse, error)
	GetOrderFunc     func(ctx context.Context, userID uuid.UUID, orderID string) (*models.OrderView, error)
	UploadOrdersFunc func(ctx context.Context, userID uuid.UUID, filename string, size int64, file io.Reader) (*services.UploadResult, error)
	TemplateFunc     func() []byte
}

func (m *MockOrderService) ListOrders(ctx context.Context, userID uuid.UUID, tab models.TabID, filter models.OrderFilter) (*models.OrderListResponse, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx, userID, tab, filter)
	}
	return &models.OrderListResponse{Orders: []*models.OrderView{}}, nil
}

func (m *MockOrderService) GetOrder(ctx context.Context, userID uuid.UUID, orderID string) (*models.OrderView, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, userID, orderID)
	}
	return &models.OrderView{}, nil
}

func (m *MockOrderService) UploadOrders(ctx context.Context, userID uuid.UUID, filename string, size int64, file io.Reader) (*services.UploadResult, error) {
	if m.UploadOrdersFunc != nil {
		return m.UploadOrdersFunc(ctx, userID, filename, size, file)
	}
	return &services.UploadResult{Status: services.UploadSucceeded}, nil
}

func (m *MockOrderService) Template() []byte {
	if m.TemplateFunc != nil {
		return m.TemplateFunc()
	}
	return []byte("order-id\n")
}

// MockSessionService - мок сервиса привязки продавца.
type MockSessionService struct {
	LinkFunc        func(ctx context.Context, userID uuid.UUID, login, password string) error
	RefreshFunc     func(ctx context.Context, userID uuid.UUID) error
	LogoutFunc      func(ctx context.Context, userID uuid.UUID) error
	AccessTokenFunc func(ctx context.Context, userID uuid.UUID) (string, error)
	ProfileFunc     func(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
	InvalidateFunc  func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockSessionService) Link(ctx context.Context, userID uuid.UUID, login, password string) error {
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, userID, login, password)
	}
	return nil
}

func (m *MockSessionService) Refresh(ctx context.Context, userID uuid.UUID) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, userID)
	}
	return nil
}

func (m *MockSessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

func (m *MockSessionService) AccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.AccessTokenFunc != nil {
		return m.AccessTokenFunc(ctx, userID)
	}
	return "test-token", nil
}

func (m *MockSessionService) Profile(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSessionService) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, userID)
	}
	return nil
}

// MockBillingService - мок сервиса кошелька.
type MockBillingService struct {
	GetBalanceFunc func(ctx context.Context, userID uuid.UUID) (*models.BalanceResponse, error)
	GetBillsFunc   func(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.BillListResponse, error)
}

func (m *MockBillingService) GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceResponse, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, userID)
	}
	return &models.BalanceResponse{}, nil
}

func (m *MockBillingService) GetBills(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.BillListResponse, error) {
	if m.GetBillsFunc != nil {
		return m.GetBillsFunc(ctx, userID, page, pageSize)
	}
	return &models.BillListResponse{Bills: []*models.BillView{}}, nil
}

// MockDisputeService - мок сервиса споров.
type MockDisputeService struct {
	SubmitFunc func(ctx context.Context, userID uuid.UUID, req *models.DisputeRequest) (*models.DisputeResponse, error)
	ListFunc   func(ctx context.Context, userID uuid.UUID) ([]*models.DisputeResponse, error)
}

func (m *MockDisputeService) Submit(ctx context.Context, userID uuid.UUID, req *models.DisputeRequest) (*models.DisputeResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, userID, req)
	}
	return &models.DisputeResponse{}, nil
}

func (m *MockDisputeService) List(ctx context.Context, userID uuid.UUID) ([]*models.DisputeResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return []*models.DisputeResponse{}, nil
}
