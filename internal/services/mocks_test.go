package services

import (
	"context"
	"encoding/json"
	"io"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// mockSellerAPI - мок API продавца в стиле функциональных полей.
type mockSellerAPI struct {
	LoginFunc         func(ctx context.Context, login, password string) (*seller.LoginResult, error)
	RefreshFunc       func(ctx context.Context, refreshToken string) (*seller.LoginResult, error)
	FetchOrdersFunc   func(ctx context.Context, token string, tab models.TabID, filter models.OrderFilter) (*models.OrderPage, error)
	GetOrderFunc      func(ctx context.Context, token, id string) (*models.Order, error)
	UploadOrdersFunc  func(ctx context.Context, token, filename string, file io.Reader) error
	SubmitDisputeFunc func(ctx context.Context, token string, req *models.DisputeRequest) error
	GetBalanceFunc    func(ctx context.Context, token string) (*models.Balance, error)
	GetBillsFunc      func(ctx context.Context, token string, page, pageSize int) (*models.BillPage, error)
}

func (m *mockSellerAPI) Login(ctx context.Context, login, password string) (*seller.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, login, password)
	}
	return &seller.LoginResult{}, nil
}

func (m *mockSellerAPI) Refresh(ctx context.Context, refreshToken string) (*seller.LoginResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &seller.LoginResult{}, nil
}

func (m *mockSellerAPI) FetchOrders(ctx context.Context, token string, tab models.TabID, filter models.OrderFilter) (*models.OrderPage, error) {
	if m.FetchOrdersFunc != nil {
		return m.FetchOrdersFunc(ctx, token, tab, filter)
	}
	return &models.OrderPage{Orders: []*models.Order{}}, nil
}

func (m *mockSellerAPI) GetOrder(ctx context.Context, token, id string) (*models.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, token, id)
	}
	return nil, seller.ErrOrderNotFound
}

func (m *mockSellerAPI) UploadOrders(ctx context.Context, token, filename string, file io.Reader) error {
	if m.UploadOrdersFunc != nil {
		return m.UploadOrdersFunc(ctx, token, filename, file)
	}
	return nil
}

func (m *mockSellerAPI) SubmitDispute(ctx context.Context, token string, req *models.DisputeRequest) error {
	if m.SubmitDisputeFunc != nil {
		return m.SubmitDisputeFunc(ctx, token, req)
	}
	return nil
}

func (m *mockSellerAPI) GetBalance(ctx context.Context, token string) (*models.Balance, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, token)
	}
	return &models.Balance{}, nil
}

func (m *mockSellerAPI) GetBills(ctx context.Context, token string, page, pageSize int) (*models.BillPage, error) {
	if m.GetBillsFunc != nil {
		return m.GetBillsFunc(ctx, token, page, pageSize)
	}
	return &models.BillPage{Bills: []*models.Bill{}}, nil
}

// mockSessionService - мок сервиса привязки продавца.
type mockSessionService struct {
	LinkFunc        func(ctx context.Context, userID uuid.UUID, login, password string) error
	RefreshFunc     func(ctx context.Context, userID uuid.UUID) error
	LogoutFunc      func(ctx context.Context, userID uuid.UUID) error
	AccessTokenFunc func(ctx context.Context, userID uuid.UUID) (string, error)
	ProfileFunc     func(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
	InvalidateFunc  func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockSessionService) Link(ctx context.Context, userID uuid.UUID, login, password string) error {
	if m.LinkFunc != nil {
		return m.LinkFunc(ctx, userID, login, password)
	}
	return nil
}

func (m *mockSessionService) Refresh(ctx context.Context, userID uuid.UUID) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, userID)
	}
	return nil
}

func (m *mockSessionService) Logout(ctx context.Context, userID uuid.UUID) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

func (m *mockSessionService) AccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.AccessTokenFunc != nil {
		return m.AccessTokenFunc(ctx, userID)
	}
	return "test-token", nil
}

func (m *mockSessionService) Profile(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSessionService) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, userID)
	}
	return nil
}
