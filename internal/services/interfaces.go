package services

import (
	"context"
	"io"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/google/uuid"
)

// UserStorage определяет интерфейс для работы с пользователями.
type UserStorage interface {
	Create(ctx context.Context, user *models.User) error
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// CredentialStorage определяет интерфейс хранилища данных доступа продавца.
type CredentialStorage interface {
	Save(ctx context.Context, creds *models.SellerCredentials) error
	Get(ctx context.Context, userID uuid.UUID) (*models.SellerCredentials, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// DisputeStorage определяет интерфейс журнала споров.
type DisputeStorage interface {
	Create(ctx context.Context, dispute *models.Dispute) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Dispute, error)
}

// SellerAPI — операции удалённого API продавца, которыми пользуется дашборд.
type SellerAPI interface {
	Login(ctx context.Context, login, password string) (*seller.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*seller.LoginResult, error)
	FetchOrders(ctx context.Context, token string, tab models.TabID, filter models.OrderFilter) (*models.OrderPage, error)
	GetOrder(ctx context.Context, token, id string) (*models.Order, error)
	UploadOrders(ctx context.Context, token, filename string, file io.Reader) error
	SubmitDispute(ctx context.Context, token string, req *models.DisputeRequest) error
	GetBalance(ctx context.Context, token string) (*models.Balance, error)
	GetBills(ctx context.Context, token string, page, pageSize int) (*models.BillPage, error)
}
