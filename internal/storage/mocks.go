package storage

import (
	"context"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/google/uuid"
)

// MockUserStorage - мок для тестирования (экспортируемый для использования в других пакетах)
type MockUserStorage struct {
	CreateFunc     func(ctx context.Context, user *models.User) error
	GetByLoginFunc func(ctx context.Context, login string) (*models.User, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*models.User, error)
}

func (m *MockUserStorage) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserStorage) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	if m.GetByLoginFunc != nil {
		return m.GetByLoginFunc(ctx, login)
	}
	return nil, ErrUserNotFound
}

func (m *MockUserStorage) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// MockCredentialStorage - мок хранилища данных доступа продавца.
type MockCredentialStorage struct {
	SaveFunc  func(ctx context.Context, creds *models.SellerCredentials) error
	GetFunc   func(ctx context.Context, userID uuid.UUID) (*models.SellerCredentials, error)
	ClearFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *MockCredentialStorage) Save(ctx context.Context, creds *models.SellerCredentials) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, creds)
	}
	return nil
}

func (m *MockCredentialStorage) Get(ctx context.Context, userID uuid.UUID) (*models.SellerCredentials, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, ErrCredentialsNotFound
}

func (m *MockCredentialStorage) Clear(ctx context.Context, userID uuid.UUID) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, userID)
	}
	return nil
}

// MockDisputeStorage - мок журнала споров.
type MockDisputeStorage struct {
	CreateFunc      func(ctx context.Context, dispute *models.Dispute) error
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]*models.Dispute, error)
}

func (m *MockDisputeStorage) Create(ctx context.Context, dispute *models.Dispute) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, dispute)
	}
	return nil
}

func (m *MockDisputeStorage) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Dispute, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return []*models.Dispute{}, nil
}
