package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/apoorva792/Reseller-Dashboard/internal/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSellerNotLinked возвращается, когда у пользователя нет привязанного
// аккаунта продавца.
var ErrSellerNotLinked = errors.New("seller account is not linked")

// SessionService управляет привязкой аккаунта продавца: токены и профиль
// живут в долговременном хранилище, меняются только входом, обновлением
// и выходом, а при 401 от бэкенда сбрасываются через Invalidate.
type SessionService interface {
	Link(ctx context.Context, userID uuid.UUID, login, password string) error
	Refresh(ctx context.Context, userID uuid.UUID) error
	Logout(ctx context.Context, userID uuid.UUID) error
	AccessToken(ctx context.Context, userID uuid.UUID) (string, error)
	Profile(ctx context.Context, userID uuid.UUID) (json.RawMessage, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// SessionServiceImpl реализует SessionService.
type SessionServiceImpl struct {
	api    SellerAPI
	creds  CredentialStorage
	logger *zap.SugaredLogger
}

// NewSessionService создаёт сервис привязки продавца.
func NewSessionService(api SellerAPI, creds CredentialStorage, logger *zap.SugaredLogger) *SessionServiceImpl {
	return &SessionServiceImpl{
		api:    api,
		creds:  creds,
		logger: logger,
	}
}

// Link выполняет вход в аккаунт продавца и сохраняет полученные данные.
func (s *SessionServiceImpl) Link(ctx context.Context, userID uuid.UUID, login, password string) error {
	if login == "" || password == "" {
		return ErrEmptyCredentials
	}

	result, err := s.api.Login(ctx, login, password)
	if err != nil {
		return err
	}

	return s.save(ctx, userID, result)
}

// Refresh обменивает сохранённый refresh-токен на новую пару токенов.
// Вызывается только по запросу пользователя, автоматических повторов нет.
func (s *SessionServiceImpl) Refresh(ctx context.Context, userID uuid.UUID) error {
	creds, err := s.get(ctx, userID)
	if err != nil {
		return err
	}

	result, err := s.api.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		if seller.IsAuthError(err) {
			// refresh-токен тоже отвергнут — привязка больше не действует
			if clearErr := s.Invalidate(ctx, userID); clearErr != nil {
				s.logger.Errorw("failed to invalidate seller session", "user_id", userID, "error", clearErr)
			}
		}
		return err
	}

	return s.save(ctx, userID, result)
}

// Logout удаляет сохранённую привязку продавца.
func (s *SessionServiceImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.creds.Clear(ctx, userID)
}

// AccessToken возвращает текущий access-токен пользователя.
func (s *SessionServiceImpl) AccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	creds, err := s.get(ctx, userID)
	if err != nil {
		return "", err
	}
	return creds.AccessToken, nil
}

// Profile возвращает сохранённый профиль продавца как есть.
func (s *SessionServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	creds, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return creds.Profile, nil
}

// Invalidate сбрасывает привязку после отказа авторизации бэкенда.
// Операция идемпотентна: повторный сброс ничего не ломает.
func (s *SessionServiceImpl) Invalidate(ctx context.Context, userID uuid.UUID) error {
	s.logger.Infow("invalidating seller session", "user_id", userID)
	return s.creds.Clear(ctx, userID)
}

func (s *SessionServiceImpl) get(ctx context.Context, userID uuid.UUID) (*models.SellerCredentials, error) {
	creds, err := s.creds.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil, ErrSellerNotLinked
		}
		return nil, fmt.Errorf("get seller credentials: %w", err)
	}
	return creds, nil
}

func (s *SessionServiceImpl) save(ctx context.Context, userID uuid.UUID, result *seller.LoginResult) error {
	creds := &models.SellerCredentials{
		UserID:       userID,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Profile:      result.Profile,
	}
	if err := s.creds.Save(ctx, creds); err != nil {
		return fmt.Errorf("save seller credentials: %w", err)
	}
	return nil
}
