package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCredentialsNotFound = errors.New("seller credentials not found")

// PostgresCredentialStorage хранит токены и профиль продавца по пользователю.
// Это долговременное key-value хранилище клиентского состояния: пишется
// только входом/обновлением/выходом, читается каждым запросом к бэкенду.
type PostgresCredentialStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresCredentialStorage создаёт новый экземпляр PostgresCredentialStorage.
func NewPostgresCredentialStorage(pool *pgxpool.Pool) *PostgresCredentialStorage {
	return &PostgresCredentialStorage{pool: pool}
}

// Save создаёт или заменяет сохранённые данные доступа пользователя.
func (s *PostgresCredentialStorage) Save(ctx context.Context, creds *models.SellerCredentials) error {
	query := `
		INSERT INTO seller_credentials (user_id, access_token, refresh_token, profile, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET access_token = EXCLUDED.access_token,
		    refresh_token = EXCLUDED.refresh_token,
		    profile = EXCLUDED.profile,
		    updated_at = NOW()
	`

	_, err := s.pool.Exec(ctx, query,
		creds.UserID,
		creds.AccessToken,
		creds.RefreshToken,
		creds.Profile,
	)
	if err != nil {
		return fmt.Errorf("failed to save seller credentials: %w", err)
	}

	return nil
}

// Get возвращает сохранённые данные доступа пользователя.
func (s *PostgresCredentialStorage) Get(ctx context.Context, userID uuid.UUID) (*models.SellerCredentials, error) {
	query := `
		SELECT user_id, access_token, refresh_token, profile, updated_at
		FROM seller_credentials
		WHERE user_id = $1
	`

	creds := &models.SellerCredentials{}
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&creds.UserID,
		&creds.AccessToken,
		&creds.RefreshToken,
		&creds.Profile,
		&creds.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCredentialsNotFound
		}
		return nil, fmt.Errorf("failed to get seller credentials: %w", err)
	}

	return creds, nil
}

// Clear удаляет данные доступа пользователя. Повторный вызов безвреден.
func (s *PostgresCredentialStorage) Clear(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM seller_credentials WHERE user_id = $1`

	if _, err := s.pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear seller credentials: %w", err)
	}

	return nil
}
