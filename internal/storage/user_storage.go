package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrLoginExists  = errors.New("login already exists")
)

// PostgresUserStorage реализует хранилище пользователей в PostgreSQL.
type PostgresUserStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStorage создаёт новый экземпляр PostgresUserStorage.
func NewPostgresUserStorage(pool *pgxpool.Pool) *PostgresUserStorage {
	return &PostgresUserStorage{pool: pool}
}

// Create создаёт нового пользователя.
func (s *PostgresUserStorage) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, login, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	// Генерируем UUID, если не задан
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	err := s.pool.QueryRow(ctx, query,
		user.ID,
		user.Login,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		// Проверка на уникальность логина
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrLoginExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByLogin ищет пользователя по логину.
func (s *PostgresUserStorage) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `
		SELECT id, login, password_hash, created_at, updated_at
		FROM users
		WHERE login = $1
	`

	return scanUser(s.pool.QueryRow(ctx, query, login))
}

// GetByID ищет пользователя по ID.
func (s *PostgresUserStorage) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, login, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// scanUser помогает читать пользователя из строки результата.
func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
