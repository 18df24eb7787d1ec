package storage

import (
	"context"
	"fmt"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDisputeStorage хранит локальный журнал отправленных споров.
type PostgresDisputeStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresDisputeStorage создаёт новый экземпляр PostgresDisputeStorage.
func NewPostgresDisputeStorage(pool *pgxpool.Pool) *PostgresDisputeStorage {
	return &PostgresDisputeStorage{pool: pool}
}

// Create записывает отправленный спор.
func (s *PostgresDisputeStorage) Create(ctx context.Context, dispute *models.Dispute) error {
	query := `
		INSERT INTO disputes (id, user_id, order_id, order_serial, dispute_head, reason, img_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	if dispute.ID == uuid.Nil {
		dispute.ID = uuid.New()
	}

	err := s.pool.QueryRow(ctx, query,
		dispute.ID,
		dispute.UserID,
		dispute.OrderID,
		dispute.OrderSerial,
		dispute.DisputeHead,
		dispute.Reason,
		dispute.ImgURL,
	).Scan(&dispute.ID, &dispute.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create dispute: %w", err)
	}

	return nil
}

// GetByUserID возвращает споры пользователя (свежие первыми).
func (s *PostgresDisputeStorage) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Dispute, error) {
	query := `
		SELECT id, user_id, order_id, order_serial, dispute_head, reason, img_url, created_at
		FROM disputes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query disputes: %w", err)
	}
	defer rows.Close()

	var disputes []*models.Dispute
	for rows.Next() {
		dispute := &models.Dispute{}
		err := rows.Scan(
			&dispute.ID,
			&dispute.UserID,
			&dispute.OrderID,
			&dispute.OrderSerial,
			&dispute.DisputeHead,
			&dispute.Reason,
			&dispute.ImgURL,
			&dispute.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispute: %w", err)
		}
		disputes = append(disputes, dispute)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	return disputes, nil
}
