package models

import (
	"time"

	"github.com/google/uuid"
)

// DisputeRequest — заявка на открытие спора по заказу.
type DisputeRequest struct {
	OrderID     string `json:"order_id"`
	OrderSerial string `json:"order_serial"`
	DisputeHead string `json:"dispute_head"`
	Reason      string `json:"reason"`
	ImgURL      string `json:"img_url,omitempty"`
}

// Dispute — локальная запись об отправленном споре.
type Dispute struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	OrderID     string    `db:"order_id"`
	OrderSerial string    `db:"order_serial"`
	DisputeHead string    `db:"dispute_head"`
	Reason      string    `db:"reason"`
	ImgURL      string    `db:"img_url"`
	CreatedAt   time.Time `db:"created_at"`
}

// DisputeResponse — DTO записи спора для ответа дашборда.
type DisputeResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderID     string    `json:"order_id"`
	OrderSerial string    `json:"order_serial"`
	DisputeHead string    `json:"dispute_head"`
	Reason      string    `json:"reason"`
	ImgURL      string    `json:"img_url,omitempty"`
	CreatedAt   string    `json:"created_at"`
}
