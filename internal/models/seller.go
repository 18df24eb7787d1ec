package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SellerCredentials — сохранённые данные доступа к API продавца.
// Profile хранится сериализованным ровно в том виде, в каком его отдал бэкенд.
type SellerCredentials struct {
	UserID       uuid.UUID       `db:"user_id"`
	AccessToken  string          `db:"access_token"`
	RefreshToken string          `db:"refresh_token"`
	Profile      json.RawMessage `db:"profile"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// SellerLoginRequest — запрос привязки аккаунта продавца.
type SellerLoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
