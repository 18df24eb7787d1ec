package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя дашборда.
type User struct {
	ID           uuid.UUID `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// RegisterRequest - запрос на регистрацию пользователя.
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginRequest - запрос на аутентификацию пользователя.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
