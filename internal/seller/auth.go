package seller

import (
	"context"
	"encoding/json"
)

// LoginResult — ответ бэкенда на вход или обновление токена продавца.
type LoginResult struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Profile      json.RawMessage `json:"profile"`
}

// Login выполняет вход в аккаунт продавца и возвращает пару токенов и профиль.
func (c *Client) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	payload := map[string]string{
		"login":    login,
		"password": password,
	}

	var result LoginResult
	if err := c.postJSON(ctx, "", "/auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Refresh обменивает refresh-токен на новую пару токенов.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	payload := map[string]string{
		"refresh_token": refreshToken,
	}

	var result LoginResult
	if err := c.postJSON(ctx, "", "/auth/refresh", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
