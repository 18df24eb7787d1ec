package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/apoorva792/Reseller-Dashboard/internal/services"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestSellerHandler_Login(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		requestBody    string
		mockService    *MockSessionService
		expectedStatus int
	}{
		{
			name:        "successful link",
			requestBody: `{"login":"shop","password":"secret"}`,
			mockService: &MockSessionService{
				LinkFunc: func(ctx context.Context, id uuid.UUID, login, password string) error {
					if login != "shop" || password != "secret" {
						t.Errorf("Link(%q, %q)", login, password)
					}
					return nil
				},
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "invalid JSON",
			requestBody:    `{"login":"shop"`,
			mockService:    &MockSessionService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "empty credentials",
			requestBody: `{"login":"","password":""}`,
			mockService: &MockSessionService{
				LinkFunc: func(ctx context.Context, id uuid.UUID, login, password string) error {
					return services.ErrEmptyCredentials
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "rejected by seller backend",
			requestBody: `{"login":"shop","password":"wrong"}`,
			mockService: &MockSessionService{
				LinkFunc: func(ctx context.Context, id uuid.UUID, login, password string) error {
					return &seller.Error{Kind: seller.KindHTTP, Status: http.StatusUnauthorized}
				},
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "seller backend unreachable",
			requestBody: `{"login":"shop","password":"secret"}`,
			mockService: &MockSessionService{
				LinkFunc: func(ctx context.Context, id uuid.UUID, login, password string) error {
					return &seller.Error{Kind: seller.KindNetwork}
				},
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/seller/login", strings.NewReader(tt.requestBody))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := authedContext(e, req, rec, userID)

			handler := NewSellerHandler(tt.mockService)
			err := handler.Login(c)

			if tt.expectedStatus < 400 {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				if rec.Code != tt.expectedStatus {
					t.Errorf("Expected status %d, got %d", tt.expectedStatus, rec.Code)
				}
			} else {
				if he, ok := err.(*echo.HTTPError); !ok || he.Code != tt.expectedStatus {
					t.Errorf("Expected status %d, got error %v", tt.expectedStatus, err)
				}
			}
		})
	}
}

func TestSellerHandler_Refresh(t *testing.T) {
	userID := uuid.New()

	t.Run("successful refresh", func(t *testing.T) {
		mockService := &MockSessionService{
			RefreshFunc: func(ctx context.Context, id uuid.UUID) error {
				return nil
			},
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/seller/refresh", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(mockService)
		if err := handler.Refresh(c); err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
	})

	t.Run("not linked maps to 401", func(t *testing.T) {
		mockService := &MockSessionService{
			RefreshFunc: func(ctx context.Context, id uuid.UUID) error {
				return services.ErrSellerNotLinked
			},
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/seller/refresh", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(mockService)
		err := handler.Refresh(c)
		if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("Refresh() error = %v, want 401", err)
		}
	})

	t.Run("stale refresh token maps to 401", func(t *testing.T) {
		mockService := &MockSessionService{
			RefreshFunc: func(ctx context.Context, id uuid.UUID) error {
				return &seller.Error{Kind: seller.KindHTTP, Status: http.StatusUnauthorized}
			},
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/seller/refresh", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(mockService)
		err := handler.Refresh(c)
		if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("Refresh() error = %v, want 401", err)
		}
	})
}

func TestSellerHandler_Logout(t *testing.T) {
	userID := uuid.New()

	t.Run("successful logout", func(t *testing.T) {
		logoutCalls := 0
		mockService := &MockSessionService{
			LogoutFunc: func(ctx context.Context, id uuid.UUID) error {
				logoutCalls++
				return nil
			},
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/seller/logout", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(mockService)
		if err := handler.Logout(c); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}
		if rec.Code != http.StatusNoContent || logoutCalls != 1 {
			t.Errorf("status = %d, logout calls = %d", rec.Code, logoutCalls)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		mockService := &MockSessionService{
			LogoutFunc: func(ctx context.Context, id uuid.UUID) error {
				return errors.New("db down")
			},
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/seller/logout", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(mockService)
		err := handler.Logout(c)
		if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusInternalServerError {
			t.Errorf("Logout() error = %v, want 500", err)
		}
	})
}

func TestSellerHandler_Profile(t *testing.T) {
	userID := uuid.New()

	t.Run("stored profile is returned as is", func(t *testing.T) {
		mockService := &MockSessionService{
			ProfileFunc: func(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
				return json.RawMessage(`{"shop":"mugs","rating":4.8}`), nil
			},
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/seller/profile", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(mockService)
		if err := handler.Profile(c); err != nil {
			t.Fatalf("Profile() error = %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if strings.TrimSpace(rec.Body.String()) != `{"shop":"mugs","rating":4.8}` {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("empty profile becomes empty object", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/seller/profile", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(&MockSessionService{})
		if err := handler.Profile(c); err != nil {
			t.Fatalf("Profile() error = %v", err)
		}
		if strings.TrimSpace(rec.Body.String()) != "{}" {
			t.Errorf("body = %q, want {}", rec.Body.String())
		}
	})

	t.Run("not linked maps to 401", func(t *testing.T) {
		mockService := &MockSessionService{
			ProfileFunc: func(ctx context.Context, id uuid.UUID) (json.RawMessage, error) {
				return nil, services.ErrSellerNotLinked
			},
		}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/seller/profile", nil)
		rec := httptest.NewRecorder()
		c := authedContext(e, req, rec, userID)

		handler := NewSellerHandler(mockService)
		err := handler.Profile(c)
		if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
			t.Errorf("Profile() error = %v, want 401", err)
		}
	})
}
