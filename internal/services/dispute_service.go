package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyDispute возвращается, когда в заявке нет заказа или причины.
var ErrEmptyDispute = errors.New("order id, dispute head and reason are required")

// DisputeService отправляет споры на бэкенд и ведёт их локальный журнал.
type DisputeService interface {
	Submit(ctx context.Context, userID uuid.UUID, req *models.DisputeRequest) (*models.DisputeResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.DisputeResponse, error)
}

// DisputeServiceImpl реализует DisputeService.
type DisputeServiceImpl struct {
	api      SellerAPI
	sessions SessionService
	disputes DisputeStorage
	logger   *zap.SugaredLogger
}

// NewDisputeService создаёт сервис споров.
func NewDisputeService(api SellerAPI, sessions SessionService, disputes DisputeStorage, logger *zap.SugaredLogger) *DisputeServiceImpl {
	return &DisputeServiceImpl{
		api:      api,
		sessions: sessions,
		disputes: disputes,
		logger:   logger,
	}
}

// Submit отправляет спор на бэкенд и записывает его в локальный журнал.
func (s *DisputeServiceImpl) Submit(ctx context.Context, userID uuid.UUID, req *models.DisputeRequest) (*models.DisputeResponse, error) {
	if req == nil || req.OrderID == "" || req.DisputeHead == "" || req.Reason == "" {
		return nil, ErrEmptyDispute
	}

	token, err := s.sessions.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.api.SubmitDispute(ctx, token, req); err != nil {
		if seller.IsAuthError(err) {
			if clearErr := s.sessions.Invalidate(ctx, userID); clearErr != nil {
				s.logger.Errorw("failed to invalidate seller session",
					"user_id", userID, "error", clearErr)
			}
		}
		return nil, err
	}

	dispute := &models.Dispute{
		UserID:      userID,
		OrderID:     req.OrderID,
		OrderSerial: req.OrderSerial,
		DisputeHead: req.DisputeHead,
		Reason:      req.Reason,
		ImgURL:      req.ImgURL,
	}
	if err := s.disputes.Create(ctx, dispute); err != nil {
		// спор уже принят бэкендом; потерю локальной записи не превращаем
		// в ошибку пользователя
		s.logger.Errorw("failed to record dispute locally",
			"user_id", userID, "order_id", req.OrderID, "error", err)
		dispute.CreatedAt = time.Now()
	}

	return disputeResponse(dispute), nil
}

// List возвращает локальный журнал споров пользователя.
func (s *DisputeServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*models.DisputeResponse, error) {
	disputes, err := s.disputes.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get disputes: %w", err)
	}

	resp := make([]*models.DisputeResponse, 0, len(disputes))
	for _, d := range disputes {
		resp = append(resp, disputeResponse(d))
	}
	return resp, nil
}

func disputeResponse(d *models.Dispute) *models.DisputeResponse {
	return &models.DisputeResponse{
		ID:          d.ID,
		OrderID:     d.OrderID,
		OrderSerial: d.OrderSerial,
		DisputeHead: d.DisputeHead,
		Reason:      d.Reason,
		ImgURL:      d.ImgURL,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
}
