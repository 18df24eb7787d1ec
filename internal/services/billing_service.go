package services

import (
	"context"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
	"github.com/apoorva792/Reseller-Dashboard/internal/seller"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BillingService отдаёт баланс и журнал операций кошелька продавца.
type BillingService interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceResponse, error)
	GetBills(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.BillListResponse, error)
}

// BillingServiceImpl реализует BillingService.
type BillingServiceImpl struct {
	api      SellerAPI
	sessions SessionService
	logger   *zap.SugaredLogger
}

// NewBillingService создаёт сервис кошелька.
func NewBillingService(api SellerAPI, sessions SessionService, logger *zap.SugaredLogger) *BillingServiceImpl {
	return &BillingServiceImpl{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// GetBalance возвращает текущий баланс кошелька.
func (s *BillingServiceImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*models.BalanceResponse, error) {
	token, err := s.sessions.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.api.GetBalance(ctx, token)
	if err != nil {
		return nil, s.noteAuthFailure(ctx, userID, err)
	}

	available, _ := balance.Available.Value.Float64()
	frozen, _ := balance.Frozen.Value.Float64()

	return &models.BalanceResponse{
		Available: available,
		Frozen:    frozen,
	}, nil
}

// GetBills возвращает страницу журнала с подписями категорий и суммами
// со знаком для отображения.
func (s *BillingServiceImpl) GetBills(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.BillListResponse, error) {
	token, err := s.sessions.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	bills, err := s.api.GetBills(ctx, token, page, pageSize)
	if err != nil {
		return nil, s.noteAuthFailure(ctx, userID, err)
	}

	views := make([]*models.BillView, 0, len(bills.Bills))
	for _, bill := range bills.Bills {
		if bill == nil {
			continue
		}
		views = append(views, billView(bill))
	}

	return &models.BillListResponse{
		Bills:      views,
		TotalCount: bills.TotalCount,
	}, nil
}

func (s *BillingServiceImpl) noteAuthFailure(ctx context.Context, userID uuid.UUID, err error) error {
	if seller.IsAuthError(err) {
		if clearErr := s.sessions.Invalidate(ctx, userID); clearErr != nil {
			s.logger.Errorw("failed to invalidate seller session",
				"user_id", userID, "error", clearErr)
		}
	}
	return err
}

// billView собирает DTO записи журнала.
func billView(bill *models.Bill) *models.BillView {
	amount, _ := bill.SignedAmount().Float64()
	before, _ := bill.BalanceBefore.Value.Float64()
	after, _ := bill.BalanceAfter.Value.Float64()

	return &models.BillView{
		BillID:        bill.BillID,
		TypeLabel:     bill.Type.Label(),
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  after,
		Remark:        bill.Remark,
		CreatedAt:     bill.CreatedAt,
	}
}
