package seller

import (
	"context"
	"net/url"
	"strconv"

	"github.com/apoorva792/Reseller-Dashboard/internal/models"
)

// billEnvelope — конверт ответа журнала кошелька; форматы гуляют так же,
// как и у списка заказов.
type billEnvelope struct {
	Bills      []*models.Bill `json:"bills"`
	Data       []*models.Bill `json:"data"`
	Total      *int           `json:"total"`
	TotalCount *int           `json:"total_count"`
}

func (e *billEnvelope) page() *models.BillPage {
	bills := e.Bills
	if bills == nil {
		bills = e.Data
	}
	if bills == nil {
		bills = []*models.Bill{}
	}

	total := len(bills)
	switch {
	case e.Total != nil:
		total = *e.Total
	case e.TotalCount != nil:
		total = *e.TotalCount
	}

	return &models.BillPage{Bills: bills, TotalCount: total}
}

// GetBalance возвращает текущий баланс кошелька продавца.
func (c *Client) GetBalance(ctx context.Context, token string) (*models.Balance, error) {
	var balance models.Balance
	if err := c.getJSON(ctx, token, "/wallet/get-balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// GetBills возвращает страницу журнала операций кошелька.
func (c *Client) GetBills(ctx context.Context, token string, page, pageSize int) (*models.BillPage, error) {
	if page <= 0 {
		page = models.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var env billEnvelope
	if err := c.getJSON(ctx, token, "/wallet/get-bills", query, &env); err != nil {
		return nil, err
	}
	return env.page(), nil
}
