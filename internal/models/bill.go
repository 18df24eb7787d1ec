package models

import "github.com/shopspring/decimal"

// DebitloadType — категория операции по кошельку в нумерации бэкенда.
type DebitloadType int

const (
	DebitloadPayment    DebitloadType = 0
	DebitloadRecharge   DebitloadType = 1
	DebitloadWithdrawal DebitloadType = 2
	DebitloadRefund     DebitloadType = 3
)

// Label возвращает человекочитаемое название категории.
func (t DebitloadType) Label() string {
	switch t {
	case DebitloadPayment:
		return "Payment"
	case DebitloadRecharge:
		return "Recharge"
	case DebitloadWithdrawal:
		return "Withdrawal"
	case DebitloadRefund:
		return "Refund"
	default:
		return "Transaction"
	}
}

// Bill — запись журнала кошелька со снимками баланса до и после операции.
type Bill struct {
	BillID        string        `json:"bill_id"`
	Type          DebitloadType `json:"debitload_type"`
	Amount        Price         `json:"amount"`
	BalanceBefore Price         `json:"balance_before"`
	BalanceAfter  Price         `json:"balance_after"`
	Remark        string        `json:"remark"`
	CreatedAt     string        `json:"created_at"`
}

// SignedAmount возвращает сумму со знаком для отображения: списания
// отрицательные, пополнения положительные. Для неизвестной категории
// знак восстанавливается по разнице снимков баланса.
func (b *Bill) SignedAmount() decimal.Decimal {
	amount := decimal.Zero
	if b.Amount.Valid {
		amount = b.Amount.Value.Abs()
	}

	switch b.Type {
	case DebitloadPayment, DebitloadWithdrawal:
		return amount.Neg()
	case DebitloadRecharge, DebitloadRefund:
		return amount
	}

	if b.BalanceBefore.Valid && b.BalanceAfter.Valid && b.BalanceAfter.Value.LessThan(b.BalanceBefore.Value) {
		return amount.Neg()
	}
	return amount
}

// BillView — DTO записи журнала для ответа дашборда.
type BillView struct {
	BillID        string  `json:"bill_id"`
	TypeLabel     string  `json:"type_label"`
	Amount        float64 `json:"amount"`
	BalanceBefore float64 `json:"balance_before"`
	BalanceAfter  float64 `json:"balance_after"`
	Remark        string  `json:"remark,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// BalanceResponse - ответ с балансом кошелька продавца.
type BalanceResponse struct {
	Available float64 `json:"available"`
	Frozen    float64 `json:"frozen"`
}

// BillListResponse — ответ со страницей журнала кошелька.
type BillListResponse struct {
	Bills      []*BillView `json:"bills"`
	TotalCount int         `json:"total_count"`
}

// BillPage — страница журнала кошелька.
type BillPage struct {
	Bills      []*Bill `json:"bills"`
	TotalCount int     `json:"total_count"`
}

// Balance — текущее состояние кошелька продавца.
type Balance struct {
	Available Price `json:"available"`
	Frozen    Price `json:"frozen"`
}
