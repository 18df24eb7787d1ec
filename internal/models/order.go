package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// TabID — идентификатор вкладки списка заказов.
type TabID string

const (
	TabAll        TabID = "all"
	TabUnpaid     TabID = "unpaid"
	TabProcessing TabID = "processing"
	TabShipped    TabID = "shipped"
	TabAbnormal   TabID = "abnormal"
	TabTicketed   TabID = "ticketed"
	TabCancelled  TabID = "cancelled"
)

const (
	// DefaultPage — страница по умолчанию.
	DefaultPage = 1
	// DefaultPageSize — размер страницы по умолчанию.
	DefaultPageSize = 20
	// SourceAll — значение фильтра источника, означающее «без ограничения».
	SourceAll = "ALL"
)

// OrderFilter — фильтры списка заказов. Все поля опциональны,
// кроме Page/PageSize, которые получают значения по умолчанию.
type OrderFilter struct {
	FromDate string
	ToDate   string
	Search   string
	Source   string
	Page     int
	PageSize int
	SortKey  string
}

// Normalize выставляет значения по умолчанию и убирает фиктивный источник.
func (f *OrderFilter) Normalize() {
	if f.Page <= 0 {
		f.Page = DefaultPage
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.Source == SourceAll {
		f.Source = ""
	}
}

// Price — денежное значение из ответа бэкенда. Бэкенд присылает его
// то числом, то строкой, а иногда мусором; мусор и отсутствие значения
// трактуются как «нет цены» (Valid=false), строка заказа не отбрасывается.
type Price struct {
	Value decimal.Decimal
	Valid bool
}

// UnmarshalJSON принимает число, числовую строку, null и мусор.
func (p *Price) UnmarshalJSON(data []byte) error {
	p.Valid = false
	p.Value = decimal.Zero

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		// невалидная цена — не ошибка, а отсутствие значения
		return nil
	}

	p.Value = d
	p.Valid = true
	return nil
}

// MarshalJSON сериализует валидную цену, отсутствующую — как null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// Product — позиция заказа.
type Product struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"product_name"`
	Quantity   int    `json:"quantity"`
	Price      Price  `json:"price"`
	FinalPrice Price  `json:"final_price"`
}

// Order — заказ в том виде, в каком его отдаёт API продавца.
// Статусы приходят двухбуквенными кодами (см. internal/status).
type Order struct {
	OrderID        string    `json:"order_id"`
	OrderSerial    string    `json:"order_serial"`
	Status         string    `json:"order_status"`
	PaymentStatus  string    `json:"pay_status"`
	ShippingStatus string    `json:"ship_status"`
	ReturnStatus   string    `json:"return_status"`
	DisputeStatus  string    `json:"dispute_status"`
	Products       []Product `json:"products"`
	PurchaseDate   string    `json:"purchase_date"`
	RecipientName  string    `json:"recipient_name"`
	ShipAddress    string    `json:"ship_address"`
	ShipPhone      string    `json:"ship_phone"`
	Source         string    `json:"source"`
}

// TotalAmount считает сумму заказа: Σ final_price × quantity.
// Позиция без валидной цены вносит ноль; пустой список даёт ноль.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	if o == nil {
		return total
	}
	for _, p := range o.Products {
		if !p.FinalPrice.Valid {
			continue
		}
		total = total.Add(p.FinalPrice.Value.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// OrderPage — страница списка заказов.
type OrderPage struct {
	Orders     []*Order
	TotalCount int
}

// OrderView — DTO заказа для ответа дашборда.
type OrderView struct {
	OrderID       string    `json:"order_id"`
	OrderSerial   string    `json:"order_serial"`
	DisplayStatus string    `json:"display_status"`
	StatusVariant string    `json:"status_variant"`
	TotalAmount   float64   `json:"total_amount"`
	PurchaseDate  string    `json:"purchase_date"`
	RecipientName string    `json:"recipient_name"`
	Source        string    `json:"source,omitempty"`
	Products      []Product `json:"products"`
}

// OrderListResponse — ответ на запрос списка заказов.
type OrderListResponse struct {
	Orders     []*OrderView `json:"orders"`
	TotalCount int          `json:"total_count"`
}
