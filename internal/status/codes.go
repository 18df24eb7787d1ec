// Package status хранит единственную таблицу соответствия двухбуквенных
// кодов бэкенда человекочитаемым статусам. Таблица — контракт с бэкендом
// и должна меняться синхронно с ним.
package status

import "github.com/apoorva792/Reseller-Dashboard/internal/models"

// Version — версия таблицы кодов; сверяется с версией на бэкенде при релизе.
const Version = "v3"

// Коды общего статуса заказа.
const (
	OrderNew       = "ON"
	OrderPaid      = "OP"
	OrderFinished  = "OF"
	OrderCancelled = "OC"
)

// Коды статуса оплаты.
const (
	PaymentUnpaid = "PU"
	PaymentPaid   = "PP"
	PaymentFailed = "PF"
)

// Коды статуса доставки.
const (
	ShippingPreparing = "SP"
	ShippingShipped   = "SS"
	ShippingDelivered = "SD"
	ShippingFailed    = "SF"
)

// Коды статуса возврата; RN — возврата нет.
const (
	ReturnNone      = "RN"
	ReturnRequested = "RR"
	ReturnApproved  = "RA"
	ReturnRejected  = "RJ"
)

// Коды статуса спора; DN — спора нет.
const (
	DisputeNone     = "DN"
	DisputePending  = "DP"
	DisputeResolved = "DR"
)

// Варианты отображения бейджа статуса.
const (
	VariantDefault     = "default"
	VariantSecondary   = "secondary"
	VariantOutline     = "outline"
	VariantDestructive = "destructive"
)

// Label — подпись статуса и вариант её отображения.
type Label struct {
	Text    string
	Variant string
}

var orderLabels = map[string]Label{
	OrderNew:       {Text: "New", Variant: VariantSecondary},
	OrderPaid:      {Text: "Paid", Variant: VariantDefault},
	OrderFinished:  {Text: "Completed", Variant: VariantDefault},
	OrderCancelled: {Text: "Cancelled", Variant: VariantDestructive},
}

var shippingLabels = map[string]Label{
	ShippingPreparing: {Text: "Preparing Shipment", Variant: VariantSecondary},
	ShippingShipped:   {Text: "Shipped", Variant: VariantDefault},
	ShippingDelivered: {Text: "Delivered", Variant: VariantDefault},
	ShippingFailed:    {Text: "Shipping Failed", Variant: VariantDestructive},
}

var returnLabels = map[string]Label{
	ReturnRequested: {Text: "Return Requested", Variant: VariantDestructive},
	ReturnApproved:  {Text: "Return Approved", Variant: VariantDestructive},
	ReturnRejected:  {Text: "Return Rejected", Variant: VariantOutline},
}

var disputeLabels = map[string]Label{
	DisputePending:  {Text: "Dispute Open", Variant: VariantDestructive},
	DisputeResolved: {Text: "Dispute Resolved", Variant: VariantDefault},
}

// OrderLabel возвращает подпись для кода общего статуса заказа.
func OrderLabel(code string) (Label, bool) {
	l, ok := orderLabels[code]
	return l, ok
}

// ShippingLabel возвращает подпись для кода доставки.
func ShippingLabel(code string) (Label, bool) {
	l, ok := shippingLabels[code]
	return l, ok
}

// ReturnLabel возвращает подпись для кода возврата.
func ReturnLabel(code string) (Label, bool) {
	l, ok := returnLabels[code]
	return l, ok
}

// DisputeLabel возвращает подпись для кода спора.
func DisputeLabel(code string) (Label, bool) {
	l, ok := disputeLabels[code]
	return l, ok
}

// Display выбирает отображаемый статус заказа. Правила проверяются строго
// по приоритету, выигрывает первое совпадение; неизвестный код на любом
// шаге проваливается к следующему правилу, а не к ошибке.
func Display(o *models.Order) Label {
	if o == nil {
		return Label{Text: "Processing", Variant: VariantSecondary}
	}

	// 1. Отменённый заказ перекрывает всё остальное.
	if o.Status == OrderCancelled {
		return Label{Text: "Cancelled", Variant: VariantDestructive}
	}

	// 2. Неоплаченный заказ.
	if o.PaymentStatus == PaymentUnpaid {
		return Label{Text: "Awaiting Payment", Variant: VariantOutline}
	}

	// 3. Активный возврат.
	if o.ReturnStatus != "" && o.ReturnStatus != ReturnNone {
		if l, ok := returnLabels[o.ReturnStatus]; ok {
			return l
		}
	}

	// 4. Активный спор.
	if o.DisputeStatus != "" && o.DisputeStatus != DisputeNone {
		if l, ok := disputeLabels[o.DisputeStatus]; ok {
			return l
		}
	}

	// 5. Статус доставки.
	if o.ShippingStatus != "" {
		if l, ok := shippingLabels[o.ShippingStatus]; ok {
			return l
		}
	}

	// 6. Основной статус заказа.
	if l, ok := orderLabels[o.Status]; ok {
		return l
	}

	// 7. Запасной вариант.
	return Label{Text: "Processing", Variant: VariantSecondary}
}
