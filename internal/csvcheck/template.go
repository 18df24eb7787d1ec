package csvcheck

import "strings"

// sampleRow — строка-пример в шаблоне; проходит собственную проверку
// без единого предупреждения.
var sampleRow = []string{
	"111-2222222-3333333", // order-id
	"+12025550117",        // ship-phone
	"483920175",           // sku
	"1",                   // quantity-purchased
	"John Smith",          // recipient-name
	"1745 T Street",       // ship-address-1
	"",                    // ship-address-2
	"",                    // ship-address-3
	"Sacramento",          // ship-city
	"CA",                  // ship-state
	"95811",               // ship-postal-code
	"19.99",               // consumer_price
	"11122233344455",      // order-item-id
	"Ceramic Mug",         // product-name
	"4.50",                // shipping-price
}

// TemplateColumns возвращает копию канонического списка колонок.
func TemplateColumns() []string {
	columns := make([]string, len(templateColumns))
	copy(columns, templateColumns)
	return columns
}

// Template генерирует CSV-шаблон загрузки: заголовок и строка-пример.
func Template() []byte {
	var b strings.Builder
	b.WriteString(strings.Join(templateColumns, ","))
	b.WriteString("\n")
	b.WriteString(strings.Join(sampleRow, ","))
	b.WriteString("\n")
	return []byte(b.String())
}
