// Package csvcheck выполняет локальную проверку CSV-файла заказов перед
// отправкой на бэкенд. Проверка никогда не переписывает содержимое файла:
// при успехе наверх уходит оригинал.
package csvcheck

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxFileSize — предел размера файла (10MB); проверяется до чтения содержимого.
const MaxFileSize = 10 << 20

// templateColumns — канонический порядок колонок шаблона загрузки.
var templateColumns = []string{
	"order-id",
	"ship-phone",
	"sku",
	"quantity-purchased",
	"recipient-name",
	"ship-address-1",
	"ship-address-2",
	"ship-address-3",
	"ship-city",
	"ship-state",
	"ship-postal-code",
	"consumer_price",
	"order-item-id",
	"product-name",
	"shipping-price",
}

// requiredColumns — колонки, без которых загрузка блокируется.
var requiredColumns = []string{
	"order-id",
	"sku",
	"quantity-purchased",
	"recipient-name",
	"ship-address-1",
	"ship-city",
	"ship-state",
	"ship-postal-code",
	"order-item-id",
}

// essentialColumns — колонки, которые обязаны разрешаться по индексу
// даже при расхождении числа колонок в строке данных.
var essentialColumns = []string{
	"order-id",
	"sku",
	"quantity-purchased",
	"recipient-name",
}

var (
	orderIDPattern = regexp.MustCompile(`^(\d+-\d+-\d+|\w+-\d+)$`)
	skuPattern     = regexp.MustCompile(`^\d+$`)
)

// Result — итог проверки одной попытки загрузки. Создаётся заново на каждую
// попытку; предупреждения не блокируют отправку, BlockingError — блокирует.
type Result struct {
	Proceed       bool     `json:"proceed"`
	Warnings      []string `json:"warnings,omitempty"`
	BlockingError string   `json:"blocking_error,omitempty"`
}

func blocked(msg string) *Result {
	return &Result{Proceed: false, BlockingError: msg}
}

func (r *Result) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate проверяет файл заказов. Расширение и размер проверяются до
// чтения содержимого; дальше идут структурные проверки заголовка и первой
// строки данных и мягкие проверки форматов.
func Validate(filename string, size int64, r io.Reader) *Result {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return blocked("only .csv files are accepted")
	}
	if size > MaxFileSize {
		return blocked("file too large: the limit is 10MB")
	}

	content, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return blocked("unable to read file content")
	}
	if int64(len(content)) > MaxFileSize {
		return blocked("file too large: the limit is 10MB")
	}

	return validateContent(string(content))
}

func validateContent(content string) *Result {
	lines := splitLines(content)
	if len(lines) < 2 {
		return blocked("file must contain a header row and at least one data row")
	}

	header := parseHeader(lines[0])
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return blocked("missing required columns: " + strings.Join(missing, ", "))
	}

	result := &Result{Proceed: true}

	if len(header) != len(templateColumns) {
		result.warn("header has %d columns, the template defines %d", len(header), len(templateColumns))
	}

	dataRow := strings.Split(lines[1], ",")
	if len(dataRow) != len(header) {
		for _, name := range essentialColumns {
			if index[name] >= len(dataRow) {
				return blocked(fmt.Sprintf("data row does not reach required column %q", name))
			}
		}
		result.warn("data row has %d columns while header has %d", len(dataRow), len(header))
	}

	checkPattern(result, dataRow, index, "order-id", orderIDPattern,
		"order-id %q does not look like a marketplace order id")
	checkPattern(result, dataRow, index, "sku", skuPattern,
		"sku %q is expected to be numeric")

	return result
}

// splitLines режет содержимое на строки, отбрасывая пустые.
func splitLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseHeader нормализует имена колонок: trim, нижний регистр и приведение
// любых вариантов телефона получателя (содержит и "ship", и "phone")
// к каноническому "ship-phone".
func parseHeader(line string) []string {
	fields := strings.Split(line, ",")
	names := make([]string, len(fields))
	for i, f := range fields {
		name := strings.ToLower(strings.TrimSpace(f))
		if strings.Contains(name, "ship") && strings.Contains(name, "phone") {
			name = "ship-phone"
		}
		names[i] = name
	}
	return names
}

// checkPattern добавляет предупреждение, если значение колонки не подходит
// под ожидаемый формат. Формат — рекомендация, не блокировка.
func checkPattern(result *Result, row []string, index map[string]int, column string, pattern *regexp.Regexp, format string) {
	idx, ok := index[column]
	if !ok || idx >= len(row) {
		return
	}
	value := strings.TrimSpace(row[idx])
	if value == "" {
		return
	}
	if !pattern.MatchString(value) {
		result.warn(format, value)
	}
}
