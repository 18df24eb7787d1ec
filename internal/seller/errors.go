package seller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrOrderNotFound возвращается, когда заказ не найден ни одним способом.
var ErrOrderNotFound = errors.New("order not found")

// ErrorKind — вид ошибки обращения к API продавца.
type ErrorKind int

const (
	// KindNetwork — ответ от сервера не получен.
	KindNetwork ErrorKind = iota
	// KindHTTP — сервер ответил статусом >= 400.
	KindHTTP
	// KindLocal — локальная ошибка до или после сетевого вызова.
	KindLocal
)

// Error — нормализованная ошибка API продавца. Все ошибки клиента проходят
// через одну точку нормализации и дальше разбираются только по Kind/Status.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("seller api unreachable: %v", e.cause)
	case KindHTTP:
		return fmt.Sprintf("seller api status %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("seller api: %s", e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsAuth сообщает, что бэкенд отверг токен (401).
func (e *Error) IsAuth() bool {
	return e.Kind == KindHTTP && e.Status == http.StatusUnauthorized
}

// IsValidation сообщает об ошибке валидации на бэкенде (422).
func (e *Error) IsValidation() bool {
	return e.Kind == KindHTTP && e.Status == http.StatusUnprocessableEntity
}

// IsServer сообщает об ошибке на стороне бэкенда (5xx).
func (e *Error) IsServer() bool {
	return e.Kind == KindHTTP && e.Status >= http.StatusInternalServerError
}

// IsAuthError проверяет, есть ли в цепочке ошибок отказ авторизации бэкенда.
func IsAuthError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.IsAuth()
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, cause: err}
}

func localError(err error) *Error {
	return &Error{Kind: KindLocal, Message: err.Error(), cause: err}
}

func httpError(status int, body []byte) *Error {
	return &Error{Kind: KindHTTP, Status: status, Message: extractMessage(status, body)}
}

// genericTexts — подписи по статусам, когда тело ответа не содержит сообщения.
var genericTexts = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "authorization required",
	http.StatusForbidden:           "access denied",
	http.StatusNotFound:            "resource not found",
	http.StatusUnprocessableEntity: "validation failed",
	http.StatusTooManyRequests:     "too many requests",
	http.StatusInternalServerError: "seller service error",
	http.StatusBadGateway:          "seller service unavailable",
	http.StatusServiceUnavailable:  "seller service unavailable",
}

// extractMessage достаёт сообщение из тела ответа. Поле detail у 422 бывает
// строкой, массивом или вложенным объектом — все формы сводятся к одной строке.
func extractMessage(status int, body []byte) string {
	var payload struct {
		Message string          `json:"message"`
		Detail  json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Detail) > 0 {
			var detail interface{}
			if err := json.Unmarshal(payload.Detail, &detail); err == nil {
				if s := flattenDetail(detail); s != "" {
					return s
				}
			}
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	if text, ok := genericTexts[status]; ok {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// flattenDetail сводит произвольную структуру detail к читаемой строке.
func flattenDetail(v interface{}) string {
	switch d := v.(type) {
	case string:
		return d
	case []interface{}:
		parts := make([]string, 0, len(d))
		for _, item := range d {
			if s := flattenDetail(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]interface{}:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if s := flattenDetail(d[k]); s != "" {
				parts = append(parts, k+": "+s)
			}
		}
		return strings.Join(parts, "; ")
	case nil:
		return ""
	default:
		return fmt.Sprint(d)
	}
}
