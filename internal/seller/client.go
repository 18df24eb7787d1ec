// Package seller реализует клиент REST API продавца: подстановку
// bearer-токена, нормализацию ошибок и фасад операций дашборда.
package seller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseSize ограничивает размер читаемого тела ответа (10MB).
const maxResponseSize = 10 << 20

// Client — HTTP-клиент API продавца.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент API продавца.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// newRequest собирает запрос к бэкенду; непустой token подставляется
// в заголовок Authorization.
func (c *Client) newRequest(ctx context.Context, method, path, token string, query url.Values, body io.Reader) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, localError(fmt.Errorf("invalid seller url: %w", err))
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, localError(fmt.Errorf("build request: %w", err))
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do выполняет запрос и нормализует ошибку. Любой статус >= 400 становится
// Error{KindHTTP}, недоставленный запрос — Error{KindNetwork}.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, localError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, httpError(resp.StatusCode, body)
	}
	return body, nil
}

// getJSON выполняет GET и декодирует ответ в out.
func (c *Client) getJSON(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, query, nil)
	if err != nil {
		return err
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return localError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// postJSON выполняет POST с JSON-телом и декодирует ответ в out.
func (c *Client) postJSON(ctx context.Context, token, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return localError(fmt.Errorf("encode request: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, token, nil, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return localError(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
