// Package client talks to the order API: it serializes form snapshots
// for the create endpoint and maps the snake_case list response back
// into the client-side model.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/juchu-dx/api/internal/model"
)

const (
	createPath = "/api/orders/create"
	listPath   = "/api/orders/list"
)

// genericListError is the fallback shown when the list endpoint fails
// without a usable server message.
const genericListError = "受注一覧の取得に失敗しました"

// Client issues create and list requests against the order API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type createRequest struct {
	FormData     model.Header     `json:"formData"`
	OrderDetails []model.LineItem `json:"orderDetails"`
}

type createResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

type listResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Orders  []apiOrder `json:"orders"`
}

// Create posts the header and line items and returns the new order id.
// A non-2xx status or a success:false body becomes an error carrying
// the status code or the server-supplied message.
func (c *Client) Create(ctx context.Context, header model.Header, items []model.LineItem) (int64, error) {
	body, err := json.Marshal(createRequest{FormData: header, OrderDetails: items})
	if err != nil {
		return 0, fmt.Errorf("marshal order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("データの保存に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	var result createResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && result.Message != "" {
			return 0, fmt.Errorf("%s (HTTP %d)", result.Message, resp.StatusCode)
		}
		return 0, fmt.Errorf("データの保存に失敗しました (HTTP %d)", resp.StatusCode)
	}
	if decodeErr != nil {
		return 0, fmt.Errorf("decode create response: %w", decodeErr)
	}
	if !result.Success {
		if result.Message != "" {
			return 0, fmt.Errorf("%s", result.Message)
		}
		return 0, fmt.Errorf("データの保存に失敗しました")
	}
	return result.OrderID, nil
}

// List fetches all orders with their line items, translated into the
// client-side camelCase model.
func (c *Client) List(ctx context.Context) ([]model.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+listPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", genericListError, err)
	}
	defer resp.Body.Close()

	var result listResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && result.Message != "" {
			return nil, fmt.Errorf("%s (HTTP %d)", result.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("%s (HTTP %d)", genericListError, resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode list response: %w", decodeErr)
	}
	if !result.Success {
		if result.Message != "" {
			return nil, fmt.Errorf("%s", result.Message)
		}
		return nil, fmt.Errorf("%s", genericListError)
	}

	orders := make([]model.Order, len(result.Orders))
	for i, o := range result.Orders {
		orders[i] = orderFromAPI(o)
	}
	return orders, nil
}
