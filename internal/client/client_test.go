package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/juchu-dx/api/internal/model"
)

func testHeader() model.Header {
	h := model.NewHeader(time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC))
	h.HouseName = "山田様邸"
	return h
}

func TestCreateSuccess(t *testing.T) {
	var gotBody map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/orders/create" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"message":  "受注が正常に登録されました",
			"order_id": 31,
		})
	}))
	defer server.Close()

	c := New(server.URL)
	item := model.NewLineItem(1)
	item.ProductName = "合板 12mm"
	id, err := c.Create(context.Background(), testHeader(), []model.LineItem{item})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id != 31 {
		t.Errorf("order id: got %d", id)
	}

	// The payload carries camelCase field names.
	if _, ok := gotBody["formData"]; !ok {
		t.Fatal("payload missing formData")
	}
	if !strings.Contains(string(gotBody["formData"]), `"houseName":"山田様邸"`) {
		t.Errorf("formData not camelCase: %s", gotBody["formData"])
	}
	if !strings.Contains(string(gotBody["orderDetails"]), `"productName":"合板 12mm"`) {
		t.Errorf("orderDetails not camelCase: %s", gotBody["orderDetails"])
	}
}

func TestCreateValidationErrorFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "受注日は必須です"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Create(context.Background(), model.Header{}, []model.LineItem{model.NewLineItem(1)})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "受注日は必須です") {
		t.Errorf("expected server message, got: %v", err)
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("expected status code in error, got: %v", err)
	}
}

func TestCreateSuccessFalseBody(t *testing.T) {
	// 200 with success:false still surfaces the server message.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "データの保存に失敗しました"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Create(context.Background(), testHeader(), []model.LineItem{model.NewLineItem(1)})
	if err == nil || !strings.Contains(err.Error(), "データの保存に失敗しました") {
		t.Errorf("expected server message, got: %v", err)
	}
}

func TestCreateUnparseableErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Create(context.Background(), testHeader(), []model.LineItem{model.NewLineItem(1)})
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Errorf("expected generic fallback with status, got: %v", err)
	}
}

func TestListSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/orders/list" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"orders": []map[string]any{
				{
					"id":                 5,
					"receive_order_date": "2025-10-06",
					"house_name":         "鈴木様邸",
					"order_details": []map[string]any{
						{"id": 1, "order_id": 5, "product_name": "断熱材", "quantity": 2},
						{"id": 2, "order_id": 5, "product_name": "防水シート", "quantity": 1},
					},
				},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	orders, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("orders: got %d", len(orders))
	}
	o := orders[0]
	if o.ID != 5 || o.Header.HouseName != "鈴木様邸" {
		t.Errorf("order mapping: %+v", o)
	}
	if len(o.Details) != 2 || o.Details[0].ProductName != "断熱材" {
		t.Errorf("details mapping: %+v", o.Details)
	}
}

func TestListServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "データ取得エラー: connection refused"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "データ取得エラー") {
		t.Errorf("expected server message, got: %v", err)
	}
}

func TestListTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	c := New(server.URL)
	_, err := c.List(context.Background())
	if err == nil || !strings.Contains(err.Error(), "受注一覧の取得に失敗しました") {
		t.Errorf("expected generic fallback, got: %v", err)
	}
}
