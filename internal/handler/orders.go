package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/juchu-dx/api/internal/model"
	"github.com/juchu-dx/api/internal/service"
)

// OrderServicer defines the service methods needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	CreateOrder(ctx context.Context, req service.CreateOrderRequest) (service.CreateOrderResult, error)
	ListOrders(ctx context.Context) ([]service.OrderWithDetails, error)
}

// Broadcaster pushes order events to connected websocket clients.
// Satisfied by *ws.Hub; nil means no push notifications.
type Broadcaster interface {
	Broadcast(eventType string, payload any)
}

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc OrderServicer
	hub Broadcaster
}

// NewOrderHandler creates a new OrderHandler. hub may be nil.
func NewOrderHandler(svc OrderServicer, hub Broadcaster) *OrderHandler {
	return &OrderHandler{svc: svc, hub: hub}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted at /api/orders.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/create", h.Create)
	r.Get("/list", h.List)
}

// --- Request / Response types ---

type createOrderRequest struct {
	FormData     model.Header     `json:"formData"`
	OrderDetails []model.LineItem `json:"orderDetails"`
}

type createOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type listOrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []orderResponse `json:"orders"`
}

type orderResponse struct {
	ID                       int64                 `json:"id"`
	ReceiveOrderDate         string                `json:"receive_order_date"`
	ContractNumber           string                `json:"contract_number"`
	MaxVehicle               string                `json:"max_vehicle"`
	StoreCode                string                `json:"store_code"`
	HouseName                string                `json:"house_name"`
	PropertyPostalCode       string                `json:"property_postal_code"`
	PropertyPrefecture       string                `json:"property_prefecture"`
	PropertyAddress          string                `json:"property_address"`
	PropertyMemo             string                `json:"property_memo"`
	ConstructionManager      string                `json:"construction_manager"`
	ConstructionManagerPhone string                `json:"construction_manager_phone"`
	DeliveryDestinationType  string                `json:"delivery_destination_type"`
	DeliveryPostalCode       string                `json:"delivery_postal_code"`
	DeliveryPrefecture       string                `json:"delivery_prefecture"`
	DeliveryAddress          string                `json:"delivery_address"`
	DeliveryPhone            string                `json:"delivery_phone"`
	DeliveryName             string                `json:"delivery_name"`
	ContactMethod            string                `json:"contact_method"`
	Fax                      string                `json:"fax"`
	Email                    string                `json:"email"`
	Email2                   string                `json:"email2"`
	Email3                   string                `json:"email3"`
	EmailCc1                 string                `json:"email_cc1"`
	EmailCc2                 string                `json:"email_cc2"`
	EmailCc3                 string                `json:"email_cc3"`
	DeliveryResponsePerson   string                `json:"delivery_response_person"`
	DeliveryMemo             string                `json:"delivery_memo"`
	CreatedAt                time.Time             `json:"created_at"`
	UpdatedAt                time.Time             `json:"updated_at"`
	OrderDetails             []orderDetailResponse `json:"order_details"`
}

type orderDetailResponse struct {
	ID                     int64  `json:"id"`
	OrderID                int64  `json:"order_id"`
	ProductSearch          string `json:"product_search"`
	ProductName            string `json:"product_name"`
	OfficialProductCode    string `json:"official_product_code"`
	SpecificationCode      string `json:"specification_code"`
	Quantity               int32  `json:"quantity"`
	SpecialOrderFlag       string `json:"special_order_flag"`
	DesiredPurchaseDate    string `json:"desired_purchase_date"`
	FrequencyCategory      string `json:"frequency_category"`
	ArrivalDate            string `json:"arrival_date"`
	UnitWeight             string `json:"unit_weight"`
	Unit                   string `json:"unit"`
	CarrierCode            string `json:"carrier_code"`
	Shipper                string `json:"shipper"`
	ShipperPhone           string `json:"shipper_phone"`
	OrderUnitPrice         string `json:"order_unit_price"`
	TotalPrice             string `json:"total_price"`
	DeliveryUnitPrice      string `json:"delivery_unit_price"`
	TotalDeliveryUnitPrice string `json:"total_delivery_unit_price"`
	CustomerUnitPrice      string `json:"customer_unit_price"`
	TotalCustomerUnitPrice string `json:"total_customer_unit_price"`
}

// orderCreatedEvent is pushed over the websocket hub after a create.
type orderCreatedEvent struct {
	OrderID   int64  `json:"order_id"`
	HouseName string `json:"house_name"`
	StoreCode string `json:"store_code"`
}

// --- Handlers ---

// Create handles POST /api/orders/create.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "リクエストの形式が不正です"})
		return
	}

	result, err := h.svc.CreateOrder(r.Context(), service.CreateOrderRequest{
		Header:  req.FormData,
		Details: req.OrderDetails,
	})
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
			return
		}
		log.Printf("ERROR: create order: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "データベースエラーが発生しました: " + err.Error(),
		})
		return
	}

	if h.hub != nil {
		h.hub.Broadcast("order_created", orderCreatedEvent{
			OrderID:   result.OrderID,
			HouseName: req.FormData.HouseName,
			StoreCode: req.FormData.StoreCode,
		})
	}

	writeJSON(w, http.StatusOK, createOrderResponse{
		Success: true,
		Message: "受注が正常に登録されました",
		OrderID: result.OrderID,
	})
}

// List handles GET /api/orders/list.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "データ取得エラー: " + err.Error(),
		})
		return
	}

	resp := listOrdersResponse{Success: true, Orders: make([]orderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toOrderResponse(o service.OrderWithDetails) orderResponse {
	resp := orderResponse{
		ID:                       o.Order.ID,
		ReceiveOrderDate:         o.Order.ReceiveOrderDate,
		ContractNumber:           o.Order.ContractNumber,
		MaxVehicle:               o.Order.MaxVehicle,
		StoreCode:                o.Order.StoreCode,
		HouseName:                o.Order.HouseName,
		PropertyPostalCode:       o.Order.PropertyPostalCode,
		PropertyPrefecture:       o.Order.PropertyPrefecture,
		PropertyAddress:          o.Order.PropertyAddress,
		PropertyMemo:             o.Order.PropertyMemo,
		ConstructionManager:      o.Order.ConstructionManager,
		ConstructionManagerPhone: o.Order.ConstructionManagerPhone,
		DeliveryDestinationType:  o.Order.DeliveryDestinationType,
		DeliveryPostalCode:       o.Order.DeliveryPostalCode,
		DeliveryPrefecture:       o.Order.DeliveryPrefecture,
		DeliveryAddress:          o.Order.DeliveryAddress,
		DeliveryPhone:            o.Order.DeliveryPhone,
		DeliveryName:             o.Order.DeliveryName,
		ContactMethod:            o.Order.ContactMethod,
		Fax:                      o.Order.Fax,
		Email:                    o.Order.Email,
		Email2:                   o.Order.Email2,
		Email3:                   o.Order.Email3,
		EmailCc1:                 o.Order.EmailCc1,
		EmailCc2:                 o.Order.EmailCc2,
		EmailCc3:                 o.Order.EmailCc3,
		DeliveryResponsePerson:   o.Order.DeliveryResponsePerson,
		DeliveryMemo:             o.Order.DeliveryMemo,
		CreatedAt:                o.Order.CreatedAt,
		UpdatedAt:                o.Order.UpdatedAt,
		OrderDetails:             make([]orderDetailResponse, 0, len(o.Details)),
	}
	for _, d := range o.Details {
		resp.OrderDetails = append(resp.OrderDetails, orderDetailResponse{
			ID:                     d.ID,
			OrderID:                d.OrderID,
			ProductSearch:          d.ProductSearch,
			ProductName:            d.ProductName,
			OfficialProductCode:    d.OfficialProductCode,
			SpecificationCode:      d.SpecificationCode,
			Quantity:               d.Quantity,
			SpecialOrderFlag:       d.SpecialOrderFlag,
			DesiredPurchaseDate:    d.DesiredPurchaseDate,
			FrequencyCategory:      d.FrequencyCategory,
			ArrivalDate:            d.ArrivalDate,
			UnitWeight:             d.UnitWeight,
			Unit:                   d.Unit,
			CarrierCode:            d.CarrierCode,
			Shipper:                d.Shipper,
			ShipperPhone:           d.ShipperPhone,
			OrderUnitPrice:         d.OrderUnitPrice,
			TotalPrice:             d.TotalPrice,
			DeliveryUnitPrice:      d.DeliveryUnitPrice,
			TotalDeliveryUnitPrice: d.TotalDeliveryUnitPrice,
			CustomerUnitPrice:      d.CustomerUnitPrice,
			TotalCustomerUnitPrice: d.TotalCustomerUnitPrice,
		})
	}
	return resp
}

// isValidationError checks if the error is a known validation error
// from the service layer that should result in 400 Bad Request.
func isValidationError(err error) bool {
	return errors.Is(err, service.ErrMissingReceiveDate) ||
		errors.Is(err, service.ErrEmptyDetails) ||
		errors.Is(err, service.ErrMissingProductName) ||
		errors.Is(err, service.ErrInvalidQuantity)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
