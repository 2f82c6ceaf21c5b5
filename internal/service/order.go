package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/juchu-dx/api/internal/database"
	"github.com/juchu-dx/api/internal/model"
)

var (
	ErrMissingReceiveDate = errors.New("受注日は必須です")
	ErrEmptyDetails       = errors.New("明細は1件以上必要です")
	ErrMissingProductName = errors.New("商品名は必須です")
	ErrInvalidQuantity    = errors.New("受注数量は1以上である必要があります")
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// OrderStore is the write surface used inside a create transaction.
type OrderStore interface {
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	CreateOrderDetail(ctx context.Context, arg database.CreateOrderDetailParams) (database.OrderDetail, error)
}

// ListStore is the read surface used outside transactions.
type ListStore interface {
	ListOrders(ctx context.Context) ([]database.Order, error)
	ListOrderDetailsByOrder(ctx context.Context, orderID int64) ([]database.OrderDetail, error)
}

type OrderService struct {
	db       TxBeginner
	store    ListStore
	newStore func(db database.DBTX) OrderStore
}

// NewOrderService wires the service to a pool and a store factory. The
// factory builds the write store bound to a transaction.
func NewOrderService(db TxBeginner, store ListStore, newStore func(db database.DBTX) OrderStore) *OrderService {
	return &OrderService{db: db, store: store, newStore: newStore}
}

type CreateOrderRequest struct {
	Header  model.Header
	Details []model.LineItem
}

type CreateOrderResult struct {
	OrderID int64
}

type OrderWithDetails struct {
	Order   database.Order
	Details []database.OrderDetail
}

// CreateOrder persists a header and its line items in one transaction.
// Any insert failure rolls back the whole order.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResult, error) {
	if req.Header.ReceiveOrderDate == "" {
		return CreateOrderResult{}, ErrMissingReceiveDate
	}
	if len(req.Details) == 0 {
		return CreateOrderResult{}, ErrEmptyDetails
	}
	for _, d := range req.Details {
		if d.ProductName == "" {
			return CreateOrderResult{}, ErrMissingProductName
		}
		if d.Quantity < 1 {
			return CreateOrderResult{}, ErrInvalidQuantity
		}
	}

	var result CreateOrderResult
	err := s.createOrderTx(ctx, func(store OrderStore) error {
		order, err := store.CreateOrder(ctx, headerParams(req.Header))
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		for _, d := range req.Details {
			if _, err := store.CreateOrderDetail(ctx, detailParams(order.ID, d)); err != nil {
				return fmt.Errorf("insert order detail: %w", err)
			}
		}
		result.OrderID = order.ID
		return nil
	})
	if err != nil {
		return CreateOrderResult{}, err
	}
	return result, nil
}

func (s *OrderService) createOrderTx(ctx context.Context, fn func(store OrderStore) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.newStore(tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ListOrders returns every order, newest first, with line items attached.
func (s *OrderService) ListOrders(ctx context.Context) ([]OrderWithDetails, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	result := make([]OrderWithDetails, 0, len(orders))
	for _, o := range orders {
		details, err := s.store.ListOrderDetailsByOrder(ctx, o.ID)
		if err != nil {
			return nil, fmt.Errorf("list order details: %w", err)
		}
		result = append(result, OrderWithDetails{Order: o, Details: details})
	}
	return result, nil
}

func headerParams(h model.Header) database.CreateOrderParams {
	return database.CreateOrderParams{
		ReceiveOrderDate:         h.ReceiveOrderDate,
		ContractNumber:           h.ContractNumber,
		MaxVehicle:               h.MaxVehicle,
		StoreCode:                h.StoreCode,
		HouseName:                h.HouseName,
		PropertyPostalCode:       h.PropertyPostalCode,
		PropertyPrefecture:       h.PropertyPrefecture,
		PropertyAddress:          h.PropertyAddress,
		PropertyMemo:             h.PropertyMemo,
		ConstructionManager:      h.ConstructionManager,
		ConstructionManagerPhone: h.ConstructionManagerPhone,
		DeliveryDestinationType:  h.DeliveryDestinationType,
		DeliveryPostalCode:       h.DeliveryPostalCode,
		DeliveryPrefecture:       h.DeliveryPrefecture,
		DeliveryAddress:          h.DeliveryAddress,
		DeliveryPhone:            h.DeliveryPhone,
		DeliveryName:             h.DeliveryName,
		ContactMethod:            h.ContactMethod,
		Fax:                      h.Fax,
		Email:                    h.Email,
		Email2:                   h.Email2,
		Email3:                   h.Email3,
		EmailCc1:                 h.EmailCc1,
		EmailCc2:                 h.EmailCc2,
		EmailCc3:                 h.EmailCc3,
		DeliveryResponsePerson:   h.DeliveryResponsePerson,
		DeliveryMemo:             h.DeliveryMemo,
	}
}

func detailParams(orderID int64, d model.LineItem) database.CreateOrderDetailParams {
	return database.CreateOrderDetailParams{
		OrderID:                orderID,
		ProductSearch:          d.ProductSearch,
		ProductName:            d.ProductName,
		OfficialProductCode:    d.OfficialProductCode,
		SpecificationCode:      d.SpecificationCode,
		Quantity:               int32(d.Quantity),
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
	}
}
