package database

import (
	"context"
)

const createOrder = `
INSERT INTO orders (
	receive_order_date, contract_number, max_vehicle, store_code, house_name,
	property_postal_code, property_prefecture, property_address, property_memo,
	construction_manager, construction_manager_phone, delivery_destination_type,
	delivery_postal_code, delivery_prefecture, delivery_address, delivery_phone,
	delivery_name, contact_method, fax, email, email2, email3,
	email_cc1, email_cc2, email_cc3, delivery_response_person, delivery_memo
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
)
RETURNING id, created_at, updated_at
`

type CreateOrderParams struct {
	ReceiveOrderDate         string
	ContractNumber           string
	MaxVehicle               string
	StoreCode                string
	HouseName                string
	PropertyPostalCode       string
	PropertyPrefecture       string
	PropertyAddress          string
	PropertyMemo             string
	ConstructionManager      string
	ConstructionManagerPhone string
	DeliveryDestinationType  string
	DeliveryPostalCode       string
	DeliveryPrefecture       string
	DeliveryAddress          string
	DeliveryPhone            string
	DeliveryName             string
	ContactMethod            string
	Fax                      string
	Email                    string
	Email2                   string
	Email3                   string
	EmailCc1                 string
	EmailCc2                 string
	EmailCc3                 string
	DeliveryResponsePerson   string
	DeliveryMemo             string
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.ReceiveOrderDate,
		arg.ContractNumber,
		arg.MaxVehicle,
		arg.StoreCode,
		arg.HouseName,
		arg.PropertyPostalCode,
		arg.PropertyPrefecture,
		arg.PropertyAddress,
		arg.PropertyMemo,
		arg.ConstructionManager,
		arg.ConstructionManagerPhone,
		arg.DeliveryDestinationType,
		arg.DeliveryPostalCode,
		arg.DeliveryPrefecture,
		arg.DeliveryAddress,
		arg.DeliveryPhone,
		arg.DeliveryName,
		arg.ContactMethod,
		arg.Fax,
		arg.Email,
		arg.Email2,
		arg.Email3,
		arg.EmailCc1,
		arg.EmailCc2,
		arg.EmailCc3,
		arg.DeliveryResponsePerson,
		arg.DeliveryMemo,
	)
	o := Order{
		ReceiveOrderDate:         arg.ReceiveOrderDate,
		ContractNumber:           arg.ContractNumber,
		MaxVehicle:               arg.MaxVehicle,
		StoreCode:                arg.StoreCode,
		HouseName:                arg.HouseName,
		PropertyPostalCode:       arg.PropertyPostalCode,
		PropertyPrefecture:       arg.PropertyPrefecture,
		PropertyAddress:          arg.PropertyAddress,
		PropertyMemo:             arg.PropertyMemo,
		ConstructionManager:      arg.ConstructionManager,
		ConstructionManagerPhone: arg.ConstructionManagerPhone,
		DeliveryDestinationType:  arg.DeliveryDestinationType,
		DeliveryPostalCode:       arg.DeliveryPostalCode,
		DeliveryPrefecture:       arg.DeliveryPrefecture,
		DeliveryAddress:          arg.DeliveryAddress,
		DeliveryPhone:            arg.DeliveryPhone,
		DeliveryName:             arg.DeliveryName,
		ContactMethod:            arg.ContactMethod,
		Fax:                      arg.Fax,
		Email:                    arg.Email,
		Email2:                   arg.Email2,
		Email3:                   arg.Email3,
		EmailCc1:                 arg.EmailCc1,
		EmailCc2:                 arg.EmailCc2,
		EmailCc3:                 arg.EmailCc3,
		DeliveryResponsePerson:   arg.DeliveryResponsePerson,
		DeliveryMemo:             arg.DeliveryMemo,
	}
	err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

const createOrderDetail = `
INSERT INTO order_details (
	order_id, product_search, product_name, official_product_code,
	specification_code, quantity, special_order_flag, desired_purchase_date,
	frequency_category, arrival_date, unit_weight, unit, carrier_code,
	shipper, shipper_phone, order_unit_price, total_price,
	delivery_unit_price, total_delivery_unit_price,
	customer_unit_price, total_customer_unit_price
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
	$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
)
RETURNING id, created_at, updated_at
`

type CreateOrderDetailParams struct {
	OrderID                int64
	ProductSearch          string
	ProductName            string
	OfficialProductCode    string
	SpecificationCode      string
	Quantity               int32
	SpecialOrderFlag       string
	DesiredPurchaseDate    string
	FrequencyCategory      string
	ArrivalDate            string
	UnitWeight             string
	Unit                   string
	CarrierCode            string
	Shipper                string
	ShipperPhone           string
	OrderUnitPrice         string
	TotalPrice             string
	DeliveryUnitPrice      string
	TotalDeliveryUnitPrice string
	CustomerUnitPrice      string
	TotalCustomerUnitPrice string
}

func (q *Queries) CreateOrderDetail(ctx context.Context, arg CreateOrderDetailParams) (OrderDetail, error) {
	row := q.db.QueryRow(ctx, createOrderDetail,
		arg.OrderID,
		arg.ProductSearch,
		arg.ProductName,
		arg.OfficialProductCode,
		arg.SpecificationCode,
		arg.Quantity,
		arg.SpecialOrderFlag,
		arg.DesiredPurchaseDate,
		arg.FrequencyCategory,
		arg.ArrivalDate,
		arg.UnitWeight,
		arg.Unit,
		arg.CarrierCode,
		arg.Shipper,
		arg.ShipperPhone,
		arg.OrderUnitPrice,
		arg.TotalPrice,
		arg.DeliveryUnitPrice,
		arg.TotalDeliveryUnitPrice,
		arg.CustomerUnitPrice,
		arg.TotalCustomerUnitPrice,
	)
	d := OrderDetail{
		OrderID:                arg.OrderID,
		ProductSearch:          arg.ProductSearch,
		ProductName:            arg.ProductName,
		OfficialProductCode:    arg.OfficialProductCode,
		SpecificationCode:      arg.SpecificationCode,
		Quantity:               arg.Quantity,
		SpecialOrderFlag:       arg.SpecialOrderFlag,
		DesiredPurchaseDate:    arg.DesiredPurchaseDate,
		FrequencyCategory:      arg.FrequencyCategory,
		ArrivalDate:            arg.ArrivalDate,
		UnitWeight:             arg.UnitWeight,
		Unit:                   arg.Unit,
		CarrierCode:            arg.CarrierCode,
		Shipper:                arg.Shipper,
		ShipperPhone:           arg.ShipperPhone,
		OrderUnitPrice:         arg.OrderUnitPrice,
		TotalPrice:             arg.TotalPrice,
		DeliveryUnitPrice:      arg.DeliveryUnitPrice,
		TotalDeliveryUnitPrice: arg.TotalDeliveryUnitPrice,
		CustomerUnitPrice:      arg.CustomerUnitPrice,
		TotalCustomerUnitPrice: arg.TotalCustomerUnitPrice,
	}
	err := row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

const listOrders = `
SELECT id, receive_order_date, contract_number, max_vehicle, store_code,
	house_name, property_postal_code, property_prefecture, property_address,
	property_memo, construction_manager, construction_manager_phone,
	delivery_destination_type, delivery_postal_code, delivery_prefecture,
	delivery_address, delivery_phone, delivery_name, contact_method, fax,
	email, email2, email3, email_cc1, email_cc2, email_cc3,
	delivery_response_person, delivery_memo, created_at, updated_at
FROM orders
ORDER BY created_at DESC
`

func (q *Queries) ListOrders(ctx context.Context) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.ReceiveOrderDate,
			&o.ContractNumber,
			&o.MaxVehicle,
			&o.StoreCode,
			&o.HouseName,
			&o.PropertyPostalCode,
			&o.PropertyPrefecture,
			&o.PropertyAddress,
			&o.PropertyMemo,
			&o.ConstructionManager,
			&o.ConstructionManagerPhone,
			&o.DeliveryDestinationType,
			&o.DeliveryPostalCode,
			&o.DeliveryPrefecture,
			&o.DeliveryAddress,
			&o.DeliveryPhone,
			&o.DeliveryName,
			&o.ContactMethod,
			&o.Fax,
			&o.Email,
			&o.Email2,
			&o.Email3,
			&o.EmailCc1,
			&o.EmailCc2,
			&o.EmailCc3,
			&o.DeliveryResponsePerson,
			&o.DeliveryMemo,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const listOrderDetailsByOrder = `
SELECT id, order_id, product_search, product_name, official_product_code,
	specification_code, quantity, special_order_flag, desired_purchase_date,
	frequency_category, arrival_date, unit_weight, unit, carrier_code,
	shipper, shipper_phone, order_unit_price, total_price,
	delivery_unit_price, total_delivery_unit_price,
	customer_unit_price, total_customer_unit_price, created_at, updated_at
FROM order_details
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListOrderDetailsByOrder(ctx context.Context, orderID int64) ([]OrderDetail, error) {
	rows, err := q.db.Query(ctx, listOrderDetailsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderDetail
	for rows.Next() {
		var d OrderDetail
		if err := rows.Scan(
			&d.ID,
			&d.OrderID,
			&d.ProductSearch,
			&d.ProductName,
			&d.OfficialProductCode,
			&d.SpecificationCode,
			&d.Quantity,
			&d.SpecialOrderFlag,
			&d.DesiredPurchaseDate,
			&d.FrequencyCategory,
			&d.ArrivalDate,
			&d.UnitWeight,
			&d.Unit,
			&d.CarrierCode,
			&d.Shipper,
			&d.ShipperPhone,
			&d.OrderUnitPrice,
			&d.TotalPrice,
			&d.DeliveryUnitPrice,
			&d.TotalDeliveryUnitPrice,
			&d.CustomerUnitPrice,
			&d.TotalCustomerUnitPrice,
			&d.CreatedAt,
			&d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
