package client

import (
	"time"

	"github.com/juchu-dx/api/internal/model"
)

// apiOrder is an order record as the backend returns it: snake_case
// column names with nested order_details. Every model field has an
// entry in the conversions below; a field sent by create must come
// back from list.
type apiOrder struct {
	ID                       int64            `json:"id"`
	ReceiveOrderDate         string           `json:"receive_order_date"`
	ContractNumber           string           `json:"contract_number"`
	MaxVehicle               string           `json:"max_vehicle"`
	StoreCode                string           `json:"store_code"`
	HouseName                string           `json:"house_name"`
	PropertyPostalCode       string           `json:"property_postal_code"`
	PropertyPrefecture       string           `json:"property_prefecture"`
	PropertyAddress          string           `json:"property_address"`
	PropertyMemo             string           `json:"property_memo"`
	ConstructionManager      string           `json:"construction_manager"`
	ConstructionManagerPhone string           `json:"construction_manager_phone"`
	DeliveryDestinationType  string           `json:"delivery_destination_type"`
	DeliveryPostalCode       string           `json:"delivery_postal_code"`
	DeliveryPrefecture       string           `json:"delivery_prefecture"`
	DeliveryAddress          string           `json:"delivery_address"`
	DeliveryPhone            string           `json:"delivery_phone"`
	DeliveryName             string           `json:"delivery_name"`
	ContactMethod            string           `json:"contact_method"`
	Fax                      string           `json:"fax"`
	Email                    string           `json:"email"`
	Email2                   string           `json:"email2"`
	Email3                   string           `json:"email3"`
	EmailCc1                 string           `json:"email_cc1"`
	EmailCc2                 string           `json:"email_cc2"`
	EmailCc3                 string           `json:"email_cc3"`
	DeliveryResponsePerson   string           `json:"delivery_response_person"`
	DeliveryMemo             string           `json:"delivery_memo"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
	OrderDetails             []apiOrderDetail `json:"order_details"`
}

type apiOrderDetail struct {
	ID                     int64  `json:"id"`
	OrderID                int64  `json:"order_id"`
	ProductSearch          string `json:"product_search"`
	ProductName            string `json:"product_name"`
	OfficialProductCode    string `json:"official_product_code"`
	SpecificationCode      string `json:"specification_code"`
	Quantity               int    `json:"quantity"`
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

func headerFromAPI(o apiOrder) model.Header {
	return model.Header{
		ReceiveOrderDate:         o.ReceiveOrderDate,
		ContractNumber:           o.ContractNumber,
		MaxVehicle:               o.MaxVehicle,
		StoreCode:                o.StoreCode,
		HouseName:                o.HouseName,
		PropertyPostalCode:       o.PropertyPostalCode,
		PropertyPrefecture:       o.PropertyPrefecture,
		PropertyAddress:          o.PropertyAddress,
		PropertyMemo:             o.PropertyMemo,
		ConstructionManager:      o.ConstructionManager,
		ConstructionManagerPhone: o.ConstructionManagerPhone,
		DeliveryDestinationType:  o.DeliveryDestinationType,
		DeliveryPostalCode:       o.DeliveryPostalCode,
		DeliveryPrefecture:       o.DeliveryPrefecture,
		DeliveryAddress:          o.DeliveryAddress,
		DeliveryPhone:            o.DeliveryPhone,
		DeliveryName:             o.DeliveryName,
		ContactMethod:            o.ContactMethod,
		Fax:                      o.Fax,
		Email:                    o.Email,
		Email2:                   o.Email2,
		Email3:                   o.Email3,
		EmailCc1:                 o.EmailCc1,
		EmailCc2:                 o.EmailCc2,
		EmailCc3:                 o.EmailCc3,
		DeliveryResponsePerson:   o.DeliveryResponsePerson,
		DeliveryMemo:             o.DeliveryMemo,
	}
}

func headerToAPI(h model.Header) apiOrder {
	return apiOrder{
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

func detailFromAPI(d apiOrderDetail) model.LineItem {
	return model.LineItem{
		ID:                     int(d.ID),
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
	}
}

func detailToAPI(item model.LineItem) apiOrderDetail {
	return apiOrderDetail{
		ID:                     int64(item.ID),
		ProductSearch:          item.ProductSearch,
		ProductName:            item.ProductName,
		OfficialProductCode:    item.OfficialProductCode,
		SpecificationCode:      item.SpecificationCode,
		Quantity:               item.Quantity,
		SpecialOrderFlag:       item.SpecialOrderFlag,
		DesiredPurchaseDate:    item.DesiredPurchaseDate,
		FrequencyCategory:      item.FrequencyCategory,
		ArrivalDate:            item.ArrivalDate,
		UnitWeight:             item.UnitWeight,
		Unit:                   item.Unit,
		CarrierCode:            item.CarrierCode,
		Shipper:                item.Shipper,
		ShipperPhone:           item.ShipperPhone,
		OrderUnitPrice:         item.OrderUnitPrice,
		TotalPrice:             item.TotalPrice,
		DeliveryUnitPrice:      item.DeliveryUnitPrice,
		TotalDeliveryUnitPrice: item.TotalDeliveryUnitPrice,
		CustomerUnitPrice:      item.CustomerUnitPrice,
		TotalCustomerUnitPrice: item.TotalCustomerUnitPrice,
	}
}

func orderFromAPI(o apiOrder) model.Order {
	details := make([]model.LineItem, len(o.OrderDetails))
	for i, d := range o.OrderDetails {
		details[i] = detailFromAPI(d)
	}
	return model.Order{
		ID:        o.ID,
		Header:    headerFromAPI(o),
		Details:   details,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
