// Package model holds the client-side order shapes shared by the form
// core and the API client. JSON tags follow the UI field names
// (camelCase); the snake_case column mapping lives in the client and
// handler packages.
package model

import (
	"time"

	"github.com/juchu-dx/api/internal/enum"
)

// Header is the order-level record: customer, property and delivery
// metadata captured on the first tabs of the form.
type Header struct {
	ReceiveOrderDate         string `json:"receiveOrderDate"`
	ContractNumber           string `json:"contractNumber"`
	MaxVehicle               string `json:"maxVehicle"`
	StoreCode                string `json:"storeCode"`
	HouseName                string `json:"houseName"`
	PropertyPostalCode       string `json:"propertyPostalCode"`
	PropertyPrefecture       string `json:"propertyPrefecture"`
	PropertyAddress          string `json:"propertyAddress"`
	PropertyMemo             string `json:"propertyMemo"`
	ConstructionManager      string `json:"constructionManager"`
	ConstructionManagerPhone string `json:"constructionManagerPhone"`
	DeliveryDestinationType  string `json:"deliveryDestinationType"`
	DeliveryPostalCode       string `json:"deliveryPostalCode"`
	DeliveryPrefecture       string `json:"deliveryPrefecture"`
	DeliveryAddress          string `json:"deliveryAddress"`
	DeliveryPhone            string `json:"deliveryPhone"`
	DeliveryName             string `json:"deliveryName"`
	ContactMethod            string `json:"contactMethod"`
	Fax                      string `json:"fax"`
	Email                    string `json:"email"`
	Email2                   string `json:"email2"`
	Email3                   string `json:"email3"`
	EmailCc1                 string `json:"emailCc1"`
	EmailCc2                 string `json:"emailCc2"`
	EmailCc3                 string `json:"emailCc3"`
	DeliveryResponsePerson   string `json:"deliveryResponsePerson"`
	DeliveryMemo             string `json:"deliveryMemo"`
}

// LineItem is one product row of an order. Prices and weights travel as
// strings (free-form numeric input); the three totals are derived from
// quantity and the matching unit price and are never edited directly.
type LineItem struct {
	ID                     int    `json:"id"`
	ProductSearch          string `json:"productSearch"`
	ProductName            string `json:"productName"`
	OfficialProductCode    string `json:"officialProductCode"`
	SpecificationCode      string `json:"specificationCode"`
	Quantity               int    `json:"quantity"`
	SpecialOrderFlag       string `json:"specialOrderFlag"`
	DesiredPurchaseDate    string `json:"desiredPurchaseDate"`
	FrequencyCategory      string `json:"frequencyCategory"`
	ArrivalDate            string `json:"arrivalDate"`
	UnitWeight             string `json:"unitWeight"`
	Unit                   string `json:"unit"`
	CarrierCode            string `json:"carrierCode"`
	Shipper                string `json:"shipper"`
	ShipperPhone           string `json:"shipperPhone"`
	OrderUnitPrice         string `json:"orderUnitPrice"`
	TotalPrice             string `json:"totalPrice"`
	DeliveryUnitPrice      string `json:"deliveryUnitPrice"`
	TotalDeliveryUnitPrice string `json:"totalDeliveryUnitPrice"`
	CustomerUnitPrice      string `json:"customerUnitPrice"`
	TotalCustomerUnitPrice string `json:"totalCustomerUnitPrice"`
}

// Order is a persisted order as seen by the client: a header with its
// line items and server-assigned identity.
type Order struct {
	ID        int64
	Header    Header
	Details   []LineItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateLayout is the calendar-date format used by every date field.
const DateLayout = "2006-01-02"

// NewHeader returns a header with the form's opening defaults.
func NewHeader(now time.Time) Header {
	return Header{
		ReceiveOrderDate:        now.Format(DateLayout),
		MaxVehicle:              enum.DefaultMaxVehicle,
		DeliveryDestinationType: enum.DeliveryDestinationSite,
		DeliveryPhone:           enum.DefaultDeliveryPhone,
		ContactMethod:           enum.ContactMethodFax,
		DeliveryMemo:            enum.DefaultDeliveryMemo,
	}
}

// NewLineItem returns a line item with row defaults. id is the
// 1-based display index of the row.
func NewLineItem(id int) LineItem {
	return LineItem{
		ID:                id,
		Quantity:          enum.DefaultQuantity,
		SpecialOrderFlag:  enum.SpecialOrderNormal,
		FrequencyCategory: enum.FrequencyStock,
		CarrierCode:       enum.CarrierYamato,
	}
}
