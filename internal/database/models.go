package database

import "time"

type Order struct {
	ID                       int64
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
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type OrderDetail struct {
	ID                     int64
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
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
