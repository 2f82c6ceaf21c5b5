package enum

// ── Delivery destination (orders.delivery_destination_type) ──

const (
	DeliveryDestinationSite   = "1" // 現場
	DeliveryDestinationOffice = "3" // 事務所
	DeliveryDestinationOther  = "4" // その他
)

// ── Contact method (orders.contact_method) ──

const (
	ContactMethodFax    = "fax"
	ContactMethodEmail  = "email"
	ContactMethodPerson = "person"
)

// ── Special order flag (order_details.special_order_flag) ──

const (
	SpecialOrderNormal  = "0" // 通常品
	SpecialOrderSpecial = "1" // 別注品
)

// ── Frequency category (order_details.frequency_category) ──

const (
	FrequencyStock       = "1" // 在庫品
	FrequencyPerProperty = "2" // 邸別品
	FrequencyDirectShip  = "3" // 直送品
)

// ── Carrier codes (order_details.carrier_code) ──

const (
	CarrierYamato    = "1000"
	CarrierSagawa    = "1001"
	CarrierJapanPost = "1002"
)

// ── Form defaults ──

const (
	DefaultMaxVehicle    = "-"
	DefaultDeliveryPhone = "0748-72-2972"
	DefaultDeliveryMemo  = "不在時連絡下さい。不在置き厳禁"
	DefaultQuantity      = 1
)

// IsValidDeliveryDestination reports whether s is a known destination type.
func IsValidDeliveryDestination(s string) bool {
	switch s {
	case DeliveryDestinationSite, DeliveryDestinationOffice, DeliveryDestinationOther:
		return true
	}
	return false
}

// IsValidCarrier reports whether s is a known carrier code.
func IsValidCarrier(s string) bool {
	switch s {
	case CarrierYamato, CarrierSagawa, CarrierJapanPost:
		return true
	}
	return false
}
