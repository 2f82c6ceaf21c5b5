package validation

import (
	"testing"
	"time"

	"github.com/juchu-dx/api/internal/enum"
	"github.com/juchu-dx/api/internal/model"
)

var testToday = time.Date(2025, 10, 6, 15, 30, 0, 0, time.UTC)

func validHeader() model.Header {
	h := model.NewHeader(testToday)
	h.StoreCode = "0105"
	h.HouseName = "山田様邸"
	h.PropertyAddress = "北海道札幌市中央区北1条西2丁目"
	h.ConstructionManager = "佐藤"
	h.DeliveryAddress = "北海道札幌市中央区北1条西2丁目"
	h.DeliveryName = "山田様邸 現場"
	return h
}

func validItem() model.LineItem {
	item := model.NewLineItem(1)
	item.ProductName = "アクリル防水テープ"
	item.DesiredPurchaseDate = "2025-10-10"
	return item
}

func TestValidateHeader_Valid(t *testing.T) {
	res := ValidateHeader(validHeader())
	if !res.IsValid() {
		t.Fatalf("expected valid header, got errors: %v", res.Errors)
	}
}

func TestValidateHeader_RequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*model.Header)
	}{
		{"receiveOrderDate", func(h *model.Header) { h.ReceiveOrderDate = "" }},
		{"storeCode", func(h *model.Header) { h.StoreCode = "" }},
		{"houseName", func(h *model.Header) { h.HouseName = "" }},
		{"propertyAddress", func(h *model.Header) { h.PropertyAddress = "" }},
		{"constructionManager", func(h *model.Header) { h.ConstructionManager = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			h := validHeader()
			tc.mutate(&h)
			res := ValidateHeader(h)
			if res.IsValid() {
				t.Fatal("expected invalid header")
			}
			if _, ok := res.Errors[tc.field]; !ok {
				t.Errorf("expected error on %s, got: %v", tc.field, res.Errors)
			}
		})
	}
}

func TestValidateHeader_MissingReceiveDateMessage(t *testing.T) {
	h := validHeader()
	h.ReceiveOrderDate = ""
	res := ValidateHeader(h)
	if got := res.Errors["receiveOrderDate"]; got != "受注日は必須です" {
		t.Errorf("receiveOrderDate message: got %q", got)
	}
}

func TestValidateHeader_SiteDeliveryRequiresAddressAndName(t *testing.T) {
	h := validHeader()
	h.DeliveryDestinationType = enum.DeliveryDestinationSite
	h.DeliveryAddress = ""
	h.DeliveryName = ""
	res := ValidateHeader(h)
	if _, ok := res.Errors["deliveryAddress"]; !ok {
		t.Error("expected error on deliveryAddress for site delivery")
	}
	if _, ok := res.Errors["deliveryName"]; !ok {
		t.Error("expected error on deliveryName for site delivery")
	}

	// The same header is fine when delivering to an office.
	h.DeliveryDestinationType = enum.DeliveryDestinationOffice
	res = ValidateHeader(h)
	if !res.IsValid() {
		t.Errorf("office delivery should not require address/name: %v", res.Errors)
	}
}

func TestValidateHeader_PostalCodeFormat(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"", true},
		{"123-4567", true},
		{"1234567", false},
		{"12-34567", false},
		{"123-456", false},
		{"abc-defg", false},
		{"123-45678", false},
	}
	for _, tc := range tests {
		h := validHeader()
		h.PropertyPostalCode = tc.code
		res := ValidateHeader(h)
		_, hasErr := res.Errors["propertyPostalCode"]
		if tc.valid && hasErr {
			t.Errorf("postal code %q: unexpected error", tc.code)
		}
		if !tc.valid && !hasErr {
			t.Errorf("postal code %q: expected error", tc.code)
		}
	}
}

func TestValidateHeader_PhoneAndFaxFormat(t *testing.T) {
	h := validHeader()
	h.ConstructionManagerPhone = "090-1234-5678"
	h.Fax = "(011) 234-5678"
	if res := ValidateHeader(h); !res.IsValid() {
		t.Fatalf("expected valid phone/fax, got: %v", res.Errors)
	}

	h.ConstructionManagerPhone = "090-1234-567a"
	res := ValidateHeader(h)
	if _, ok := res.Errors["constructionManagerPhone"]; !ok {
		t.Error("expected error for letters in phone number")
	}
}

func TestValidateHeader_EmailSlots(t *testing.T) {
	h := validHeader()
	h.Email = "tanaka@example.co.jp"
	h.EmailCc2 = "not-an-email"
	res := ValidateHeader(h)
	if _, ok := res.Errors["email"]; ok {
		t.Error("valid email flagged")
	}
	if _, ok := res.Errors["emailCc2"]; !ok {
		t.Error("expected error on emailCc2")
	}
}

func TestValidateLineItem_Valid(t *testing.T) {
	res := ValidateLineItem(validItem(), testToday)
	if !res.IsValid() {
		t.Fatalf("expected valid item, got errors: %v", res.Errors)
	}
}

func TestValidateLineItem_ProductNameRequired(t *testing.T) {
	item := validItem()
	item.ProductName = ""
	res := ValidateLineItem(item, testToday)
	if got := res.Errors["productName"]; got != "商品名は必須です" {
		t.Errorf("productName message: got %q", got)
	}
}

func TestValidateLineItem_QuantityFloor(t *testing.T) {
	item := validItem()
	item.Quantity = 0
	if res := ValidateLineItem(item, testToday); res.Errors["quantity"] == "" {
		t.Error("expected quantity error for 0")
	}
	item.Quantity = 1
	if res := ValidateLineItem(item, testToday); res.Errors["quantity"] != "" {
		t.Error("quantity 1 should pass")
	}
}

func TestValidateLineItem_DesiredDateNotInPast(t *testing.T) {
	item := validItem()
	item.DesiredPurchaseDate = "2025-10-05" // yesterday
	res := ValidateLineItem(item, testToday)
	if _, ok := res.Errors["desiredPurchaseDate"]; !ok {
		t.Error("expected error for desired date in the past")
	}

	item.DesiredPurchaseDate = "2025-10-06" // today
	res = ValidateLineItem(item, testToday)
	if _, ok := res.Errors["desiredPurchaseDate"]; ok {
		t.Error("today should be accepted as desired date")
	}
}

func TestValidateLineItem_ArrivalNotAfterDesired(t *testing.T) {
	item := validItem()
	item.DesiredPurchaseDate = "2025-10-10"
	item.ArrivalDate = "2025-10-11"
	res := ValidateLineItem(item, testToday)
	if _, ok := res.Errors["arrivalDate"]; !ok {
		t.Error("expected error when arrival is after desired date")
	}

	item.ArrivalDate = "2025-10-10" // equal is fine
	res = ValidateLineItem(item, testToday)
	if _, ok := res.Errors["arrivalDate"]; ok {
		t.Error("equal arrival and desired dates should pass")
	}
}

func TestValidateLineItem_NumericFields(t *testing.T) {
	item := validItem()
	item.OrderUnitPrice = "1280"
	item.UnitWeight = "2.5"
	if res := ValidateLineItem(item, testToday); !res.IsValid() {
		t.Fatalf("numeric strings should pass: %v", res.Errors)
	}

	item.OrderUnitPrice = "12a0"
	item.UnitWeight = "heavy"
	res := ValidateLineItem(item, testToday)
	if _, ok := res.Errors["orderUnitPrice"]; !ok {
		t.Error("expected error on orderUnitPrice")
	}
	if _, ok := res.Errors["unitWeight"]; !ok {
		t.Error("expected error on unitWeight")
	}
}

func TestValidateOrder_Combined(t *testing.T) {
	h := validHeader()
	items := []model.LineItem{validItem(), validItem()}
	res := ValidateOrder(h, items, testToday)
	if !res.IsValid() {
		t.Fatalf("expected valid order, got header=%v items=%v", res.Header.Errors, res.Items)
	}

	items[1].ProductName = ""
	res = ValidateOrder(h, items, testToday)
	if res.IsValid() {
		t.Fatal("one bad item must fail the whole order")
	}
	if !res.Items[0].IsValid() {
		t.Error("first item should still be individually valid")
	}
}
