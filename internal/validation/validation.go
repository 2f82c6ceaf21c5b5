// Package validation holds the pure field checks run before an order is
// submitted. Functions here have no side effects so they can run on
// every submit attempt and their results render directly as field-level
// error messages.
package validation

import (
	"regexp"
	"time"

	"github.com/juchu-dx/api/internal/enum"
	"github.com/juchu-dx/api/internal/model"
	"github.com/shopspring/decimal"
)

var (
	postalCodeRe = regexp.MustCompile(`^\d{3}-\d{4}$`)
	phoneRe      = regexp.MustCompile(`^[0-9()\-\s]+$`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Result maps field names to error messages. An empty map means valid.
type Result struct {
	Errors map[string]string
}

// IsValid reports whether no field failed.
func (r Result) IsValid() bool { return len(r.Errors) == 0 }

// OrderResult combines header and per-item results for a full form.
type OrderResult struct {
	Header Result
	Items  []Result
}

// IsValid reports whether the header and every item passed.
func (r OrderResult) IsValid() bool {
	if !r.Header.IsValid() {
		return false
	}
	for _, item := range r.Items {
		if !item.IsValid() {
			return false
		}
	}
	return true
}

// ValidateHeader checks required header fields, postal/phone/fax/email
// formats, and the conditional delivery requirement for site deliveries.
func ValidateHeader(h model.Header) Result {
	errs := map[string]string{}

	if h.ReceiveOrderDate == "" {
		errs["receiveOrderDate"] = "受注日は必須です"
	}
	if h.StoreCode == "" {
		errs["storeCode"] = "店舗コードは必須です"
	}
	if h.HouseName == "" {
		errs["houseName"] = "物件名は必須です"
	}
	if h.PropertyAddress == "" {
		errs["propertyAddress"] = "物件住所は必須です"
	}
	if h.ConstructionManager == "" {
		errs["constructionManager"] = "工務担当者は必須です"
	}

	// Site deliveries need a concrete drop point and a recipient.
	if h.DeliveryDestinationType == enum.DeliveryDestinationSite {
		if h.DeliveryAddress == "" {
			errs["deliveryAddress"] = "納品先住所は必須です"
		}
		if h.DeliveryName == "" {
			errs["deliveryName"] = "納品先名は必須です"
		}
	}

	checkPostal(errs, "propertyPostalCode", h.PropertyPostalCode)
	checkPostal(errs, "deliveryPostalCode", h.DeliveryPostalCode)

	checkPhone(errs, "constructionManagerPhone", h.ConstructionManagerPhone)
	checkPhone(errs, "deliveryPhone", h.DeliveryPhone)
	checkPhone(errs, "fax", h.Fax)

	checkEmail(errs, "email", h.Email)
	checkEmail(errs, "email2", h.Email2)
	checkEmail(errs, "email3", h.Email3)
	checkEmail(errs, "emailCc1", h.EmailCc1)
	checkEmail(errs, "emailCc2", h.EmailCc2)
	checkEmail(errs, "emailCc3", h.EmailCc3)

	return Result{Errors: errs}
}

// ValidateLineItem checks one item: product name and desired purchase
// date required, quantity at least 1, date ordering against today and
// the arrival date, and numeric fields parse when non-empty. today is
// truncated to the calendar day before comparison.
func ValidateLineItem(item model.LineItem, today time.Time) Result {
	errs := map[string]string{}

	if item.ProductName == "" {
		errs["productName"] = "商品名は必須です"
	}
	if item.Quantity < 1 {
		errs["quantity"] = "受注数量は1以上である必要があります"
	}
	if item.DesiredPurchaseDate == "" {
		errs["desiredPurchaseDate"] = "納品希望日は必須です"
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	// Unparseable dates skip the ordering checks; the required checks
	// above still apply.
	desired, desiredOK := parseDate(item.DesiredPurchaseDate)
	if desiredOK && desired.Before(day) {
		errs["desiredPurchaseDate"] = "納品希望日は今日以降の日付を選択してください"
	}
	if arrival, ok := parseDate(item.ArrivalDate); ok && desiredOK && arrival.After(desired) {
		errs["arrivalDate"] = "入荷日は納品希望日以前である必要があります"
	}

	checkNumeric(errs, "orderUnitPrice", item.OrderUnitPrice)
	checkNumeric(errs, "deliveryUnitPrice", item.DeliveryUnitPrice)
	checkNumeric(errs, "customerUnitPrice", item.CustomerUnitPrice)
	checkNumeric(errs, "unitWeight", item.UnitWeight)

	return Result{Errors: errs}
}

// ValidateOrder runs the header and every item through validation.
func ValidateOrder(h model.Header, items []model.LineItem, today time.Time) OrderResult {
	res := OrderResult{
		Header: ValidateHeader(h),
		Items:  make([]Result, len(items)),
	}
	for i, item := range items {
		res.Items[i] = ValidateLineItem(item, today)
	}
	return res
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func checkPostal(errs map[string]string, field, value string) {
	if value != "" && !postalCodeRe.MatchString(value) {
		errs[field] = "郵便番号はNNN-NNNN形式で入力してください"
	}
}

func checkPhone(errs map[string]string, field, value string) {
	if value != "" && !phoneRe.MatchString(value) {
		errs[field] = "電話番号の形式が正しくありません"
	}
}

func checkEmail(errs map[string]string, field, value string) {
	if value != "" && !emailRe.MatchString(value) {
		errs[field] = "メールアドレスの形式が正しくありません"
	}
}

func checkNumeric(errs map[string]string, field, value string) {
	if value == "" {
		return
	}
	if _, err := decimal.NewFromString(value); err != nil {
		errs[field] = "数値を入力してください"
	}
}
