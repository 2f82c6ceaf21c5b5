package client

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// fullAPIOrder returns an apiOrder with every mapped string field set
// to a unique value, so round-trip tests catch dropped or crossed
// fields.
func fullAPIOrder() apiOrder {
	o := apiOrder{ID: 7}
	fillStrings(&o, "h")
	o.OrderDetails = []apiOrderDetail{fullAPIDetail(1), fullAPIDetail(2)}
	return o
}

func fullAPIDetail(id int64) apiOrderDetail {
	d := apiOrderDetail{ID: id, OrderID: 7, Quantity: 3}
	fillStrings(&d, "d")
	return d
}

// fillStrings sets every string field of the struct pointed to by v to
// "<prefix>:<FieldName>".
func fillStrings(v any, prefix string) {
	rv := reflect.ValueOf(v).Elem()
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		if rv.Field(i).Kind() == reflect.String {
			rv.Field(i).SetString(prefix + ":" + rt.Field(i).Name)
		}
	}
}

func TestHeaderMappingRoundTrip(t *testing.T) {
	in := fullAPIOrder()
	out := headerToAPI(headerFromAPI(in))

	// Identity fields live outside the header mapping.
	in.ID = 0
	in.OrderDetails = nil
	if !reflect.DeepEqual(in, out) {
		t.Errorf("header mapping is lossy:\n in: %+v\nout: %+v", in, out)
	}
}

func TestDetailMappingRoundTrip(t *testing.T) {
	in := fullAPIDetail(5)
	out := detailToAPI(detailFromAPI(in))

	// OrderID is the parent reference; the client model carries it via
	// the enclosing order, not the item.
	in.OrderID = 0
	if !reflect.DeepEqual(in, out) {
		t.Errorf("detail mapping is lossy:\n in: %+v\nout: %+v", in, out)
	}
}

func TestHeaderMappingIsTotal(t *testing.T) {
	// Every string column of the wire record must survive the mapping:
	// after a round trip through the model, no field may be empty.
	out := headerToAPI(headerFromAPI(fullAPIOrder()))
	rv := reflect.ValueOf(out)
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		if rv.Field(i).Kind() == reflect.String && rv.Field(i).String() == "" {
			t.Errorf("header field %s dropped by mapping", rt.Field(i).Name)
		}
	}
}

func TestDetailMappingIsTotal(t *testing.T) {
	out := detailToAPI(detailFromAPI(fullAPIDetail(1)))
	rv := reflect.ValueOf(out)
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		if rv.Field(i).Kind() == reflect.String && rv.Field(i).String() == "" {
			t.Errorf("detail field %s dropped by mapping", rt.Field(i).Name)
		}
	}
}

func TestWireTagsAreSnakeCase(t *testing.T) {
	check := func(t *testing.T, v any) {
		t.Helper()
		rt := reflect.TypeOf(v)
		for i := 0; i < rt.NumField(); i++ {
			tag := rt.Field(i).Tag.Get("json")
			if tag == "" {
				t.Errorf("%s.%s has no json tag", rt.Name(), rt.Field(i).Name)
				continue
			}
			if strings.ToLower(tag) != tag {
				t.Errorf("%s.%s tag %q is not snake_case", rt.Name(), rt.Field(i).Name, tag)
			}
		}
	}
	check(t, apiOrder{})
	check(t, apiOrderDetail{})
}

func TestOrderFromAPI(t *testing.T) {
	raw := `{
		"id": 12,
		"receive_order_date": "2025-10-06",
		"house_name": "山田様邸",
		"delivery_postal_code": "520-3234",
		"order_details": [
			{"id": 1, "order_id": 12, "product_name": "石膏ボード", "quantity": 4, "order_unit_price": "980", "total_price": "3920"}
		]
	}`
	var o apiOrder
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	order := orderFromAPI(o)
	if order.ID != 12 {
		t.Errorf("id: got %d", order.ID)
	}
	if order.Header.HouseName != "山田様邸" {
		t.Errorf("houseName: got %q", order.Header.HouseName)
	}
	if order.Header.DeliveryPostalCode != "520-3234" {
		t.Errorf("deliveryPostalCode: got %q", order.Header.DeliveryPostalCode)
	}
	if len(order.Details) != 1 {
		t.Fatalf("details: got %d", len(order.Details))
	}
	d := order.Details[0]
	if d.ProductName != "石膏ボード" || d.Quantity != 4 || d.TotalPrice != "3920" {
		t.Errorf("detail mapping: %+v", d)
	}
}
