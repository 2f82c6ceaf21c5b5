// Package form owns the in-memory order-entry state for one form
// session: the header, the ordered line items, and the submission
// status machine. All mutations go through named operations so that
// validation, draft persistence and submission stay decoupled from how
// the state is stored.
package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/juchu-dx/api/internal/draft"
	"github.com/juchu-dx/api/internal/model"
	"github.com/juchu-dx/api/internal/validation"
	"github.com/shopspring/decimal"
)

// Status is the submission/draft status of the form.
// Transitions: idle → saving → {saved → idle | error}. An error status
// holds until the next submit or draft save restarts at saving.
type Status string

const (
	StatusIdle   Status = "idle"
	StatusSaving Status = "saving"
	StatusSaved  Status = "saved"
	StatusError  Status = "error"
)

// ErrValidation is returned by Submit when client-side validation
// fails; no network call is made in that case.
var ErrValidation = errors.New("入力内容に誤りがあります")

// defaultSavedHold is how long the status shows "saved" before
// returning to idle after a successful draft save.
const defaultSavedHold = 2 * time.Second

// Submitter posts a completed order. Satisfied by *client.Client;
// narrow interface for testability.
type Submitter interface {
	Create(ctx context.Context, header model.Header, items []model.LineItem) (int64, error)
}

// DraftStore persists one local snapshot. Satisfied by *draft.Store.
type DraftStore interface {
	Save(header model.Header, items []model.LineItem) error
	Load() (*draft.Snapshot, error)
	Clear() error
}

// Confirmer asks the user a yes/no question. Replaces the blocking
// confirm dialog so the form core runs headless.
type Confirmer interface {
	Confirm(message string) bool
}

// Notifier surfaces a user-visible message. Replaces blocking alerts.
type Notifier interface {
	Notify(message string)
}

// Config wires a Form's collaborators. API is required; the rest have
// working defaults (nil Confirm accepts, nil Notify discards).
type Config struct {
	API       Submitter
	Drafts    DraftStore
	Confirm   Confirmer
	Notify    Notifier
	Now       func() time.Time
	SavedHold time.Duration
}

// Form is the mutable order-entry state for one session.
type Form struct {
	mu        sync.Mutex
	header    model.Header
	items     []model.LineItem
	status    Status
	result    validation.OrderResult
	api       Submitter
	drafts    DraftStore
	confirm   Confirmer
	notify    Notifier
	now       func() time.Time
	savedHold time.Duration
	holdTimer *time.Timer
}

// New creates a form with fresh defaults and one empty line item.
func New(cfg Config) *Form {
	f := &Form{
		api:       cfg.API,
		drafts:    cfg.Drafts,
		confirm:   cfg.Confirm,
		notify:    cfg.Notify,
		now:       cfg.Now,
		savedHold: cfg.SavedHold,
		status:    StatusIdle,
	}
	if f.now == nil {
		f.now = time.Now
	}
	if f.savedHold == 0 {
		f.savedHold = defaultSavedHold
	}
	f.resetLocked()
	return f
}

// Header returns a copy of the current header.
func (f *Form) Header() model.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.header
}

// Items returns a copy of the current line items.
func (f *Form) Items() []model.LineItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]model.LineItem, len(f.items))
	copy(items, f.items)
	return items
}

// Status returns the current submission status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Errors returns the validation result of the last submit attempt.
func (f *Form) Errors() validation.OrderResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// SetHeaderField replaces one header attribute by its field name.
// Unknown field names are ignored.
func (f *Form) SetHeaderField(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "receiveOrderDate":
		f.header.ReceiveOrderDate = value
	case "contractNumber":
		f.header.ContractNumber = value
	case "maxVehicle":
		f.header.MaxVehicle = value
	case "storeCode":
		f.header.StoreCode = value
	case "houseName":
		f.header.HouseName = value
	case "propertyPostalCode":
		f.header.PropertyPostalCode = value
	case "propertyPrefecture":
		f.header.PropertyPrefecture = value
	case "propertyAddress":
		f.header.PropertyAddress = value
	case "propertyMemo":
		f.header.PropertyMemo = value
	case "constructionManager":
		f.header.ConstructionManager = value
	case "constructionManagerPhone":
		f.header.ConstructionManagerPhone = value
	case "deliveryDestinationType":
		f.header.DeliveryDestinationType = value
	case "deliveryPostalCode":
		f.header.DeliveryPostalCode = value
	case "deliveryPrefecture":
		f.header.DeliveryPrefecture = value
	case "deliveryAddress":
		f.header.DeliveryAddress = value
	case "deliveryPhone":
		f.header.DeliveryPhone = value
	case "deliveryName":
		f.header.DeliveryName = value
	case "contactMethod":
		f.header.ContactMethod = value
	case "fax":
		f.header.Fax = value
	case "email":
		f.header.Email = value
	case "email2":
		f.header.Email2 = value
	case "email3":
		f.header.Email3 = value
	case "emailCc1":
		f.header.EmailCc1 = value
	case "emailCc2":
		f.header.EmailCc2 = value
	case "emailCc3":
		f.header.EmailCc3 = value
	case "deliveryResponsePerson":
		f.header.DeliveryResponsePerson = value
	case "deliveryMemo":
		f.header.DeliveryMemo = value
	}
}

// SetLineItemField replaces one attribute of the item at index.
// Out-of-range indexes and the derived total fields are no-ops; totals
// are recomputed from quantity and the unit prices instead.
func (f *Form) SetLineItemField(index int, field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if index < 0 || index >= len(f.items) {
		return
	}
	item := &f.items[index]

	switch field {
	case "productSearch":
		item.ProductSearch = value
	case "productName":
		item.ProductName = value
	case "officialProductCode":
		item.OfficialProductCode = value
	case "specificationCode":
		item.SpecificationCode = value
	case "quantity":
		// Invalid input parses to 0 and is caught by validation.
		n, err := strconv.Atoi(value)
		if err != nil {
			n = 0
		}
		item.Quantity = n
	case "specialOrderFlag":
		item.SpecialOrderFlag = value
	case "desiredPurchaseDate":
		item.DesiredPurchaseDate = value
	case "frequencyCategory":
		item.FrequencyCategory = value
	case "arrivalDate":
		item.ArrivalDate = value
	case "unitWeight":
		item.UnitWeight = value
	case "unit":
		item.Unit = value
	case "carrierCode":
		item.CarrierCode = value
	case "shipper":
		item.Shipper = value
	case "shipperPhone":
		item.ShipperPhone = value
	case "orderUnitPrice":
		item.OrderUnitPrice = value
	case "deliveryUnitPrice":
		item.DeliveryUnitPrice = value
	case "customerUnitPrice":
		item.CustomerUnitPrice = value
	default:
		return
	}

	recomputeTotals(item)
}

// AddLineItem appends a new line item with row defaults.
func (f *Form) AddLineItem() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, model.NewLineItem(len(f.items)+1))
}

// RemoveLineItem removes the item at index. The form always keeps at
// least one row: removal of the last remaining item is a no-op.
func (f *Form) RemoveLineItem(index int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) <= 1 || index < 0 || index >= len(f.items) {
		return
	}
	f.items = append(f.items[:index], f.items[index+1:]...)
}

// Reset discards all edits and restores fresh defaults. The draft
// snapshot, if any, is untouched.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Form) resetLocked() {
	f.header = model.NewHeader(f.now())
	f.items = []model.LineItem{model.NewLineItem(1)}
	f.result = validation.OrderResult{}
}

// Submit validates the full form and posts it. Validation failure
// surfaces field errors and aborts without a network call. On success
// the form resets and the new order id is returned.
func (f *Form) Submit(ctx context.Context) (int64, error) {
	f.mu.Lock()
	res := validation.ValidateOrder(f.header, f.items, f.now())
	f.result = res
	if !res.IsValid() {
		f.mu.Unlock()
		f.notifyMsg("入力内容に誤りがあります。各項目を確認してください")
		return 0, ErrValidation
	}

	f.status = StatusSaving
	header := f.header
	items := make([]model.LineItem, len(f.items))
	copy(items, f.items)
	f.mu.Unlock()

	id, err := f.api.Create(ctx, header, items)

	f.mu.Lock()
	if err != nil {
		f.status = StatusError
		f.mu.Unlock()
		f.notifyMsg(err.Error())
		return 0, err
	}
	f.resetLocked()
	f.status = StatusIdle
	f.mu.Unlock()

	f.notifyMsg(fmt.Sprintf("受注が正常に登録されました。受注ID: %d", id))
	return id, nil
}

// SaveDraft writes the current snapshot to the draft store. On success
// the status shows saved for a short hold, then returns to idle.
func (f *Form) SaveDraft() error {
	f.mu.Lock()
	f.status = StatusSaving
	header := f.header
	items := make([]model.LineItem, len(f.items))
	copy(items, f.items)
	f.mu.Unlock()

	if err := f.drafts.Save(header, items); err != nil {
		f.mu.Lock()
		f.status = StatusError
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.status = StatusSaved
	if f.holdTimer != nil {
		f.holdTimer.Stop()
	}
	f.holdTimer = time.AfterFunc(f.savedHold, func() {
		f.mu.Lock()
		if f.status == StatusSaved {
			f.status = StatusIdle
		}
		f.mu.Unlock()
	})
	f.mu.Unlock()
	return nil
}

// ClearDraft deletes the draft snapshot.
func (f *Form) ClearDraft() error {
	return f.drafts.Clear()
}

// LoadDraft restores a saved snapshot if one exists and the user
// confirms. Reports whether the snapshot was applied.
func (f *Form) LoadDraft() (bool, error) {
	snap, err := f.drafts.Load()
	if err != nil {
		return false, err
	}
	if snap == nil {
		return false, nil
	}
	if f.confirm != nil && !f.confirm.Confirm("保存された下書きがあります。復元しますか？") {
		return false, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.header = snap.Header
	if len(snap.Items) > 0 {
		f.items = append([]model.LineItem(nil), snap.Items...)
	} else {
		f.items = []model.LineItem{model.NewLineItem(1)}
	}
	return true, nil
}

func (f *Form) notifyMsg(msg string) {
	if f.notify != nil {
		f.notify.Notify(msg)
	}
}

// recomputeTotals derives the three read-only totals from quantity and
// the matching unit price. A missing or malformed unit price clears its
// total.
func recomputeTotals(item *model.LineItem) {
	qty := decimal.NewFromInt(int64(item.Quantity))
	item.TotalPrice = mulOrEmpty(item.OrderUnitPrice, qty)
	item.TotalDeliveryUnitPrice = mulOrEmpty(item.DeliveryUnitPrice, qty)
	item.TotalCustomerUnitPrice = mulOrEmpty(item.CustomerUnitPrice, qty)
}

func mulOrEmpty(unitPrice string, qty decimal.Decimal) string {
	if unitPrice == "" {
		return ""
	}
	d, err := decimal.NewFromString(unitPrice)
	if err != nil {
		return ""
	}
	return d.Mul(qty).String()
}
