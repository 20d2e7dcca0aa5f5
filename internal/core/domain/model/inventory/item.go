package inventory

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrSKUIsRequired is returned when attempting to create an item without a SKU.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")
	// ErrNameIsRequired is returned when attempting to create an item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// ItemStatus is derived from the stock figures after every mutation; it is
// never set independently of them.
type ItemStatus int

const (
	// ItemUnknown represents an invalid or undefined item status.
	ItemUnknown ItemStatus = iota

	// ItemActive means the item is stocked above its reorder point.
	ItemActive

	// ItemLowStock means available stock has reached the reorder point.
	ItemLowStock

	// ItemOutOfStock means no stock is available for allocation.
	ItemOutOfStock

	// ItemInactive means the item has been deactivated and takes no movements.
	ItemInactive
)

// getItemStatusStrings returns the string representation for every ItemStatus value.
func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:    "unknown",
		ItemActive:     "active",
		ItemLowStock:   "low-stock",
		ItemOutOfStock: "out-of-stock",
		ItemInactive:   "inactive",
	}
}

// String returns the wire name of the item status. Implements fmt.Stringer.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Stock is the current/reserved/available triple of an item.
// Available is always derived: available = current - reserved.
type Stock struct {
	Current  int
	Reserved int
}

// Available returns the stock still open for allocation.
func (s Stock) Available() int {
	return s.Current - s.Reserved
}

// Thresholds configures the stock levels that drive status derivation and alerting.
type Thresholds struct {
	ReorderPoint int
	Maximum      int
}

// AlertKind is the closed set of inventory alert types.
type AlertKind int

const (
	// AlertUnknown represents an invalid or undefined alert kind.
	AlertUnknown AlertKind = iota

	// AlertLowStock fires when available stock reaches the reorder point.
	AlertLowStock

	// AlertExpiration fires when the item approaches its expiry date.
	AlertExpiration

	// AlertOverstock fires when current stock exceeds the configured maximum.
	AlertOverstock
)

// Re-alert intervals: an alert kind that already fired is suppressed until its
// interval has passed.
const (
	lowStockRealertInterval   = 24 * time.Hour
	expirationRealertInterval = 24 * time.Hour
	overstockRealertInterval  = 7 * 24 * time.Hour

	// expirationLeadTime is how far ahead of the expiry date the expiration
	// alert starts firing.
	expirationLeadTime = 30 * 24 * time.Hour
)

// getAlertKindStrings returns the string representation for every AlertKind value.
func getAlertKindStrings() map[AlertKind]string {
	return map[AlertKind]string{
		AlertUnknown:    "unknown",
		AlertLowStock:   "low-stock",
		AlertExpiration: "expiration",
		AlertOverstock:  "overstock",
	}
}

// String returns the wire name of the alert kind. Implements fmt.Stringer.
func (k AlertKind) String() string {
	if str, ok := getAlertKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// AlertKindFromString parses a wire name into an AlertKind.
func AlertKindFromString(name string) (AlertKind, error) {
	for kind, str := range getAlertKindStrings() {
		if str == name && kind != AlertUnknown {
			return kind, nil
		}
	}
	return AlertUnknown, errs.NewValueIsInvalidError("alert kind")
}

// realertInterval returns the minimum time between two firings of the kind.
func (k AlertKind) realertInterval() time.Duration {
	if k == AlertOverstock {
		return overstockRealertInterval
	}
	return lowStockRealertInterval
}

// Alert is a single evaluation result produced by CheckAlerts.
type Alert struct {
	Kind    AlertKind
	Message string
	At      time.Time
}

// Item represents a warehouse stock item and its append-only movement ledger.
// It is the aggregate root of the inventory ledger: all stock changes flow
// through AddMovement/Reserve/Release, every change appends a permanent ledger
// entry, and the item status is recomputed from the stock figures after every
// mutation. Items are never deleted, only deactivated.
//
// Item enforces these invariants after every operation:
//   - current >= 0
//   - 0 <= reserved <= current
//   - available = current - reserved >= 0
type Item struct {
	id   kernel.UUID
	sku  string
	name string

	stock      Stock
	thresholds Thresholds
	expiryDate *time.Time

	movements   []Movement
	lastAlerted map[AlertKind]time.Time

	status ItemStatus
	active bool

	version int
	guard   guard.ConstructorGuard
}

// NewItem creates an active Item with zero stock. Opening stock is recorded
// through a regular inbound movement so the ledger stays complete.
func NewItem(
	id kernel.UUID,
	sku string,
	name string,
	thresholds Thresholds,
	expiryDate *time.Time,
) (*Item, error) {
	item := &Item{
		active:      true,
		lastAlerted: make(map[AlertKind]time.Time),
		version:     1,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setSKU(sku),
		item.setName(name),
		item.setThresholds(thresholds),
	); err != nil {
		return nil, err
	}

	item.expiryDate = expiryDate
	item.deriveStatus()
	return item, nil
}

// ItemSnapshot carries the persisted state of an item for restoration.
type ItemSnapshot struct {
	ID          kernel.UUID
	SKU         string
	Name        string
	Stock       Stock
	Thresholds  Thresholds
	ExpiryDate  *time.Time
	Movements   []Movement
	LastAlerted map[AlertKind]time.Time
	Active      bool
	Version     int
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
// The derived status is recomputed from the restored stock figures rather
// than trusted from storage.
func RestoreItem(snapshot ItemSnapshot) (*Item, error) {
	item := &Item{
		stock:       snapshot.Stock,
		movements:   snapshot.Movements,
		lastAlerted: snapshot.LastAlerted,
		active:      snapshot.Active,
		version:     snapshot.Version,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(snapshot.ID),
		item.setSKU(snapshot.SKU),
		item.setName(snapshot.Name),
		item.setThresholds(snapshot.Thresholds),
	); err != nil {
		return nil, err
	}

	if snapshot.Stock.Current < 0 || snapshot.Stock.Reserved < 0 ||
		snapshot.Stock.Reserved > snapshot.Stock.Current {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("current %d, reserved %d violate stock invariants",
				snapshot.Stock.Current, snapshot.Stock.Reserved))
	}

	if item.lastAlerted == nil {
		item.lastAlerted = make(map[AlertKind]time.Time)
	}
	item.expiryDate = snapshot.ExpiryDate
	item.deriveStatus()
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the item's globally unique stock keeping unit.
func (i *Item) SKU() string {
	return i.sku
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Stock returns the current/reserved stock figures.
func (i *Item) Stock() Stock {
	return i.stock
}

// Thresholds returns the configured stock thresholds.
func (i *Item) Thresholds() Thresholds {
	return i.thresholds
}

// ExpiryDate returns the item's expiry date, nil for non-perishables.
func (i *Item) ExpiryDate() *time.Time {
	return i.expiryDate
}

// Movements returns the append-only ledger in recording order.
func (i *Item) Movements() []Movement {
	return i.movements
}

// LastAlerted returns when each alert kind last fired.
func (i *Item) LastAlerted() map[AlertKind]time.Time {
	return i.lastAlerted
}

// Status returns the derived item status.
func (i *Item) Status() ItemStatus {
	return i.status
}

// IsActive reports whether the item still takes movements.
func (i *Item) IsActive() bool {
	return i.active
}

// Version returns the optimistic-concurrency version of the aggregate.
func (i *Item) Version() int {
	return i.version
}

// AddMovement applies a stock movement and appends it to the ledger.
//
// Quantity must be positive for every kind except adjustment, where a negative
// quantity expresses a downward correction. Increase kinds add to current
// stock; decrease kinds subtract and fail with InsufficientStockError when the
// result would drive available stock below zero — the check and the write are
// one step on the aggregate, made atomic by the surrounding transaction.
func (i *Item) AddMovement(kind MovementKind, quantity int, reason, actor, reference string) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if quantity == 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if quantity < 0 && kind != MovementAdjustment {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not positive for %s movement", quantity, kind))
	}
	if !i.active {
		return errs.NewValueIsInvalidErrorWithCause("item",
			fmt.Errorf("item %s is deactivated", i.sku))
	}

	effect := quantity
	if !kind.increasesStock() && quantity > 0 && kind != MovementAdjustment {
		effect = -quantity
	}

	if effect < 0 && i.stock.Available() < -effect {
		return errs.NewInsufficientStockError(i.sku, -effect, i.stock.Available())
	}

	abs := quantity
	if abs < 0 {
		abs = -abs
	}

	i.stock.Current += effect
	i.movements = append(i.movements, Movement{
		Kind:      kind,
		Quantity:  abs,
		Effect:    effect,
		Reason:    reason,
		Actor:     actor,
		Reference: reference,
		At:        time.Now().UTC(),
	})
	i.deriveStatus()
	return nil
}

// Reserve places a hold against available stock. Fails with
// InsufficientStockError when quantity exceeds the available snapshot; the
// surrounding transaction's version check turns the snapshot comparison into
// a compare-and-swap, so concurrent reservations cannot jointly overshoot.
func (i *Item) Reserve(quantity int, reason, actor string) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if !i.active {
		return errs.NewValueIsInvalidErrorWithCause("item",
			fmt.Errorf("item %s is deactivated", i.sku))
	}

	if quantity > i.stock.Available() {
		return errs.NewInsufficientStockError(i.sku, quantity, i.stock.Available())
	}

	i.stock.Reserved += quantity
	i.deriveStatus()
	return nil
}

// ReleaseReserved gives back a hold. The release is clamped to the currently
// reserved amount, so releasing more than is reserved is not an error and
// releasing twice is idempotent in effect. Returns the quantity actually freed.
func (i *Item) ReleaseReserved(quantity int, reason, actor string) (int, error) {
	if quantity <= 0 {
		return 0, errs.NewValueIsInvalidError("quantity")
	}
	if actor == "" {
		return 0, errs.NewValueIsRequiredError("actor")
	}

	released := quantity
	if released > i.stock.Reserved {
		released = i.stock.Reserved
	}

	i.stock.Reserved -= released
	i.deriveStatus()
	return released, nil
}

// CheckAlerts evaluates current stock and expiration against the thresholds,
// producing zero or more alerts. Each kind is gated by its re-alert interval:
// a kind that fired recently stays silent, and the last-alerted timestamp is
// updated only when the alert actually fires.
func (i *Item) CheckAlerts(now time.Time) []Alert {
	alerts := make([]Alert, 0, 3)

	if i.stock.Available() <= i.thresholds.ReorderPoint {
		if alert, ok := i.fire(AlertLowStock, now,
			fmt.Sprintf("%s available stock %d is at or below reorder point %d",
				i.sku, i.stock.Available(), i.thresholds.ReorderPoint)); ok {
			alerts = append(alerts, alert)
		}
	}

	if i.expiryDate != nil && !now.Add(expirationLeadTime).Before(*i.expiryDate) {
		if alert, ok := i.fire(AlertExpiration, now,
			fmt.Sprintf("%s expires at %s", i.sku, i.expiryDate.Format(time.RFC3339))); ok {
			alerts = append(alerts, alert)
		}
	}

	if i.thresholds.Maximum > 0 && i.stock.Current > i.thresholds.Maximum {
		if alert, ok := i.fire(AlertOverstock, now,
			fmt.Sprintf("%s current stock %d exceeds maximum %d",
				i.sku, i.stock.Current, i.thresholds.Maximum)); ok {
			alerts = append(alerts, alert)
		}
	}

	return alerts
}

// Deactivate retires the item. Deactivated items take no further movements or
// reservations; the ledger remains readable. Items are never deleted.
func (i *Item) Deactivate() {
	i.active = false
	i.deriveStatus()
}

// fire emits an alert of the kind unless it is still inside its re-alert
// interval, updating the last-alerted timestamp only on an actual firing.
func (i *Item) fire(kind AlertKind, now time.Time, message string) (Alert, bool) {
	if last, ok := i.lastAlerted[kind]; ok && now.Sub(last) < kind.realertInterval() {
		return Alert{}, false
	}

	i.lastAlerted[kind] = now
	return Alert{Kind: kind, Message: message, At: now}, true
}

// deriveStatus recomputes the item status from the stock figures.
func (i *Item) deriveStatus() {
	switch {
	case !i.active:
		i.status = ItemInactive
	case i.stock.Available() <= 0:
		i.status = ItemOutOfStock
	case i.stock.Available() <= i.thresholds.ReorderPoint:
		i.status = ItemLowStock
	default:
		i.status = ItemActive
	}
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}
	i.sku = sku
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setThresholds(thresholds Thresholds) error {
	if thresholds.ReorderPoint < 0 {
		return errs.NewValueIsInvalidError("reorder point")
	}
	if thresholds.Maximum < 0 {
		return errs.NewValueIsInvalidError("maximum stock")
	}
	i.thresholds = thresholds
	return nil
}
