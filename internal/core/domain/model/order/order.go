package order

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Actors recorded in the status history for changes not made by a person.
const (
	// ActorSystem marks automatic status changes performed by the core itself,
	// such as the transition to Assigned during vehicle binding.
	ActorSystem = "system"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// StatusChange is a single append-only entry of an order's status history.
// Entries are immutable once recorded; the history is never rewritten.
type StatusChange struct {
	Status   Status
	At       time.Time
	Actor    string
	Notes    string
	Location *kernel.GeoLocation
}

// Note is a free-form annotation attached to an order. Notes have no
// state-machine implications.
type Note struct {
	Text  string
	Actor string
	At    time.Time
}

// Cancellation records why, when and by whom an order was cancelled, together
// with the refund computed at cancellation time.
type Cancellation struct {
	Reason       string
	Actor        string
	At           time.Time
	RefundAmount float64
}

// Order represents a shipment request moving through a fixed lifecycle from
// creation to delivery or termination. It is the aggregate root owned by the
// order lifecycle manager; all mutations go through its methods and orders are
// never physically deleted, only terminally statused.
//
// Order enforces these invariants:
//   - Order number and tracking number are allocated at creation and never reassigned
//   - Status transitions follow the state machine defined by Status
//   - The status history is append-only and records every transition
//   - Cargo total weight is positive and time windows are well-formed
//   - Driver/vehicle/route bindings only exist in statuses that permit them
type Order struct {
	id             kernel.UUID
	orderNumber    string
	trackingNumber string

	customerID kernel.UUID
	vendorID   *kernel.UUID
	driverID   *kernel.UUID
	vehicleID  *kernel.UUID
	routeID    *kernel.UUID

	status Status

	pickupLocation   kernel.GeoLocation
	deliveryLocation kernel.GeoLocation
	pickupWindow     kernel.TimeWindow
	deliveryWindow   kernel.TimeWindow
	contact          Contact
	cargo            Cargo
	pricing          Pricing

	history            []StatusChange
	notes              []Note
	cancellation       *Cancellation
	actualDeliveryTime *time.Time

	version int
	guard   guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with freshly allocated order
// and tracking numbers. All parameters are validated; validation failures are
// aggregated and returned as a single error with no partial construction.
//
// The order number derives from the aggregate's UUID and the tracking number
// from an independently generated UUID, so both are unique without a shared
// counter; the storage layer backs them with unique indexes.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	vendorID *kernel.UUID,
	pickupLocation kernel.GeoLocation,
	deliveryLocation kernel.GeoLocation,
	pickupWindow kernel.TimeWindow,
	deliveryWindow kernel.TimeWindow,
	contact Contact,
	cargo Cargo,
	pricing Pricing,
) (*Order, error) {
	o := &Order{
		status:  Pending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setPickupLocation(pickupLocation),
		o.setDeliveryLocation(deliveryLocation),
		o.setPickupWindow(pickupWindow),
		o.setDeliveryWindow(deliveryWindow),
		o.setContact(contact),
		o.setCargo(cargo),
		o.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	o.orderNumber = numberFromUUID("ORD", id)
	o.trackingNumber = numberFromUUID("TRK", kernel.NewUUID())
	o.history = append(o.history, StatusChange{
		Status: Pending,
		At:     time.Now().UTC(),
		Actor:  ActorSystem,
		Notes:  "order created",
	})

	return o, nil
}

// OrderSnapshot carries the persisted state of an order for restoration.
type OrderSnapshot struct {
	ID                 kernel.UUID
	OrderNumber        string
	TrackingNumber     string
	CustomerID         kernel.UUID
	VendorID           *kernel.UUID
	DriverID           *kernel.UUID
	VehicleID          *kernel.UUID
	RouteID            *kernel.UUID
	Status             Status
	PickupLocation     kernel.GeoLocation
	DeliveryLocation   kernel.GeoLocation
	PickupWindow       kernel.TimeWindow
	DeliveryWindow     kernel.TimeWindow
	Contact            Contact
	Cargo              Cargo
	Pricing            Pricing
	History            []StatusChange
	Notes              []Note
	Cancellation       *Cancellation
	ActualDeliveryTime *time.Time
	Version            int
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it does not allocate numbers or seed history; the restored
// order behaves identically to one built through normal domain operations.
func RestoreOrder(snapshot OrderSnapshot) (*Order, error) {
	o := &Order{
		status:  snapshot.Status,
		version: snapshot.Version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(snapshot.ID),
		o.setCustomerID(snapshot.CustomerID),
		o.setVendorID(snapshot.VendorID),
		o.setPickupLocation(snapshot.PickupLocation),
		o.setDeliveryLocation(snapshot.DeliveryLocation),
		o.setPickupWindow(snapshot.PickupWindow),
		o.setDeliveryWindow(snapshot.DeliveryWindow),
		o.setContact(snapshot.Contact),
		o.setCargo(snapshot.Cargo),
		o.setPricing(snapshot.Pricing),
		snapshot.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if snapshot.OrderNumber == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if snapshot.TrackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("tracking number")
	}

	o.orderNumber = snapshot.OrderNumber
	o.trackingNumber = snapshot.TrackingNumber
	o.driverID = snapshot.DriverID
	o.vehicleID = snapshot.VehicleID
	o.routeID = snapshot.RouteID
	o.history = snapshot.History
	o.notes = snapshot.Notes
	o.cancellation = snapshot.Cancellation
	o.actualDeliveryTime = snapshot.ActualDeliveryTime

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the globally unique order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// TrackingNumber returns the globally unique tracking number.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the optional vendor identifier, nil when absent.
func (o *Order) VendorID() *kernel.UUID {
	return o.vendorID
}

// DriverID returns the assigned driver's identifier, nil when unassigned.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// VehicleID returns the assigned vehicle's identifier, nil when unassigned.
func (o *Order) VehicleID() *kernel.UUID {
	return o.vehicleID
}

// RouteID returns the bound route's identifier, nil when no route is bound.
func (o *Order) RouteID() *kernel.UUID {
	return o.routeID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PickupLocation returns the pickup point.
func (o *Order) PickupLocation() kernel.GeoLocation {
	return o.pickupLocation
}

// DeliveryLocation returns the delivery destination.
func (o *Order) DeliveryLocation() kernel.GeoLocation {
	return o.deliveryLocation
}

// PickupWindow returns the scheduled pickup window.
func (o *Order) PickupWindow() kernel.TimeWindow {
	return o.pickupWindow
}

// DeliveryWindow returns the scheduled delivery window.
func (o *Order) DeliveryWindow() kernel.TimeWindow {
	return o.deliveryWindow
}

// Contact returns the delivery contact.
func (o *Order) Contact() Contact {
	return o.contact
}

// Cargo returns the cargo summary.
func (o *Order) Cargo() Cargo {
	return o.cargo
}

// Pricing returns the monetary totals.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// History returns the append-only status history in recording order.
func (o *Order) History() []StatusChange {
	return o.history
}

// Notes returns the annotations attached to the order.
func (o *Order) Notes() []Note {
	return o.notes
}

// Cancellation returns the cancellation record, nil while the order is active.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// ActualDeliveryTime returns when the order was delivered, nil until then.
func (o *Order) ActualDeliveryTime() *time.Time {
	return o.actualDeliveryTime
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus transitions the order to newStatus and appends an immutable
// history entry recording the actor, optional notes and optional location.
//
// Returns InvalidTransitionError when newStatus is not reachable from the
// current status. When newStatus is Delivered the actual delivery time is
// recorded as part of the same change.
func (o *Order) ChangeStatus(newStatus Status, actor, notes string, location *kernel.GeoLocation) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = next
	o.history = append(o.history, StatusChange{
		Status:   next,
		At:       now,
		Actor:    actor,
		Notes:    notes,
		Location: location,
	})

	if next == Delivered {
		o.actualDeliveryTime = &now
	}

	return nil
}

// Cancel terminates the order and records the cancellation metadata.
//
// Business rules:
//   - Delivered and already cancelled orders cannot be cancelled
//   - The refund equals the full order total when the order was still Pending,
//     and zero in every later status
//
// The caller is responsible for releasing any bound vehicle afterwards; Cancel
// itself only clears the order's side of the binding.
func (o *Order) Cancel(reason, actor string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellation reason")
	}

	wasPending := o.status == Pending

	if err := o.ChangeStatus(Cancelled, actor, reason, nil); err != nil {
		return err
	}

	refund := 0.0
	if wasPending {
		refund = o.pricing.TotalAmount()
	}

	o.cancellation = &Cancellation{
		Reason:       reason,
		Actor:        actor,
		At:           time.Now().UTC(),
		RefundAmount: refund,
	}

	return nil
}

// AssignTransport binds a driver, vehicle and optionally a route to the order
// and transitions it to Assigned. The transition is recorded in the history as
// an automatic change. Orders that are no longer assignable fail with
// InvalidTransitionError through the status state machine.
func (o *Order) AssignTransport(driverID, vehicleID kernel.UUID, routeID *kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}
	if routeID != nil {
		if err := routeID.Validate(); err != nil {
			return err
		}
	}

	if err := o.ChangeStatus(Assigned, ActorSystem, "transport assigned", nil); err != nil {
		return err
	}

	o.driverID = &driverID
	o.vehicleID = &vehicleID
	o.routeID = routeID
	return nil
}

// ReleaseTransport clears the driver/vehicle/route binding.
// It reports whether a vehicle was actually bound, so callers can decide
// whether the vehicle record needs to be freed. Releasing an unbound order is
// a no-op, which makes release idempotent.
func (o *Order) ReleaseTransport() bool {
	released := o.vehicleID != nil
	o.driverID = nil
	o.vehicleID = nil
	o.routeID = nil
	return released
}

// AddNote appends a free-form annotation. Notes never affect the state machine.
func (o *Order) AddNote(text, actor string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("note text")
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	o.notes = append(o.notes, Note{
		Text:  text,
		Actor: actor,
		At:    time.Now().UTC(),
	})
	return nil
}

// numberFromUUID renders a prefixed business number from a UUID.
func numberFromUUID(prefix string, id kernel.UUID) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setVendorID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.vendorID = id
	return nil
}

func (o *Order) setPickupLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.pickupLocation = location
	return nil
}

func (o *Order) setDeliveryLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	o.deliveryLocation = location
	return nil
}

func (o *Order) setPickupWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	o.pickupWindow = window
	return nil
}

func (o *Order) setDeliveryWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	o.deliveryWindow = window
	return nil
}

func (o *Order) setContact(contact Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func (o *Order) setCargo(cargo Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}
	o.cargo = cargo
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}
