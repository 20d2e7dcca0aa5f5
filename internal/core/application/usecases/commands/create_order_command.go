package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new fulfillment order.
// Encapsulates the pickup/delivery legs, the time windows, the cargo figures
// and the pricing used later for the refund rule.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, nil,
//	    pickup, delivery, pickupStart, pickupEnd, deliveryStart, deliveryEnd,
//	    "Dana Reyes", "+1-555-0101", 120, 0.8, 1500, 115, "USD")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	vendorID   *kernel.UUID

	pickupLocation   kernel.GeoLocation
	deliveryLocation kernel.GeoLocation
	pickupWindow     kernel.TimeWindow
	deliveryWindow   kernel.TimeWindow

	contactName  string
	contactPhone string

	totalWeight   float64
	totalVolume   float64
	declaredValue float64

	totalAmount float64
	currency    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new fulfillment order.
// The time windows are validated here (start < end); cargo, pricing and
// contact validation happens in the domain constructors invoked by the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	vendorID *kernel.UUID,
	pickupLocation kernel.GeoLocation,
	deliveryLocation kernel.GeoLocation,
	pickupStart, pickupEnd time.Time,
	deliveryStart, deliveryEnd time.Time,
	contactName string,
	contactPhone string,
	totalWeight, totalVolume, declaredValue float64,
	totalAmount float64,
	currency string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		vendorID:      vendorID,
		contactName:   contactName,
		contactPhone:  contactPhone,
		totalWeight:   totalWeight,
		totalVolume:   totalVolume,
		declaredValue: declaredValue,
		totalAmount:   totalAmount,
		currency:      currency,
		guard:         guard.NewConstructorGuard(),
	}

	pickupWindow, pickupErr := kernel.NewTimeWindow(pickupStart, pickupEnd)
	deliveryWindow, deliveryErr := kernel.NewTimeWindow(deliveryStart, deliveryEnd)

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLocations(pickupLocation, deliveryLocation),
		pickupErr,
		deliveryErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.pickupWindow = pickupWindow
	cmd.deliveryWindow = deliveryWindow
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the optional vendor identifier.
func (c CreateOrderCommand) VendorID() *kernel.UUID {
	return c.vendorID
}

// PickupLocation returns the pickup coordinates.
func (c CreateOrderCommand) PickupLocation() kernel.GeoLocation {
	return c.pickupLocation
}

// DeliveryLocation returns the delivery coordinates.
func (c CreateOrderCommand) DeliveryLocation() kernel.GeoLocation {
	return c.deliveryLocation
}

// PickupWindow returns the validated pickup time window.
func (c CreateOrderCommand) PickupWindow() kernel.TimeWindow {
	return c.pickupWindow
}

// DeliveryWindow returns the validated delivery time window.
func (c CreateOrderCommand) DeliveryWindow() kernel.TimeWindow {
	return c.deliveryWindow
}

// ContactName returns the delivery contact name.
func (c CreateOrderCommand) ContactName() string {
	return c.contactName
}

// ContactPhone returns the delivery contact phone.
func (c CreateOrderCommand) ContactPhone() string {
	return c.contactPhone
}

// TotalWeight returns the cargo weight in kilograms.
func (c CreateOrderCommand) TotalWeight() float64 {
	return c.totalWeight
}

// TotalVolume returns the cargo volume in cubic meters.
func (c CreateOrderCommand) TotalVolume() float64 {
	return c.totalVolume
}

// DeclaredValue returns the declared cargo value.
func (c CreateOrderCommand) DeclaredValue() float64 {
	return c.declaredValue
}

// TotalAmount returns the order total used for the refund rule.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Currency returns the three-letter pricing currency code.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLocations(pickup, delivery kernel.GeoLocation) error {
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	c.pickupLocation = pickup
	c.deliveryLocation = delivery
	return nil
}
