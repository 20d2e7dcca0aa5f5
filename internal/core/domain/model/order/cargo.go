package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCargoIsNotConstructed is returned when using a Cargo that was not created
// via NewCargo.
var ErrCargoIsNotConstructed = errs.NewValueIsRequiredError(
	"cargo must be created via NewCargo constructor")

// Cargo summarizes the physical load of an order: total weight in kilograms,
// total volume in cubic meters and declared monetary value. It is an immutable
// value object derived from the order's line items by the caller.
//
// Business rules:
//   - Total weight must be positive; an order without weight cannot be shipped
//   - Volume and declared value must not be negative
type Cargo struct {
	totalWeight   float64
	totalVolume   float64
	declaredValue float64
	guard         guard.ConstructorGuard
}

// NewCargo creates a Cargo summary after validating the totals.
func NewCargo(totalWeight, totalVolume, declaredValue float64) (Cargo, error) {
	if totalWeight <= 0 {
		return Cargo{}, errs.NewValueIsInvalidErrorWithCause("cargo total weight",
			fmt.Errorf("%f is not greater than 0", totalWeight))
	}
	if totalVolume < 0 {
		return Cargo{}, errs.NewValueIsInvalidError("cargo total volume")
	}
	if declaredValue < 0 {
		return Cargo{}, errs.NewValueIsInvalidError("cargo declared value")
	}

	return Cargo{
		totalWeight:   totalWeight,
		totalVolume:   totalVolume,
		declaredValue: declaredValue,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Cargo was properly constructed via NewCargo.
func (c Cargo) Validate() error {
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

// TotalWeight returns the total cargo weight in kilograms.
func (c Cargo) TotalWeight() float64 {
	return c.totalWeight
}

// TotalVolume returns the total cargo volume in cubic meters.
func (c Cargo) TotalVolume() float64 {
	return c.totalVolume
}

// DeclaredValue returns the declared monetary value of the cargo.
func (c Cargo) DeclaredValue() float64 {
	return c.declaredValue
}

// ErrPricingIsNotConstructed is returned when using a Pricing that was not
// created via NewPricing.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing must be created via NewPricing constructor")

// Pricing captures the monetary totals of an order.
type Pricing struct {
	totalAmount float64
	currency    string
	guard       guard.ConstructorGuard
}

// NewPricing creates a Pricing after validating that the amount is not negative
// and the currency is a three-letter code.
func NewPricing(totalAmount float64, currency string) (Pricing, error) {
	if totalAmount < 0 {
		return Pricing{}, errs.NewValueIsInvalidError("total amount")
	}
	if len(currency) != 3 {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter code", currency))
	}

	return Pricing{
		totalAmount: totalAmount,
		currency:    currency,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Pricing was properly constructed via NewPricing.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// TotalAmount returns the order total.
func (p Pricing) TotalAmount() float64 {
	return p.totalAmount
}

// Currency returns the three-letter currency code.
func (p Pricing) Currency() string {
	return p.currency
}

// ErrContactIsNotConstructed is returned when using a Contact that was not
// created via NewContact.
var ErrContactIsNotConstructed = errs.NewValueIsRequiredError(
	"contact must be created via NewContact constructor")

// Contact holds the delivery contact for an order. Both name and phone are
// required so drivers always have someone to reach at the destination.
type Contact struct {
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewContact creates a Contact after validating completeness.
func NewContact(name, phone string) (Contact, error) {
	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("contact name")
	}
	if phone == "" {
		return Contact{}, errs.NewValueIsRequiredError("contact phone")
	}

	return Contact{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Contact was properly constructed via NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the contact person's name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c Contact) Phone() string {
	return c.phone
}
