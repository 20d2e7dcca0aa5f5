package inventory

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

// MovementKind is the closed set of stock movement types. Modeling this as a
// tagged variant, not an open string, prevents unsupported movement types from
// being persisted.
type MovementKind int

const (
	// MovementUnknown represents an invalid or undefined movement kind.
	MovementUnknown MovementKind = iota

	// MovementIn is an inbound receipt adding to current stock.
	MovementIn

	// MovementOut is an outbound issue subtracting from current stock.
	MovementOut

	// MovementTransfer is a relocation between warehouses, recorded as an
	// outbound effect on the source item.
	MovementTransfer

	// MovementAdjustment is a signed stocktake correction.
	MovementAdjustment

	// MovementDamaged writes off damaged stock.
	MovementDamaged

	// MovementExpired writes off expired stock.
	MovementExpired

	// MovementLost writes off lost stock.
	MovementLost
)

// getMovementKindStrings returns the string representation for every MovementKind value.
func getMovementKindStrings() map[MovementKind]string {
	return map[MovementKind]string{
		MovementUnknown:    "unknown",
		MovementIn:         "in",
		MovementOut:        "out",
		MovementTransfer:   "transfer",
		MovementAdjustment: "adjustment",
		MovementDamaged:    "damaged",
		MovementExpired:    "expired",
		MovementLost:       "lost",
	}
}

// Validate checks if the MovementKind value is a defined movement type.
func (k MovementKind) Validate() error {
	if k == MovementUnknown {
		return errs.NewValueIsInvalidError("movement kind")
	}
	if _, ok := getMovementKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidError("movement kind")
	}
	return nil
}

// String returns the wire name of the movement kind. Implements fmt.Stringer.
func (k MovementKind) String() string {
	if str, ok := getMovementKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// MovementKindFromString resolves a wire name back to a MovementKind value.
func MovementKindFromString(name string) (MovementKind, error) {
	for k, str := range getMovementKindStrings() {
		if str == name && k != MovementUnknown {
			return k, nil
		}
	}
	return MovementUnknown, errs.NewValueIsInvalidError("movement kind")
}

// increasesStock reports whether the kind adds to current stock.
// MovementAdjustment is direction-neutral; its sign comes from the quantity.
func (k MovementKind) increasesStock() bool {
	return k == MovementIn
}

// Movement is a single signed change to an item's stock, recorded permanently
// in the item's append-only ledger. Quantity is always positive; Effect
// carries the sign actually applied to current stock.
type Movement struct {
	Kind      MovementKind
	Quantity  int
	Effect    int
	Reason    string
	Actor     string
	Reference string
	At        time.Time
}
