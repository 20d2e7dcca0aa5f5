package vehicle

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the operational state of a vehicle.
//
// Available is the only state from which a vehicle can be booked; the
// available -> assigned edge is the serialization point for the whole
// assignment transaction and is persisted as a compare-and-swap, so of two
// concurrent bookings at most one succeeds.
//
// State transitions:
//
//	Available ──> Assigned ──> InTransit ──> Unloading ─┐
//	    ^             │            │                    │
//	    └─────────────┴────────────┴────────────────────┘
//
// Loading, Maintenance and OutOfService are side states entered from Available
// or Assigned; Maintenance and OutOfService return only to Available.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the vehicle can be booked for an order.
	Available

	// Assigned means the vehicle is booked for an order but not yet moving.
	Assigned

	// InTransit means the vehicle is executing a route.
	InTransit

	// Loading means cargo is being loaded.
	Loading

	// Unloading means cargo is being unloaded.
	Unloading

	// Maintenance means the vehicle is temporarily out of rotation for service.
	Maintenance

	// OutOfService means the vehicle is withdrawn until further notice.
	OutOfService
)

// getStatusStrings returns the string representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Available:    "available",
		Assigned:     "assigned",
		InTransit:    "in-transit",
		Loading:      "loading",
		Unloading:    "unloading",
		Maintenance:  "maintenance",
		OutOfService: "out-of-service",
	}
}

// Validate checks if the Status value is a defined operational state.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("vehicle status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("vehicle status")
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString resolves a wire name back to a Status value.
func StatusFromString(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if str == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("vehicle status")
}

// IsBookable reports whether a vehicle in this status can accept a new order.
func (s Status) IsBookable() bool {
	return s == Available
}
