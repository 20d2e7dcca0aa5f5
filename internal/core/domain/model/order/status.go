package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Assigned ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	   │            │
//	   └────────────┴──────> Assigned   (direct assignment from Pending/Confirmed)
//
// Cancelled, Returned and Failed are reachable from every non-terminal state.
// Delivered, Cancelled, Returned and Failed are terminal: no edge leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Processing indicates warehouse preparation is underway.
	Processing

	// Assigned indicates a driver and vehicle have been bound to the order.
	Assigned

	// PickedUp indicates the cargo has been collected from the pickup point.
	PickedUp

	// InTransit indicates the cargo is moving along its route.
	InTransit

	// OutForDelivery indicates the cargo is on its final delivery leg.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled

	// Returned indicates the cargo was returned to the sender. Terminal.
	Returned

	// Failed indicates delivery failed permanently. Terminal.
	Failed
)

// getStatusStrings returns the string representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Processing:     "processing",
		Assigned:       "assigned",
		PickedUp:       "picked-up",
		InTransit:      "in-transit",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
		Returned:       "returned",
		Failed:         "failed",
	}
}

// getTransitions returns the legal forward edges for every status.
// Cancelled, Returned and Failed are appended to every non-terminal status;
// terminal statuses map to an empty set.
func getTransitions() map[Status][]Status {
	exits := []Status{Cancelled, Returned, Failed}

	transitions := map[Status][]Status{
		Pending:        {Confirmed, Assigned},
		Confirmed:      {Processing, Assigned},
		Processing:     {Assigned},
		Assigned:       {PickedUp},
		PickedUp:       {InTransit},
		InTransit:      {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
		Returned:       {},
		Failed:         {},
	}

	for s := range transitions {
		if !s.IsTerminal() {
			transitions[s] = append(transitions[s], exits...)
		}
	}

	return transitions
}

// Validate checks if the Status value is a defined lifecycle state.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
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
// Returns an error for names that do not designate a defined state.
func StatusFromString(name string) (Status, error) {
	for s, str := range getStatusStrings() {
		if str == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// IsTerminal reports whether no further transitions are legal from the status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Returned || s == Failed
}

// CanTransitionTo reports whether the edge from s to next is legal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition from s to next.
//
// Returns:
//   - (next, nil) when the edge is legal
//   - (0, InvalidTransitionError) when next is not reachable from s
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}
