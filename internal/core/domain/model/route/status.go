package route

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	Draft ──> Planned ──> Assigned ──> InProgress ──> Completed
//	                                      │   ^
//	                                      v   │
//	                                     Paused
//
// Cancelled is reachable from every non-terminal state. Completed and
// Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status of a route without a confirmed plan.
	Draft

	// Planned indicates the waypoint sequence has been laid out.
	Planned

	// Assigned indicates a driver and vehicle have been bound to the route.
	Assigned

	// InProgress indicates the route is being driven.
	InProgress

	// Paused indicates the route execution is temporarily suspended.
	Paused

	// Completed indicates the route finished. Terminal.
	Completed

	// Cancelled indicates the route was abandoned. Terminal.
	Cancelled
)

// getStatusStrings returns the string representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Draft:      "draft",
		Planned:    "planned",
		Assigned:   "assigned",
		InProgress: "in-progress",
		Paused:     "paused",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the legal edges for every route status.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:      {Planned, Assigned, Cancelled},
		Planned:    {Assigned, Cancelled},
		Assigned:   {InProgress, Cancelled},
		InProgress: {Completed, Paused, Cancelled},
		Paused:     {InProgress, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// Validate checks if the Status value is a defined lifecycle state.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("route status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("route status")
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
	return Unknown, errs.NewValueIsInvalidError("route status")
}

// IsTerminal reports whether no further transitions are legal from the status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
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
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError("route", s.String(), next.String())
	}
	return next, nil
}
