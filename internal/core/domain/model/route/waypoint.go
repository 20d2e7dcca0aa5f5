package route

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrWaypointIsNotConstructed is returned when using an improperly initialized Waypoint.
var ErrWaypointIsNotConstructed = errors.New("Waypoint must be created via NewWaypoint constructor")

// Kind is the closed set of waypoint purposes. Modeling this as a tagged
// variant, not an open string, prevents unsupported stop types from being
// persisted.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindPickup is a cargo collection stop.
	KindPickup

	// KindDelivery is a cargo handover stop.
	KindDelivery

	// KindWaypoint is an intermediate routing point with no cargo action.
	KindWaypoint

	// KindRestStop is a mandated driver rest break.
	KindRestStop

	// KindFuelStop is a refueling break.
	KindFuelStop
)

// getKindStrings returns the string representation for every Kind value.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:  "unknown",
		KindPickup:   "pickup",
		KindDelivery: "delivery",
		KindWaypoint: "waypoint",
		KindRestStop: "rest-stop",
		KindFuelStop: "fuel-stop",
	}
}

// Validate checks if the Kind value is a defined waypoint purpose.
func (k Kind) Validate() error {
	if k == KindUnknown {
		return errs.NewValueIsInvalidError("waypoint kind")
	}
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidError("waypoint kind")
	}
	return nil
}

// String returns the wire name of the kind. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// KindFromString resolves a wire name back to a Kind value.
func KindFromString(name string) (Kind, error) {
	for k, str := range getKindStrings() {
		if str == name && k != KindUnknown {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidError("waypoint kind")
}

// WaypointStatus is the sub-state of a single stop on a route.
//
// Transitions: pending -> arrived -> completed, pending -> completed
// (drive-by completion), pending -> skipped. Completed and skipped are final.
type WaypointStatus int

const (
	// WaypointUnknown represents an invalid or undefined waypoint status.
	WaypointUnknown WaypointStatus = iota

	// WaypointPending means the stop has not been reached yet.
	WaypointPending

	// WaypointArrived means the vehicle is at the stop.
	WaypointArrived

	// WaypointCompleted means the stop's action was carried out.
	WaypointCompleted

	// WaypointSkipped means the stop was bypassed.
	WaypointSkipped
)

// getWaypointStatusStrings returns the string representation for every WaypointStatus value.
func getWaypointStatusStrings() map[WaypointStatus]string {
	return map[WaypointStatus]string{
		WaypointUnknown:   "unknown",
		WaypointPending:   "pending",
		WaypointArrived:   "arrived",
		WaypointCompleted: "completed",
		WaypointSkipped:   "skipped",
	}
}

// Validate checks if the WaypointStatus value is a defined sub-state.
func (s WaypointStatus) Validate() error {
	if s == WaypointUnknown {
		return errs.NewValueIsInvalidError("waypoint status")
	}
	if _, ok := getWaypointStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("waypoint status")
	}
	return nil
}

// String returns the wire name of the waypoint status. Implements fmt.Stringer.
func (s WaypointStatus) String() string {
	if str, ok := getWaypointStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// WaypointStatusFromString resolves a wire name back to a WaypointStatus value.
func WaypointStatusFromString(name string) (WaypointStatus, error) {
	for s, str := range getWaypointStatusStrings() {
		if str == name && s != WaypointUnknown {
			return s, nil
		}
	}
	return WaypointUnknown, errs.NewValueIsInvalidError("waypoint status")
}

// Waypoint is a single stop on a route with its own arrival/completion
// sub-state. Waypoints carry a 1-based contiguous order index maintained by
// the owning Route aggregate.
type Waypoint struct {
	id              kernel.UUID
	order           int
	location        kernel.GeoLocation
	kind            Kind
	status          WaypointStatus
	plannedArrival  *time.Time
	actualArrival   *time.Time
	actualDeparture *time.Time
	guard           guard.ConstructorGuard
}

// NewWaypoint creates a pending Waypoint at the given 1-based position.
func NewWaypoint(
	id kernel.UUID,
	order int,
	location kernel.GeoLocation,
	kind Kind,
	plannedArrival *time.Time,
) (*Waypoint, error) {
	wp := &Waypoint{
		status: WaypointPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wp.setID(id),
		wp.setOrder(order),
		wp.setLocation(location),
		wp.setKind(kind),
	); err != nil {
		return nil, err
	}

	wp.plannedArrival = plannedArrival
	return wp, nil
}

// RestoreWaypoint reconstructs a Waypoint from persistent storage, including
// its sub-state and recorded arrival/departure times.
func RestoreWaypoint(
	id kernel.UUID,
	order int,
	location kernel.GeoLocation,
	kind Kind,
	status WaypointStatus,
	plannedArrival, actualArrival, actualDeparture *time.Time,
) (*Waypoint, error) {
	wp := &Waypoint{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wp.setID(id),
		wp.setOrder(order),
		wp.setLocation(location),
		wp.setKind(kind),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	wp.plannedArrival = plannedArrival
	wp.actualArrival = actualArrival
	wp.actualDeparture = actualDeparture
	return wp, nil
}

// Validate ensures the Waypoint instance was properly constructed.
func (w *Waypoint) Validate() error {
	if w == nil {
		return ErrWaypointIsNotConstructed
	}
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

// ID returns the waypoint's unique identifier.
func (w *Waypoint) ID() kernel.UUID {
	return w.id
}

// Order returns the 1-based position of the waypoint in its route.
func (w *Waypoint) Order() int {
	return w.order
}

// Location returns the waypoint's geographic location.
func (w *Waypoint) Location() kernel.GeoLocation {
	return w.location
}

// Kind returns the waypoint's purpose.
func (w *Waypoint) Kind() Kind {
	return w.kind
}

// Status returns the waypoint's sub-state.
func (w *Waypoint) Status() WaypointStatus {
	return w.status
}

// PlannedArrival returns the scheduled arrival time, nil when unscheduled.
func (w *Waypoint) PlannedArrival() *time.Time {
	return w.plannedArrival
}

// ActualArrival returns the recorded arrival time, nil until arrival.
func (w *Waypoint) ActualArrival() *time.Time {
	return w.actualArrival
}

// ActualDeparture returns the recorded departure time, nil until completion.
func (w *Waypoint) ActualDeparture() *time.Time {
	return w.actualDeparture
}

// MarkArrived transitions the waypoint from pending to arrived and records the
// actual arrival time.
func (w *Waypoint) MarkArrived(at time.Time) error {
	if w.status != WaypointPending {
		return errs.NewInvalidTransitionError("waypoint", w.status.String(), WaypointArrived.String())
	}
	w.status = WaypointArrived
	w.actualArrival = &at
	return nil
}

// MarkCompleted transitions the waypoint from pending or arrived to completed
// and records the actual departure time.
func (w *Waypoint) MarkCompleted(at time.Time) error {
	if w.status != WaypointPending && w.status != WaypointArrived {
		return errs.NewInvalidTransitionError("waypoint", w.status.String(), WaypointCompleted.String())
	}
	w.status = WaypointCompleted
	w.actualDeparture = &at
	return nil
}

// MarkSkipped transitions the waypoint from pending to skipped.
func (w *Waypoint) MarkSkipped() error {
	if w.status != WaypointPending {
		return errs.NewInvalidTransitionError("waypoint", w.status.String(), WaypointSkipped.String())
	}
	w.status = WaypointSkipped
	return nil
}

// reorder assigns a new 1-based position. Only the owning route may call it.
func (w *Waypoint) reorder(order int) {
	w.order = order
}

func (w *Waypoint) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Waypoint) setOrder(order int) error {
	if order < 1 {
		return errs.NewValueIsInvalidErrorWithCause("waypoint order",
			fmt.Errorf("%d is not a 1-based index", order))
	}
	w.order = order
	return nil
}

func (w *Waypoint) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}

func (w *Waypoint) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	w.kind = kind
	return nil
}
