package route

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// averageSpeedKmh converts optimized distance into an estimated duration.
	averageSpeedKmh = 50.0
	// fuelCostPerKm converts optimized distance into an estimated fuel cost.
	fuelCostPerKm = 0.12
	// maxPathSamples caps the embedded tracking path; the oldest samples are
	// dropped on append so a long-running route cannot grow its record unboundedly.
	maxPathSamples = 500
)

var (
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	// ErrWaypointNotFound is returned when a requested waypoint does not belong to the route.
	ErrWaypointNotFound = errors.New("waypoint not found")
)

// TrackSample is a single timestamped entry of a route's tracking path.
type TrackSample struct {
	Location kernel.GeoLocation
	At       time.Time
}

// Metrics holds a route's derived figures. Estimated values are recomputed by
// Optimize; actual values are computed once at completion.
type Metrics struct {
	DistanceKm        float64
	EstimatedDuration time.Duration
	EstimatedFuelCost float64
	ActualDuration    time.Duration
	Delay             time.Duration
}

// Route represents a planned sequence of waypoints assigned to a driver and
// vehicle. It is the aggregate root owning waypoint progression, the tracking
// path and derived metrics.
//
// Route enforces these invariants:
//   - Waypoints always form a contiguous 1-based sequence
//   - Waypoints cannot be added while the route is in progress
//   - Actual duration and delay are computed only at completion
//   - The tracking path is bounded by a fixed retention cap
type Route struct {
	id        kernel.UUID
	createdBy kernel.UUID
	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	status    Status
	schedule  kernel.TimeWindow
	waypoints []*Waypoint

	path            []TrackSample
	currentLocation *kernel.GeoLocation

	actualStart     *time.Time
	actualEnd       *time.Time
	metrics         Metrics
	completionNotes string
	issues          []string

	version int
	guard   guard.ConstructorGuard
}

// NewRoute creates a Route with the given schedule and optional initial
// waypoints. Supplied waypoints must form a contiguous 1-based sequence.
// A route with waypoints starts in Planned status, an empty one in Draft.
func NewRoute(
	id kernel.UUID,
	createdBy kernel.UUID,
	schedule kernel.TimeWindow,
	waypoints []*Waypoint,
) (*Route, error) {
	r := &Route{
		status:  Draft,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCreatedBy(createdBy),
		r.setSchedule(schedule),
		r.setWaypoints(waypoints),
	); err != nil {
		return nil, err
	}

	if len(r.waypoints) > 0 {
		r.status = Planned
	}

	return r, nil
}

// RouteSnapshot carries the persisted state of a route for restoration.
type RouteSnapshot struct {
	ID              kernel.UUID
	CreatedBy       kernel.UUID
	DriverID        *kernel.UUID
	VehicleID       *kernel.UUID
	Status          Status
	Schedule        kernel.TimeWindow
	Waypoints       []*Waypoint
	Path            []TrackSample
	CurrentLocation *kernel.GeoLocation
	ActualStart     *time.Time
	ActualEnd       *time.Time
	Metrics         Metrics
	CompletionNotes string
	Issues          []string
	Version         int
}

// RestoreRoute reconstructs a Route aggregate from persistent storage.
func RestoreRoute(snapshot RouteSnapshot) (*Route, error) {
	r := &Route{
		status:  snapshot.Status,
		metrics: snapshot.Metrics,
		version: snapshot.Version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(snapshot.ID),
		r.setCreatedBy(snapshot.CreatedBy),
		r.setSchedule(snapshot.Schedule),
		r.setWaypoints(snapshot.Waypoints),
		snapshot.Status.Validate(),
	); err != nil {
		return nil, err
	}

	r.driverID = snapshot.DriverID
	r.vehicleID = snapshot.VehicleID
	r.path = snapshot.Path
	r.currentLocation = snapshot.CurrentLocation
	r.actualStart = snapshot.ActualStart
	r.actualEnd = snapshot.ActualEnd
	r.completionNotes = snapshot.CompletionNotes
	r.issues = snapshot.Issues

	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// CreatedBy returns the identifier of the user who created the route.
func (r *Route) CreatedBy() kernel.UUID {
	return r.createdBy
}

// DriverID returns the assigned driver's identifier, nil when unassigned.
func (r *Route) DriverID() *kernel.UUID {
	return r.driverID
}

// VehicleID returns the assigned vehicle's identifier, nil when unassigned.
func (r *Route) VehicleID() *kernel.UUID {
	return r.vehicleID
}

// Status returns the current lifecycle status.
func (r *Route) Status() Status {
	return r.status
}

// Schedule returns the planned execution window.
func (r *Route) Schedule() kernel.TimeWindow {
	return r.schedule
}

// Waypoints returns the route's stops in their current order.
func (r *Route) Waypoints() []*Waypoint {
	return r.waypoints
}

// Path returns the tracking path in recording order, bounded by the
// retention cap.
func (r *Route) Path() []TrackSample {
	return r.path
}

// CurrentLocation returns the latest recorded position, nil before tracking starts.
func (r *Route) CurrentLocation() *kernel.GeoLocation {
	return r.currentLocation
}

// ActualStart returns when route execution started, nil until Start.
func (r *Route) ActualStart() *time.Time {
	return r.actualStart
}

// ActualEnd returns when route execution finished, nil until Complete.
func (r *Route) ActualEnd() *time.Time {
	return r.actualEnd
}

// Metrics returns the route's derived figures.
func (r *Route) Metrics() Metrics {
	return r.metrics
}

// CompletionNotes returns the notes recorded at completion.
func (r *Route) CompletionNotes() string {
	return r.completionNotes
}

// Issues returns the issues reported at completion.
func (r *Route) Issues() []string {
	return r.issues
}

// Version returns the optimistic-concurrency version of the aggregate.
func (r *Route) Version() int {
	return r.version
}

// AssignTransport binds a driver and vehicle to the route and transitions it
// to Assigned.
func (r *Route) AssignTransport(driverID, vehicleID kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	next, err := r.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	r.status = next
	r.driverID = &driverID
	r.vehicleID = &vehicleID
	return nil
}

// AddWaypoint appends a new pending waypoint at the end of the sequence.
// Fails with InvalidTransitionError while the route is in progress; the
// sequence of a moving vehicle is not editable.
func (r *Route) AddWaypoint(
	id kernel.UUID,
	location kernel.GeoLocation,
	kind Kind,
	plannedArrival *time.Time,
) (*Waypoint, error) {
	if r.status == InProgress {
		return nil, errs.NewInvalidTransitionError("route", r.status.String(), "waypoint added")
	}
	if r.status.IsTerminal() {
		return nil, errs.NewInvalidTransitionError("route", r.status.String(), "waypoint added")
	}

	wp, err := NewWaypoint(id, len(r.waypoints)+1, location, kind, plannedArrival)
	if err != nil {
		return nil, err
	}

	r.waypoints = append(r.waypoints, wp)
	if r.status == Draft {
		r.status = Planned
	}
	return wp, nil
}

// UpdateWaypointStatus advances the sub-state of the identified waypoint.
// Arrivals record the actual arrival time, completions the actual departure.
func (r *Route) UpdateWaypointStatus(waypointID kernel.UUID, newStatus WaypointStatus, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	wp := r.findWaypoint(waypointID)
	if wp == nil {
		return ErrWaypointNotFound
	}

	switch newStatus {
	case WaypointArrived:
		return wp.MarkArrived(at)
	case WaypointCompleted:
		return wp.MarkCompleted(at)
	case WaypointSkipped:
		return wp.MarkSkipped()
	case WaypointPending, WaypointUnknown:
		return errs.NewInvalidTransitionError("waypoint", wp.Status().String(), newStatus.String())
	default:
		return errs.NewInvalidTransitionError("waypoint", wp.Status().String(), newStatus.String())
	}
}

// Start begins route execution. Requires Assigned status; records the actual
// start time and moves the route to InProgress.
func (r *Route) Start(at time.Time) error {
	if r.status != Assigned {
		return errs.NewInvalidTransitionError("route", r.status.String(), InProgress.String())
	}

	r.status = InProgress
	r.actualStart = &at
	return nil
}

// Pause suspends an in-progress route.
func (r *Route) Pause() error {
	next, err := r.status.TransitionTo(Paused)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Resume continues a paused route.
func (r *Route) Resume() error {
	if r.status != Paused {
		return errs.NewInvalidTransitionError("route", r.status.String(), InProgress.String())
	}
	r.status = InProgress
	return nil
}

// Complete finishes route execution. Requires InProgress status.
//
// The actual duration is the span from the recorded start to completedAt, and
// the delay is the amount by which it exceeds the planned schedule duration,
// floored at zero. Notes and reported issues are stored with the route.
func (r *Route) Complete(completedAt time.Time, notes string, issues []string) error {
	if r.status != InProgress {
		return errs.NewInvalidTransitionError("route", r.status.String(), Completed.String())
	}
	if r.actualStart == nil {
		return errs.NewValueIsRequiredError("actual start time")
	}
	if completedAt.Before(*r.actualStart) {
		return errs.NewValueIsInvalidErrorWithCause("completion time",
			fmt.Errorf("%s is before route start %s", completedAt, r.actualStart))
	}

	actualDuration := completedAt.Sub(*r.actualStart)
	delay := actualDuration - r.schedule.Duration()
	if delay < 0 {
		delay = 0
	}

	r.status = Completed
	r.actualEnd = &completedAt
	r.metrics.ActualDuration = actualDuration
	r.metrics.Delay = delay
	r.completionNotes = notes
	r.issues = issues
	return nil
}

// Cancel abandons the route.
func (r *Route) Cancel() error {
	next, err := r.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Optimize reorders the waypoints and recomputes the estimated metrics.
//
// The reordering is a stable partition by kind: all pickups first, then all
// deliveries, then everything else, each group preserving its original
// relative order. The 1-based order index is reassigned afterwards. Applying
// Optimize twice to the same waypoint set yields an identical result.
//
// The cumulative distance is the sum of great-circle distances between
// consecutive waypoints; the estimated duration and fuel cost derive from it
// at the configured average speed and fuel rate.
func (r *Route) Optimize() error {
	if r.status == InProgress || r.status.IsTerminal() {
		return errs.NewInvalidTransitionError("route", r.status.String(), "optimized")
	}

	pickups := make([]*Waypoint, 0, len(r.waypoints))
	deliveries := make([]*Waypoint, 0, len(r.waypoints))
	others := make([]*Waypoint, 0, len(r.waypoints))

	for _, wp := range r.waypoints {
		switch wp.Kind() {
		case KindPickup:
			pickups = append(pickups, wp)
		case KindDelivery:
			deliveries = append(deliveries, wp)
		case KindWaypoint, KindRestStop, KindFuelStop, KindUnknown:
			others = append(others, wp)
		default:
			others = append(others, wp)
		}
	}

	reordered := make([]*Waypoint, 0, len(r.waypoints))
	reordered = append(reordered, pickups...)
	reordered = append(reordered, deliveries...)
	reordered = append(reordered, others...)

	for i, wp := range reordered {
		wp.reorder(i + 1)
	}
	r.waypoints = reordered

	distance, err := r.cumulativeDistance()
	if err != nil {
		return err
	}

	r.metrics.DistanceKm = distance
	r.metrics.EstimatedDuration = time.Duration(distance / averageSpeedKmh * float64(time.Hour))
	r.metrics.EstimatedFuelCost = distance * fuelCostPerKm
	return nil
}

// RecordLocation appends a timestamped sample to the tracking path and updates
// the current-location snapshot. When the path exceeds the retention cap the
// oldest samples are dropped.
func (r *Route) RecordLocation(location kernel.GeoLocation, at time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}

	r.path = append(r.path, TrackSample{Location: location, At: at})
	if len(r.path) > maxPathSamples {
		r.path = r.path[len(r.path)-maxPathSamples:]
	}
	r.currentLocation = &location
	return nil
}

// cumulativeDistance sums the great-circle distances between consecutive waypoints.
func (r *Route) cumulativeDistance() (float64, error) {
	total := 0.0
	for i := 1; i < len(r.waypoints); i++ {
		d, err := r.waypoints[i-1].Location().DistanceTo(r.waypoints[i].Location())
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// findWaypoint returns the waypoint with the given ID, nil when absent.
func (r *Route) findWaypoint(id kernel.UUID) *Waypoint {
	for _, wp := range r.waypoints {
		if wp.ID().IsEqual(id) {
			return wp
		}
	}
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.createdBy = id
	return nil
}

func (r *Route) setSchedule(schedule kernel.TimeWindow) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	r.schedule = schedule
	return nil
}

// setWaypoints validates that the supplied waypoints form a contiguous
// 1-based sequence and installs them.
func (r *Route) setWaypoints(waypoints []*Waypoint) error {
	for i, wp := range waypoints {
		if err := wp.Validate(); err != nil {
			return err
		}
		if wp.Order() != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("waypoint sequence",
				fmt.Errorf("position %d holds order index %d", i+1, wp.Order()))
		}
	}
	r.waypoints = waypoints
	return nil
}
