package vehicle

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrPlateIsRequired is returned when attempting to create a vehicle without a plate number.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
)

// ErrCapacityIsNotConstructed is returned when using a Capacity that was not
// created via NewCapacity.
var ErrCapacityIsNotConstructed = errs.NewValueIsRequiredError(
	"capacity must be created via NewCapacity constructor")

// Capacity is the load limit of a vehicle: maximum cargo weight in kilograms
// and maximum cargo volume in cubic meters. Immutable value object.
type Capacity struct {
	weight float64
	volume float64
	guard  guard.ConstructorGuard
}

// NewCapacity creates a Capacity after validating that both limits are positive.
func NewCapacity(weight, volume float64) (Capacity, error) {
	if weight <= 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("capacity weight",
			fmt.Errorf("%f is not greater than 0", weight))
	}
	if volume <= 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("capacity volume",
			fmt.Errorf("%f is not greater than 0", volume))
	}

	return Capacity{
		weight: weight,
		volume: volume,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Capacity was properly constructed via NewCapacity.
func (c Capacity) Validate() error {
	return c.guard.Validate(ErrCapacityIsNotConstructed)
}

// Weight returns the maximum cargo weight in kilograms.
func (c Capacity) Weight() float64 {
	return c.weight
}

// Volume returns the maximum cargo volume in cubic meters.
func (c Capacity) Volume() float64 {
	return c.volume
}

// Metrics aggregates a vehicle's lifetime trip statistics. Route completion
// folds each finished route's figures into these totals.
type Metrics struct {
	Trips      int
	DistanceKm float64
	FuelCost   float64
}

// Vehicle represents a delivery vehicle referenced by the fulfillment core.
// The wider vehicle record (registration, documents, telemetry) is owned
// elsewhere; this aggregate carries exactly the fields the core is authorized
// to read and mutate: capacity, operational status, the assigned driver and
// aggregate trip metrics.
//
// Business rules:
//   - Only an Available vehicle can be assigned; the persistence layer enforces
//     this as a compare-and-swap so concurrent assignments cannot both win
//   - The assigned driver is set and cleared together with the status
//   - Cargo exceeding capacity is rejected before any state changes
type Vehicle struct {
	id             kernel.UUID
	plate          string
	capacity       Capacity
	status         Status
	assignedDriver *kernel.UUID
	metrics        Metrics

	version int
	guard   guard.ConstructorGuard
}

// NewVehicle creates an Available vehicle with the given identity and capacity.
func NewVehicle(id kernel.UUID, plate string, capacity Capacity) (*Vehicle, error) {
	v := &Vehicle{
		status:  Available,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage.
func RestoreVehicle(
	id kernel.UUID,
	plate string,
	capacity Capacity,
	status Status,
	assignedDriver *kernel.UUID,
	metrics Metrics,
	version int,
) (*Vehicle, error) {
	v := &Vehicle{
		status:  status,
		metrics: metrics,
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlate(plate),
		v.setCapacity(capacity),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if assignedDriver != nil {
		if err := assignedDriver.Validate(); err != nil {
			return nil, err
		}
	}
	v.assignedDriver = assignedDriver

	return v, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Plate returns the vehicle's plate number.
func (v *Vehicle) Plate() string {
	return v.plate
}

// Capacity returns the vehicle's load limits.
func (v *Vehicle) Capacity() Capacity {
	return v.capacity
}

// Status returns the current operational status.
func (v *Vehicle) Status() Status {
	return v.status
}

// AssignedDriver returns the assigned driver's identifier, nil when free.
func (v *Vehicle) AssignedDriver() *kernel.UUID {
	return v.assignedDriver
}

// Metrics returns the vehicle's lifetime trip statistics.
func (v *Vehicle) Metrics() Metrics {
	return v.metrics
}

// Version returns the optimistic-concurrency version of the aggregate.
func (v *Vehicle) Version() int {
	return v.version
}

// CanCarry checks the cargo requirement against the vehicle's capacity.
// Returns CapacityExceededError naming the violated dimension.
func (v *Vehicle) CanCarry(weight, volume float64) error {
	if weight > v.capacity.weight {
		return errs.NewCapacityExceededError("weight", weight, v.capacity.weight)
	}
	if volume > v.capacity.volume {
		return errs.NewCapacityExceededError("volume", volume, v.capacity.volume)
	}
	return nil
}

// Assign books the vehicle for an order and records the driver.
// Fails with VehicleUnavailableError unless the vehicle is Available.
// The persistence layer re-checks the prior status on write, making the
// observable behavior a single compare-and-swap.
func (v *Vehicle) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !v.status.IsBookable() {
		return errs.NewVehicleUnavailableError(v.id.String(), v.status.String())
	}

	v.status = Assigned
	v.assignedDriver = &driverID
	return nil
}

// Release returns the vehicle to Available and clears the assigned driver.
// Releasing an already available vehicle is a no-op, keeping release idempotent.
func (v *Vehicle) Release() {
	v.status = Available
	v.assignedDriver = nil
}

// StartTrip moves the vehicle from Assigned to InTransit when its route starts.
func (v *Vehicle) StartTrip() error {
	if v.status != Assigned && v.status != Loading {
		return errs.NewInvalidTransitionError("vehicle", v.status.String(), InTransit.String())
	}
	v.status = InTransit
	return nil
}

// CompleteTrip returns the vehicle to Available and folds the finished route's
// figures into the vehicle's aggregate metrics.
func (v *Vehicle) CompleteTrip(distanceKm, fuelCost float64) error {
	if v.status != InTransit && v.status != Unloading {
		return errs.NewInvalidTransitionError("vehicle", v.status.String(), Available.String())
	}

	v.metrics.Trips++
	v.metrics.DistanceKm += distanceKm
	v.metrics.FuelCost += fuelCost
	v.status = Available
	v.assignedDriver = nil
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	v.plate = plate
	return nil
}

func (v *Vehicle) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	v.capacity = capacity
	return nil
}
