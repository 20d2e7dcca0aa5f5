package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/pkg/errs"
)

// AssignmentService is a domain service responsible for binding an order,
// a vehicle and a route into a single consistent assignment.
//
// Key responsibilities:
//   - Validating that the order is in an assignable status
//   - Checking vehicle capacity against the order's cargo
//   - Booking the vehicle and binding all three aggregates
//
// Business rules:
//   - Only pending or confirmed orders can be assigned
//   - The vehicle must be available and able to carry the cargo
//   - Either all three aggregates are updated or none are; callers persist
//     them inside one transaction to make the binding atomic
type AssignmentService struct{}

// NewAssignmentService creates a new AssignmentService instance.
func NewAssignmentService() AssignmentService {
	return AssignmentService{}
}

// Assign books the vehicle for the driver and binds the order, and the route
// when one is supplied, to it.
//
// Returns errs.InvalidTransitionError when the order is past the assignable
// statuses, errs.CapacityExceededError when the cargo does not fit the
// vehicle, and errs.VehicleUnavailableError when the vehicle is already
// booked. On success the order is Assigned and the vehicle is booked for the
// driver. Callers persist every touched aggregate in one transaction; the
// vehicle repository rejects the write when another assignment won the race.
func (s AssignmentService) Assign(
	ord *order.Order,
	v *vehicle.Vehicle,
	rt *route.Route,
	driverID kernel.UUID,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	if ord.Status() != order.Pending && ord.Status() != order.Confirmed {
		return errs.NewInvalidTransitionError("order", ord.Status().String(), order.Assigned.String())
	}

	cargo := ord.Cargo()
	if err := v.CanCarry(cargo.TotalWeight(), cargo.TotalVolume()); err != nil {
		return err
	}

	if err := v.Assign(driverID); err != nil {
		return err
	}

	var routeID *kernel.UUID
	if rt != nil {
		if err := rt.Validate(); err != nil {
			return err
		}
		if err := rt.AssignTransport(driverID, v.ID()); err != nil {
			return err
		}
		routeID = ptr(rt.ID())
	}

	return ord.AssignTransport(driverID, v.ID(), routeID)
}

func ptr[T any](v T) *T {
	return &v
}
