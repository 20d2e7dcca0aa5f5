package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidLocation(t *testing.T, lat, lng float64) kernel.GeoLocation {
	t.Helper()
	location, err := kernel.NewGeoLocation(lat, lng, "")
	require.NoError(t, err)
	return location
}

func createValidWindow(t *testing.T, startHour, endHour int) kernel.TimeWindow {
	t.Helper()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	return window
}

func createOrderWithCargo(t *testing.T, weight, volume float64) *order.Order {
	t.Helper()
	contact, err := order.NewContact("Alice", "+1-555-0100")
	require.NoError(t, err)
	cargo, err := order.NewCargo(weight, volume, 1000)
	require.NoError(t, err)
	pricing, err := order.NewPricing(99, "USD")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		createValidLocation(t, 40.7128, -74.0060),
		createValidLocation(t, 42.3601, -71.0589),
		createValidWindow(t, 9, 12),
		createValidWindow(t, 14, 18),
		contact,
		cargo,
		pricing,
	)
	require.NoError(t, err)
	return o
}

func createValidVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	capacity, err := vehicle.NewCapacity(1000, 10)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "A123BC", capacity)
	require.NoError(t, err)
	return v
}

func createValidRoute(t *testing.T) *route.Route {
	t.Helper()
	wp, err := route.NewWaypoint(kernel.NewUUID(), 1, createValidLocation(t, 1, 1), route.KindPickup, nil)
	require.NoError(t, err)
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), createValidWindow(t, 8, 16), []*route.Waypoint{wp})
	require.NoError(t, err)
	return r
}

func TestAssignmentService_Assign(t *testing.T) {
	service := services.NewAssignmentService()

	t.Run("should bind order, vehicle and route together", func(t *testing.T) {
		ord := createOrderWithCargo(t, 500, 5)
		v := createValidVehicle(t)
		rt := createValidRoute(t)
		driverID := kernel.NewUUID()

		err := service.Assign(ord, v, rt, driverID)

		require.NoError(t, err)

		assert.Equal(t, order.Assigned, ord.Status())
		require.NotNil(t, ord.DriverID())
		assert.True(t, ord.DriverID().IsEqual(driverID))
		require.NotNil(t, ord.VehicleID())
		assert.True(t, ord.VehicleID().IsEqual(v.ID()))
		require.NotNil(t, ord.RouteID())
		assert.True(t, ord.RouteID().IsEqual(rt.ID()))

		assert.Equal(t, vehicle.Assigned, v.Status())
		require.NotNil(t, v.AssignedDriver())
		assert.True(t, v.AssignedDriver().IsEqual(driverID))

		assert.Equal(t, route.Assigned, rt.Status())
		require.NotNil(t, rt.DriverID())
		assert.True(t, rt.DriverID().IsEqual(driverID))
		require.NotNil(t, rt.VehicleID())
		assert.True(t, rt.VehicleID().IsEqual(v.ID()))
	})

	t.Run("should assign without a route", func(t *testing.T) {
		ord := createOrderWithCargo(t, 500, 5)
		v := createValidVehicle(t)

		err := service.Assign(ord, v, nil, kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, ord.Status())
		assert.Nil(t, ord.RouteID())
	})

	t.Run("should assign a confirmed order", func(t *testing.T) {
		ord := createOrderWithCargo(t, 500, 5)
		require.NoError(t, ord.ChangeStatus(order.Confirmed, "ops", "", nil))
		v := createValidVehicle(t)

		err := service.Assign(ord, v, nil, kernel.NewUUID())

		require.NoError(t, err)
	})

	t.Run("should reject an order past the assignable statuses", func(t *testing.T) {
		ord := createOrderWithCargo(t, 500, 5)
		require.NoError(t, ord.ChangeStatus(order.Confirmed, "ops", "", nil))
		require.NoError(t, ord.ChangeStatus(order.Processing, "warehouse", "", nil))
		v := createValidVehicle(t)

		err := service.Assign(ord, v, nil, kernel.NewUUID())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid state transition")
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("should reject cargo exceeding the vehicle capacity", func(t *testing.T) {
		ord := createOrderWithCargo(t, 1500, 5)
		v := createValidVehicle(t)

		err := service.Assign(ord, v, nil, kernel.NewUUID())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "capacity exceeded")
		assert.Equal(t, order.Pending, ord.Status())
		assert.Equal(t, vehicle.Available, v.Status())
	})

	t.Run("should reject a vehicle that is already booked", func(t *testing.T) {
		ord := createOrderWithCargo(t, 500, 5)
		v := createValidVehicle(t)
		require.NoError(t, v.Assign(kernel.NewUUID()))

		err := service.Assign(ord, v, nil, kernel.NewUUID())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "vehicle unavailable")
		assert.Equal(t, order.Pending, ord.Status())
	})

	t.Run("should leave the order untouched when the route cannot be assigned", func(t *testing.T) {
		ord := createOrderWithCargo(t, 500, 5)
		v := createValidVehicle(t)
		rt := createValidRoute(t)
		require.NoError(t, rt.Cancel())

		err := service.Assign(ord, v, rt, kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, order.Pending, ord.Status())
		assert.Nil(t, ord.VehicleID())
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		v := createValidVehicle(t)

		err := service.Assign(nil, v, nil, kernel.NewUUID())
		require.Error(t, err)

		ord := createOrderWithCargo(t, 500, 5)
		err = service.Assign(ord, nil, nil, kernel.NewUUID())
		require.Error(t, err)

		var invalidID kernel.UUID
		err = service.Assign(ord, v, nil, invalidID)
		require.Error(t, err)
	})
}
