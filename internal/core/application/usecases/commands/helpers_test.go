package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/require"
)

// Shared aggregate builders for the handler tests.

func newTestLocation(t *testing.T, lat, lng float64) kernel.GeoLocation {
	t.Helper()
	location, err := kernel.NewGeoLocation(lat, lng, "")
	require.NoError(t, err)
	return location
}

func newTestWindow(t *testing.T, startHour, endHour int) kernel.TimeWindow {
	t.Helper()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	window, err := kernel.NewTimeWindow(day.Add(time.Duration(startHour)*time.Hour), day.Add(time.Duration(endHour)*time.Hour))
	require.NoError(t, err)
	return window
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	contact, err := order.NewContact("Alice", "+1-555-0100")
	require.NoError(t, err)
	cargo, err := order.NewCargo(120, 1.5, 4000)
	require.NoError(t, err)
	pricing, err := order.NewPricing(250, "USD")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		newTestLocation(t, 40.7128, -74.0060),
		newTestLocation(t, 42.3601, -71.0589),
		newTestWindow(t, 9, 12),
		newTestWindow(t, 14, 18),
		contact,
		cargo,
		pricing,
	)
	require.NoError(t, err)
	return o
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	capacity, err := vehicle.NewCapacity(1000, 10)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "A123BC", capacity)
	require.NoError(t, err)
	return v
}

func newTestRoute(t *testing.T) *route.Route {
	t.Helper()
	wp, err := route.NewWaypoint(kernel.NewUUID(), 1, newTestLocation(t, 1, 1), route.KindPickup, nil)
	require.NoError(t, err)
	r, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), newTestWindow(t, 8, 16), []*route.Waypoint{wp})
	require.NoError(t, err)
	return r
}

func newTestItem(t *testing.T, stocked int) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(
		kernel.NewUUID(),
		"SKU-1001",
		"Paper towels",
		inventory.Thresholds{ReorderPoint: 10, Maximum: 100},
		nil,
	)
	require.NoError(t, err)
	if stocked > 0 {
		require.NoError(t, item.AddMovement(inventory.MovementIn, stocked, "opening stock", "warehouse", ""))
	}
	return item
}
