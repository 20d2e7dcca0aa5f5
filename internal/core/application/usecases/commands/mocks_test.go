package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the command handler tests. One mock per port,
// one unit of work mock per factory interface.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*order.Order, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Book(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryRepository) GetAllActive(ctx context.Context) ([]*inventory.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Item), args.Error(1)
}

// txManagerMock provides the shared Begin/Commit/Rollback expectations.
type txManagerMock struct{ mock.Mock }

func (m *txManagerMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txManagerMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txManagerMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ txManagerMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRouteUoW struct{ txManagerMock }

func (m *MockRouteUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockVehicleUoW struct{ txManagerMock }

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockInventoryUoW struct{ txManagerMock }

func (m *MockInventoryUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockTripUoW struct{ txManagerMock }

func (m *MockTripUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockTripUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockTripUoWFactory struct{ mock.Mock }

func (m *MockTripUoWFactory) Create() commands.TripUoW {
	args := m.Called()
	return args.Get(0).(commands.TripUoW)
}

type MockUoW struct{ txManagerMock }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// MockEventPublisher records published events for assertion.
type MockEventPublisher struct {
	events []ports.Event
}

func (m *MockEventPublisher) Publish(_ context.Context, event ports.Event) {
	m.events = append(m.events, event)
}

func (m *MockEventPublisher) Events() []ports.Event {
	return m.events
}
