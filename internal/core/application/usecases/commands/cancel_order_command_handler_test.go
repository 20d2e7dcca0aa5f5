package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "customer changed mind", "customer")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	// A pending order never touched the vehicle repository.
	uow.AssertNotCalled(t, "VehicleRepository")
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "order.cancelled", events[0].Kind)
	assert.InDelta(t, 250.0, events[0].Payload["refundAmount"].(float64), 0.0001)
}

func TestCancelOrderCommandHandler_Handle_ReleasesBoundVehicle(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	driverID := kernel.NewUUID()
	boundVehicle := newTestVehicle(t)
	require.NoError(t, boundVehicle.Assign(driverID))
	require.NoError(t, aggregate.AssignTransport(driverID, boundVehicle.ID(), nil))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "out of stock", "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, boundVehicle.ID()).Return(boundVehicle, nil).Once(),
		vehicleRepo.On("Update", mock.Anything, boundVehicle).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Nil(t, aggregate.VehicleID())
	assert.Equal(t, vehicle.Available, boundVehicle.Status())
	assert.Nil(t, boundVehicle.AssignedDriver())
	orderRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	events := publisher.Events()
	require.Len(t, events, 1)
	// Refunds only apply to orders cancelled while still pending.
	assert.InDelta(t, 0.0, events[0].Payload["refundAmount"].(float64), 0.0001)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t)
	require.NoError(t, aggregate.Cancel("first cancellation", "ops"))

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), "second cancellation", "ops")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewCancelOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.Events())
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
