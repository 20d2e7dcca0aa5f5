package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	startedAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	driverID := kernel.NewUUID()
	v := newTestVehicle(t)
	require.NoError(t, v.Assign(driverID))
	rt := newTestRoute(t)
	require.NoError(t, rt.AssignTransport(driverID, v.ID()))

	cmd, err := commands.NewStartRouteCommand(rt.ID(), startedAt)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockTripUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, v.ID()).Return(v, nil).Once(),
		vehicleRepo.On("Update", mock.Anything, v).Return(nil).Once(),
		routeRepo.On("Update", mock.Anything, rt).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewStartRouteCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, route.InProgress, rt.Status())
	assert.Equal(t, vehicle.InTransit, v.Status())
	require.NotNil(t, rt.ActualStart())
	assert.Equal(t, startedAt, *rt.ActualStart())
	routeRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "route.started", events[0].Kind)
}

func TestStartRouteCommandHandler_Handle_UnassignedRoute(t *testing.T) {
	ctx := t.Context()
	rt := newTestRoute(t) // still planned, no transport bound

	cmd, err := commands.NewStartRouteCommand(rt.ID(), time.Now().UTC())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockTripUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartRouteCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, route.Planned, rt.Status())
	uow.AssertNotCalled(t, "VehicleRepository")
	routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStartRouteCommandHandler_Handle_VehicleUpdateError(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	v := newTestVehicle(t)
	require.NoError(t, v.Assign(driverID))
	rt := newTestRoute(t)
	require.NoError(t, rt.AssignTransport(driverID, v.ID()))

	cmd, err := commands.NewStartRouteCommand(rt.ID(), time.Now().UTC())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockTripUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, v.ID()).Return(v, nil).Once(),
		vehicleRepo.On("Update", mock.Anything, v).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTripUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartRouteCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	routeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStartRouteCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.StartRouteCommand{} // not constructed properly

	factory := new(MockTripUoWFactory)
	h := commands.NewStartRouteCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
