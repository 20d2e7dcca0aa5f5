package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckAlertsCommandHandler_Handle_LowStockAlert(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 8) // below the reorder point of 10
	now := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCheckAlertsCommand(item.ID(), now)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		inventoryRepo.On("Update", mock.Anything, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewCheckAlertsCommandHandler(factory, publisher)
	alerts, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, inventory.AlertLowStock, alerts[0].Kind)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "inventory.alert", events[0].Kind)
	assert.Equal(t, "SKU-1001", events[0].Payload["sku"])
	assert.Equal(t, "low-stock", events[0].Payload["kind"])
	assert.NotEmpty(t, events[0].Payload["message"])
}

func TestCheckAlertsCommandHandler_Handle_NoAlerts(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 50) // comfortably between the thresholds
	now := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCheckAlertsCommand(item.ID(), now)
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewCheckAlertsCommandHandler(factory, publisher)
	alerts, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, alerts)
	inventoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Empty(t, publisher.Events())
}

func TestCheckAlertsCommandHandler_Handle_RepeatedCheckSuppressed(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 8)
	now := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

	first := item.CheckAlerts(now)
	require.Len(t, first, 1)

	cmd, err := commands.NewCheckAlertsCommand(item.ID(), now.Add(time.Hour))
	require.NoError(t, err)

	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockInventoryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewCheckAlertsCommandHandler(factory, publisher)
	alerts, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, publisher.Events())
}

func TestCheckAlertsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckAlertsCommand{}

	factory := new(MockInventoryUoWFactory)
	h := commands.NewCheckAlertsCommandHandler(factory, nil)
	alerts, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCheckAlertsCommandIsNotConstructed)
	assert.Nil(t, alerts)
	factory.AssertNotCalled(t, "Create")
}
