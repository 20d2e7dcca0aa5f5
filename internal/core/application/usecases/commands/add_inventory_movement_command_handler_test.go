package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddInventoryMovementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 50)

	cmd, err := commands.NewAddInventoryMovementCommand(
		item.ID(), inventory.MovementOut, 20, "order picked", "warehouse", "ORD-1",
	)
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
	h := commands.NewAddInventoryMovementCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 30, item.Stock().Current)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	events := publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "inventory.movement-recorded", events[0].Kind)
	assert.Equal(t, "SKU-1001", events[0].Payload["sku"])
	assert.Equal(t, "out", events[0].Payload["kind"])
	assert.Equal(t, 20, events[0].Payload["quantity"])
	assert.Equal(t, 30, events[0].Payload["current"])
}

func TestAddInventoryMovementCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 10)

	cmd, err := commands.NewAddInventoryMovementCommand(
		item.ID(), inventory.MovementOut, 25, "order picked", "warehouse", "",
	)
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
	h := commands.NewAddInventoryMovementCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	var insufficientErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 10, item.Stock().Current)
	inventoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.Events())
}

func TestAddInventoryMovementCommandHandler_Handle_NegativeAdjustment(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 50)

	cmd, err := commands.NewAddInventoryMovementCommand(
		item.ID(), inventory.MovementAdjustment, -3, "cycle count", "warehouse", "",
	)
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

	h := commands.NewAddInventoryMovementCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 47, item.Stock().Current)
}

func TestAddInventoryMovementCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddInventoryMovementCommand{}

	factory := new(MockInventoryUoWFactory)
	h := commands.NewAddInventoryMovementCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddInventoryMovementCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewAddInventoryMovementCommand_RequiresActor(t *testing.T) {
	_, err := commands.NewAddInventoryMovementCommand(
		kernel.NewUUID(), inventory.MovementIn, 10, "restock", "", "",
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "actor")
}
