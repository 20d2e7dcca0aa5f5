package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReserveStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 50)

	cmd, err := commands.NewReserveStockCommand(item.ID(), 20, "pending order", "order-service")
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

	h := commands.NewReserveStockCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 50, item.Stock().Current)
	assert.Equal(t, 20, item.Stock().Reserved)
	assert.Equal(t, 30, item.Stock().Available())
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReserveStockCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 10)

	cmd, err := commands.NewReserveStockCommand(item.ID(), 15, "pending order", "order-service")
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

	h := commands.NewReserveStockCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	var insufficientErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 0, item.Stock().Reserved)
	inventoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestReserveStockCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReserveStockCommand{}

	factory := new(MockInventoryUoWFactory)
	h := commands.NewReserveStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReserveStockCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewReserveStockCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewReserveStockCommand(kernel.NewUUID(), 0, "pending order", "order-service")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestReleaseReservedStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 50)
	require.NoError(t, item.Reserve(20, "pending order", "order-service"))

	cmd, err := commands.NewReleaseReservedStockCommand(item.ID(), 15, "order cancelled", "order-service")
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

	h := commands.NewReleaseReservedStockCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 5, item.Stock().Reserved)
	assert.Equal(t, 45, item.Stock().Available())
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseReservedStockCommandHandler_Handle_ClampsToReserved(t *testing.T) {
	ctx := t.Context()
	item := newTestItem(t, 50)
	require.NoError(t, item.Reserve(10, "pending order", "order-service"))

	cmd, err := commands.NewReleaseReservedStockCommand(item.ID(), 25, "order cancelled", "order-service")
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

	h := commands.NewReleaseReservedStockCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock().Reserved)
}

func TestReleaseReservedStockCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReleaseReservedStockCommand{}

	factory := new(MockInventoryUoWFactory)
	h := commands.NewReleaseReservedStockCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReleaseReservedStockCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
