package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/ports"
)

// CheckAlertsCommandHandler evaluates one item's alerts.
// Fired alerts are returned to the caller and emitted as events; the updated
// last-alerted timestamps are persisted so the re-alert gate holds across
// process restarts.
type CheckAlertsCommandHandler struct {
	uowFactory InventoryUoWFactory
	publisher  ports.EventPublisher
}

// NewCheckAlertsCommandHandler creates a handler for alert evaluation.
func NewCheckAlertsCommandHandler(
	uowFactory InventoryUoWFactory,
	publisher ports.EventPublisher,
) CheckAlertsCommandHandler {
	return CheckAlertsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the alert evaluation command and returns the alerts that
// actually fired, possibly none.
func (h CheckAlertsCommandHandler) Handle(ctx context.Context, cmd CheckAlertsCommand) ([]inventory.Alert, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	aggregate, err := inventoryRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	alerts := aggregate.CheckAlerts(cmd.Now())
	if len(alerts) == 0 {
		return nil, nil
	}

	if err = inventoryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, alert := range alerts {
		publishEvent(ctx, h.publisher, "inventory.alert", "inventory-item", aggregate.ID(), map[string]any{
			"sku":     aggregate.SKU(),
			"kind":    alert.Kind.String(),
			"message": alert.Message,
		})
	}

	return alerts, nil
}
