package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStockLevelsQueryIsNotConstructed = errors.New(
	"GetStockLevelsQuery must be created via NewGetStockLevelsQuery constructor",
)

// GetStockLevelsQuery retrieves the stock figures of every active item.
// Used by the reporting surface; deactivated items are excluded.
//
// Example:
//
//	query := NewGetStockLevelsQuery()
//	handler := NewGetStockLevelsQueryHandler(db)
//
//	levels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stock levels: %w", err)
//	}
//	for _, level := range levels {
//	    fmt.Printf("%s: %d available\n", level.SKU, level.Available)
//	}
type GetStockLevelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStockLevelsQuery creates a query to retrieve stock levels.
func NewGetStockLevelsQuery() GetStockLevelsQuery {
	return GetStockLevelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStockLevelsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockLevelsQueryIsNotConstructed)
}

// GetStockLevelsQueryResponse is one item's stock reporting row.
type GetStockLevelsQueryResponse struct {
	ItemID    kernel.UUID
	SKU       string
	Name      string
	Current   int
	Reserved  int
	Available int
	Status    string
}
