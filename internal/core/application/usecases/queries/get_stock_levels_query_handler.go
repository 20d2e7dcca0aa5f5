package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockLevelsQueryHandler reads the stock reporting projection.
type GetStockLevelsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockLevelsQueryHandler creates a handler for stock level queries.
// Requires a GORM database connection for query execution.
func NewGetStockLevelsQueryHandler(db *gorm.DB) GetStockLevelsQueryHandler {
	return GetStockLevelsQueryHandler{db: db}
}

// Handle executes the stock level query.
// Returns one row per active item, sorted by SKU for consistent output.
func (h GetStockLevelsQueryHandler) Handle(
	ctx context.Context,
	query GetStockLevelsQuery,
) ([]GetStockLevelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			current_stock,
			reserved_stock,
			status
		FROM inventory_items
		WHERE active
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make([]GetStockLevelsQueryResponse, 0)
	for rows.Next() {
		var (
			level GetStockLevelsQueryResponse
			id    uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&level.SKU,
			&level.Name,
			&level.Current,
			&level.Reserved,
			&level.Status,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		level.ItemID = itemID
		level.Available = level.Current - level.Reserved
		levels = append(levels, level)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return levels, nil
}
