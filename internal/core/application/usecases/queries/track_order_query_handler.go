package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads the tracking projection of an order.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns errs.ObjectNotFoundError when no order matches the identifier.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	var (
		row struct {
			ID                 uuid.UUID
			OrderNumber        string
			TrackingNumber     string
			Status             string
			ActualDeliveryTime sql.NullTime
		}
		tx = h.db.WithContext(ctx).Table("orders").
			Select("id, order_number, tracking_number, status, actual_delivery_time")
	)

	if query.OrderID() != nil {
		tx = tx.Where("id = ?", query.OrderID().Bytes())
	} else {
		tx = tx.Where("tracking_number = ?", query.TrackingNumber())
	}

	if err := tx.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.TrackingNumber())
		}
		return TrackOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{
		OrderID:        orderID,
		OrderNumber:    row.OrderNumber,
		TrackingNumber: row.TrackingNumber,
		Status:         row.Status,
	}
	if row.ActualDeliveryTime.Valid {
		t := row.ActualDeliveryTime.Time
		response.ActualDeliveryTime = &t
	}

	history, err := h.loadHistory(ctx, row.ID)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	response.History = history

	return response, nil
}

func (h TrackOrderQueryHandler) loadHistory(ctx context.Context, orderID uuid.UUID) ([]TrackOrderHistoryEntry, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			actor,
			notes,
			changed_at
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY seq
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]TrackOrderHistoryEntry, 0)
	for rows.Next() {
		var entry TrackOrderHistoryEntry
		if err = rows.Scan(&entry.Status, &entry.Actor, &entry.Notes, &entry.At); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
