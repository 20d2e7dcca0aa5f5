// Package queries contains read-only operations that bypass the domain model
// and read projections straight from storage. Implements the query side of
// the CQRS architecture.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
	ErrTrackOrderQueryNeedsIdentifier = errors.New(
		"either an order ID or a tracking number is required",
	)
)

// TrackOrderQuery retrieves the public tracking view of an order, addressed
// by order ID or by tracking number.
//
// Example:
//
//	query, _ := NewTrackOrderQueryByNumber("TRK-1A2B3C4D")
//	handler := NewTrackOrderQueryHandler(db)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", tracking.OrderNumber, tracking.Status)
type TrackOrderQuery struct {
	orderID        *kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackOrderQueryByID creates a query addressing the order by its ID.
func NewTrackOrderQueryByID(orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: &orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewTrackOrderQueryByNumber creates a query addressing the order by its
// public tracking number.
func NewTrackOrderQueryByNumber(trackingNumber string) (TrackOrderQuery, error) {
	if trackingNumber == "" {
		return TrackOrderQuery{}, ErrTrackOrderQueryNeedsIdentifier
	}

	return TrackOrderQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the order ID when the query addresses by ID.
func (q TrackOrderQuery) OrderID() *kernel.UUID {
	return q.orderID
}

// TrackingNumber returns the tracking number when the query addresses by it.
func (q TrackOrderQuery) TrackingNumber() string {
	return q.trackingNumber
}

// TrackOrderHistoryEntry is one recorded status change of the tracked order.
type TrackOrderHistoryEntry struct {
	Status string
	Actor  string
	Notes  string
	At     time.Time
}

// TrackOrderQueryResponse is the public tracking view of an order.
type TrackOrderQueryResponse struct {
	OrderID            kernel.UUID
	OrderNumber        string
	TrackingNumber     string
	Status             string
	ActualDeliveryTime *time.Time
	History            []TrackOrderHistoryEntry
}
