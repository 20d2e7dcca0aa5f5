// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order and tracking numbers carry unique indexes; the version column backs
// optimistic concurrency.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber    string    `gorm:"uniqueIndex"`
	TrackingNumber string    `gorm:"uniqueIndex"`

	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	VendorID   *uuid.UUID `gorm:"type:uuid"`
	DriverID   *uuid.UUID `gorm:"type:uuid"`
	VehicleID  *uuid.UUID `gorm:"type:uuid;index"`
	RouteID    *uuid.UUID `gorm:"type:uuid"`

	Status string `gorm:"index"`

	Pickup   LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery LocationDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	PickupStart   time.Time
	PickupEnd     time.Time
	DeliveryStart time.Time
	DeliveryEnd   time.Time

	ContactName  string
	ContactPhone string

	TotalWeight   float64
	TotalVolume   float64
	DeclaredValue float64
	TotalAmount   float64
	Currency      string

	CancellationReason *string
	CancellationActor  *string
	CancelledAt        *time.Time
	RefundAmount       *float64

	ActualDeliveryTime *time.Time
	Version            int

	History []StatusChangeDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Notes   []NoteDTO         `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents embedded coordinates within the order table.
type LocationDTO struct {
	Lat     float64
	Lng     float64
	Address string
}

// StatusChangeDTO represents one row of the append-only status history.
// Seq preserves recording order within the order.
type StatusChangeDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey"`

	Status string
	Actor  string
	Notes  string

	Lat     *float64
	Lng     *float64
	Address *string

	ChangedAt time.Time
}

// TableName specifies the database table name for status history rows.
func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

// NoteDTO represents one free-form order note.
type NoteDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey"`

	Text  string
	Actor string
	At    time.Time
}

// TableName specifies the database table name for note rows.
func (NoteDTO) TableName() string {
	return "order_notes"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderNumber:    aggregate.OrderNumber(),
		TrackingNumber: aggregate.TrackingNumber(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		VendorID:       uuidPtr(aggregate.VendorID()),
		DriverID:       uuidPtr(aggregate.DriverID()),
		VehicleID:      uuidPtr(aggregate.VehicleID()),
		RouteID:        uuidPtr(aggregate.RouteID()),
		Status:         aggregate.Status().String(),
		Pickup:         locationDTO(aggregate.PickupLocation()),
		Delivery:       locationDTO(aggregate.DeliveryLocation()),
		PickupStart:    aggregate.PickupWindow().Start(),
		PickupEnd:      aggregate.PickupWindow().End(),
		DeliveryStart:  aggregate.DeliveryWindow().Start(),
		DeliveryEnd:    aggregate.DeliveryWindow().End(),
		ContactName:    aggregate.Contact().Name(),
		ContactPhone:   aggregate.Contact().Phone(),
		TotalWeight:    aggregate.Cargo().TotalWeight(),
		TotalVolume:    aggregate.Cargo().TotalVolume(),
		DeclaredValue:  aggregate.Cargo().DeclaredValue(),
		TotalAmount:    aggregate.Pricing().TotalAmount(),
		Currency:       aggregate.Pricing().Currency(),
		Version:        aggregate.Version(),
	}

	if cancellation := aggregate.Cancellation(); cancellation != nil {
		dto.CancellationReason = &cancellation.Reason
		dto.CancellationActor = &cancellation.Actor
		dto.CancelledAt = &cancellation.At
		dto.RefundAmount = &cancellation.RefundAmount
	}
	if at := aggregate.ActualDeliveryTime(); at != nil {
		t := *at
		dto.ActualDeliveryTime = &t
	}

	for i, change := range aggregate.History() {
		row := StatusChangeDTO{
			OrderID:   dto.ID,
			Seq:       i + 1,
			Status:    change.Status.String(),
			Actor:     change.Actor,
			Notes:     change.Notes,
			ChangedAt: change.At,
		}
		if change.Location != nil {
			lat, lng, addr := change.Location.Latitude(), change.Location.Longitude(), change.Location.Address()
			row.Lat, row.Lng, row.Address = &lat, &lng, &addr
		}
		dto.History = append(dto.History, row)
	}

	for i, note := range aggregate.Notes() {
		dto.Notes = append(dto.Notes, NoteDTO{
			OrderID: dto.ID,
			Seq:     i + 1,
			Text:    note.Text,
			Actor:   note.Actor,
			At:      note.At,
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := toLocation(dto.Pickup)
	if err != nil {
		return nil, err
	}

	delivery, err := toLocation(dto.Delivery)
	if err != nil {
		return nil, err
	}

	pickupWindow, err := kernel.NewTimeWindow(dto.PickupStart, dto.PickupEnd)
	if err != nil {
		return nil, err
	}

	deliveryWindow, err := kernel.NewTimeWindow(dto.DeliveryStart, dto.DeliveryEnd)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewContact(dto.ContactName, dto.ContactPhone)
	if err != nil {
		return nil, err
	}

	cargo, err := order.NewCargo(dto.TotalWeight, dto.TotalVolume, dto.DeclaredValue)
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(dto.TotalAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	snapshot := order.OrderSnapshot{
		ID:               id,
		OrderNumber:      dto.OrderNumber,
		TrackingNumber:   dto.TrackingNumber,
		CustomerID:       customerID,
		Status:           status,
		PickupLocation:   pickup,
		DeliveryLocation: delivery,
		PickupWindow:     pickupWindow,
		DeliveryWindow:   deliveryWindow,
		Contact:          contact,
		Cargo:            cargo,
		Pricing:          pricing,
		Version:          dto.Version,
	}

	if snapshot.VendorID, err = kernelUUIDPtr(dto.VendorID); err != nil {
		return nil, err
	}
	if snapshot.DriverID, err = kernelUUIDPtr(dto.DriverID); err != nil {
		return nil, err
	}
	if snapshot.VehicleID, err = kernelUUIDPtr(dto.VehicleID); err != nil {
		return nil, err
	}
	if snapshot.RouteID, err = kernelUUIDPtr(dto.RouteID); err != nil {
		return nil, err
	}

	if dto.CancellationReason != nil {
		snapshot.Cancellation = &order.Cancellation{
			Reason: *dto.CancellationReason,
		}
		if dto.CancellationActor != nil {
			snapshot.Cancellation.Actor = *dto.CancellationActor
		}
		if dto.CancelledAt != nil {
			snapshot.Cancellation.At = *dto.CancelledAt
		}
		if dto.RefundAmount != nil {
			snapshot.Cancellation.RefundAmount = *dto.RefundAmount
		}
	}
	if dto.ActualDeliveryTime != nil {
		t := *dto.ActualDeliveryTime
		snapshot.ActualDeliveryTime = &t
	}

	for _, row := range dto.History {
		changeStatus, statusErr := order.StatusFromString(row.Status)
		if statusErr != nil {
			return nil, statusErr
		}

		change := order.StatusChange{
			Status: changeStatus,
			At:     row.ChangedAt,
			Actor:  row.Actor,
			Notes:  row.Notes,
		}
		if row.Lat != nil && row.Lng != nil {
			address := ""
			if row.Address != nil {
				address = *row.Address
			}
			location, locErr := kernel.NewGeoLocation(*row.Lat, *row.Lng, address)
			if locErr != nil {
				return nil, locErr
			}
			change.Location = &location
		}
		snapshot.History = append(snapshot.History, change)
	}

	for _, row := range dto.Notes {
		snapshot.Notes = append(snapshot.Notes, order.Note{
			Text:  row.Text,
			Actor: row.Actor,
			At:    row.At,
		})
	}

	return order.RestoreOrder(snapshot)
}

func locationDTO(location kernel.GeoLocation) LocationDTO {
	return LocationDTO{
		Lat:     location.Latitude(),
		Lng:     location.Longitude(),
		Address: location.Address(),
	}
}

func toLocation(dto LocationDTO) (kernel.GeoLocation, error) {
	return kernel.NewGeoLocation(dto.Lat, dto.Lng, dto.Address)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}

	return &converted, nil
}
