// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory item persistence, including the append-only movement ledger
// and the last-alerted timestamps behind the re-alert gate.
package inventoryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting inventory items.
// The SKU carries a unique index; the version column backs the
// compare-and-swap semantics of reservations and movements.
type ItemDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU  string    `gorm:"column:sku;uniqueIndex"`
	Name string

	CurrentStock  int
	ReservedStock int

	ReorderPoint int
	MaxStock     int

	ExpiryDate *time.Time
	Status     string
	Active     bool `gorm:"index"`

	Version int

	Movements []MovementDTO `gorm:"foreignKey:ItemID;references:ID;constraint:OnDelete:CASCADE"`
	Alerts    []AlertDTO    `gorm:"foreignKey:ItemID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for inventory items.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// MovementDTO represents one row of the append-only movement ledger.
type MovementDTO struct {
	ItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq    int       `gorm:"primaryKey"`

	Kind      string
	Quantity  int
	Effect    int
	Reason    string
	Actor     string
	Reference string
	At        time.Time
}

// TableName specifies the database table name for ledger rows.
func (MovementDTO) TableName() string {
	return "inventory_movements"
}

// AlertDTO records when an alert kind last fired for an item.
type AlertDTO struct {
	ItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind   string    `gorm:"primaryKey"`

	LastAlerted time.Time
}

// TableName specifies the database table name for alert timestamps.
func (AlertDTO) TableName() string {
	return "inventory_alerts"
}

// fromDomain converts an item domain aggregate to its database representation.
func fromDomain(aggregate *inventory.Item) ItemDTO {
	stock := aggregate.Stock()
	thresholds := aggregate.Thresholds()

	dto := ItemDTO{
		ID:            aggregate.ID().Bytes(),
		SKU:           aggregate.SKU(),
		Name:          aggregate.Name(),
		CurrentStock:  stock.Current,
		ReservedStock: stock.Reserved,
		ReorderPoint:  thresholds.ReorderPoint,
		MaxStock:      thresholds.Maximum,
		Status:        aggregate.Status().String(),
		Active:        aggregate.IsActive(),
		Version:       aggregate.Version(),
	}

	if expiry := aggregate.ExpiryDate(); expiry != nil {
		t := *expiry
		dto.ExpiryDate = &t
	}

	for i, movement := range aggregate.Movements() {
		dto.Movements = append(dto.Movements, MovementDTO{
			ItemID:    dto.ID,
			Seq:       i + 1,
			Kind:      movement.Kind.String(),
			Quantity:  movement.Quantity,
			Effect:    movement.Effect,
			Reason:    movement.Reason,
			Actor:     movement.Actor,
			Reference: movement.Reference,
			At:        movement.At,
		})
	}

	for kind, lastAlerted := range aggregate.LastAlerted() {
		dto.Alerts = append(dto.Alerts, AlertDTO{
			ItemID:      dto.ID,
			Kind:        kind.String(),
			LastAlerted: lastAlerted,
		})
	}

	return dto
}

// toDomain converts a database DTO to an item domain aggregate using
// RestoreItem. Movements must be preloaded in sequence order.
func toDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	snapshot := inventory.ItemSnapshot{
		ID:   id,
		SKU:  dto.SKU,
		Name: dto.Name,
		Stock: inventory.Stock{
			Current:  dto.CurrentStock,
			Reserved: dto.ReservedStock,
		},
		Thresholds: inventory.Thresholds{
			ReorderPoint: dto.ReorderPoint,
			Maximum:      dto.MaxStock,
		},
		LastAlerted: make(map[inventory.AlertKind]time.Time, len(dto.Alerts)),
		Active:      dto.Active,
		Version:     dto.Version,
	}

	if dto.ExpiryDate != nil {
		t := *dto.ExpiryDate
		snapshot.ExpiryDate = &t
	}

	for _, row := range dto.Movements {
		kind, kindErr := inventory.MovementKindFromString(row.Kind)
		if kindErr != nil {
			return nil, kindErr
		}

		snapshot.Movements = append(snapshot.Movements, inventory.Movement{
			Kind:      kind,
			Quantity:  row.Quantity,
			Effect:    row.Effect,
			Reason:    row.Reason,
			Actor:     row.Actor,
			Reference: row.Reference,
			At:        row.At,
		})
	}

	for _, row := range dto.Alerts {
		kind, kindErr := inventory.AlertKindFromString(row.Kind)
		if kindErr != nil {
			return nil, kindErr
		}
		snapshot.LastAlerted[kind] = row.LastAlerted
	}

	return inventory.RestoreItem(snapshot)
}
