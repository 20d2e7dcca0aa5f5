// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. The assignment path writes through a status
// compare-and-swap rather than a plain update.
package vehiclerepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicles.
type VehicleDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Plate string    `gorm:"uniqueIndex"`

	CapacityWeight float64
	CapacityVolume float64

	Status         string     `gorm:"index"`
	AssignedDriver *uuid.UUID `gorm:"type:uuid"`

	Trips      int
	DistanceKm float64
	FuelCost   float64

	Version int
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	metrics := aggregate.Metrics()

	dto := VehicleDTO{
		ID:             aggregate.ID().Bytes(),
		Plate:          aggregate.Plate(),
		CapacityWeight: aggregate.Capacity().Weight(),
		CapacityVolume: aggregate.Capacity().Volume(),
		Status:         aggregate.Status().String(),
		Trips:          metrics.Trips,
		DistanceKm:     metrics.DistanceKm,
		FuelCost:       metrics.FuelCost,
		Version:        aggregate.Version(),
	}

	if driverID := aggregate.AssignedDriver(); driverID != nil {
		raw := driverID.Bytes()
		dto.AssignedDriver = &raw
	}

	return dto
}

// toDomain converts a database DTO to a vehicle domain aggregate using
// RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	capacity, err := vehicle.NewCapacity(dto.CapacityWeight, dto.CapacityVolume)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedDriver *kernel.UUID
	if dto.AssignedDriver != nil {
		driverID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriver)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		assignedDriver = &driverID
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Plate,
		capacity,
		status,
		assignedDriver,
		vehicle.Metrics{
			Trips:      dto.Trips,
			DistanceKm: dto.DistanceKm,
			FuelCost:   dto.FuelCost,
		},
		dto.Version,
	)
}
