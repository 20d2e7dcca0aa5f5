// Package routerepo provides data transfer objects and mapping functions for
// route persistence, including the embedded waypoint sequence and the capped
// path log.
package routerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CreatedBy uuid.UUID  `gorm:"type:uuid"`
	DriverID  *uuid.UUID `gorm:"type:uuid"`
	VehicleID *uuid.UUID `gorm:"type:uuid;index"`

	Status string `gorm:"index"`

	PlannedStart time.Time
	PlannedEnd   time.Time
	ActualStart  *time.Time
	ActualEnd    *time.Time

	CurrentLat     *float64
	CurrentLng     *float64
	CurrentAddress *string

	DistanceKm        float64
	EstimatedDuration int64
	EstimatedFuelCost float64
	ActualDuration    int64
	Delay             int64

	CompletionNotes string
	Issues          datatypes.JSONSlice[string]

	Version int

	Waypoints []WaypointDTO    `gorm:"foreignKey:RouteID;references:ID;constraint:OnDelete:CASCADE"`
	Path      []TrackSampleDTO `gorm:"foreignKey:RouteID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// WaypointDTO represents one waypoint row. Position holds the 1-based
// sequence index, which Optimize rewrites.
type WaypointDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID uuid.UUID `gorm:"type:uuid;index"`

	Position int
	Kind     string
	Status   string

	Lat     float64
	Lng     float64
	Address string

	PlannedArrival  *time.Time
	ActualArrival   *time.Time
	ActualDeparture *time.Time
}

// TableName specifies the database table name for waypoint rows.
func (WaypointDTO) TableName() string {
	return "route_waypoints"
}

// TrackSampleDTO represents one path log sample.
type TrackSampleDTO struct {
	RouteID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"primaryKey"`

	Lat     float64
	Lng     float64
	Address string

	At time.Time
}

// TableName specifies the database table name for path samples.
func (TrackSampleDTO) TableName() string {
	return "route_track_samples"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	metrics := aggregate.Metrics()

	dto := RouteDTO{
		ID:                aggregate.ID().Bytes(),
		CreatedBy:         aggregate.CreatedBy().Bytes(),
		DriverID:          uuidPtr(aggregate.DriverID()),
		VehicleID:         uuidPtr(aggregate.VehicleID()),
		Status:            aggregate.Status().String(),
		PlannedStart:      aggregate.Schedule().Start(),
		PlannedEnd:        aggregate.Schedule().End(),
		DistanceKm:        metrics.DistanceKm,
		EstimatedDuration: int64(metrics.EstimatedDuration),
		EstimatedFuelCost: metrics.EstimatedFuelCost,
		ActualDuration:    int64(metrics.ActualDuration),
		Delay:             int64(metrics.Delay),
		CompletionNotes:   aggregate.CompletionNotes(),
		Issues:            datatypes.NewJSONSlice(aggregate.Issues()),
		Version:           aggregate.Version(),
	}

	if at := aggregate.ActualStart(); at != nil {
		t := *at
		dto.ActualStart = &t
	}
	if at := aggregate.ActualEnd(); at != nil {
		t := *at
		dto.ActualEnd = &t
	}
	if location := aggregate.CurrentLocation(); location != nil {
		lat, lng, addr := location.Latitude(), location.Longitude(), location.Address()
		dto.CurrentLat, dto.CurrentLng, dto.CurrentAddress = &lat, &lng, &addr
	}

	for _, wp := range aggregate.Waypoints() {
		row := WaypointDTO{
			ID:       wp.ID().Bytes(),
			RouteID:  dto.ID,
			Position: wp.Order(),
			Kind:     wp.Kind().String(),
			Status:   wp.Status().String(),
			Lat:      wp.Location().Latitude(),
			Lng:      wp.Location().Longitude(),
			Address:  wp.Location().Address(),
		}
		row.PlannedArrival = copyTime(wp.PlannedArrival())
		row.ActualArrival = copyTime(wp.ActualArrival())
		row.ActualDeparture = copyTime(wp.ActualDeparture())
		dto.Waypoints = append(dto.Waypoints, row)
	}

	for i, sample := range aggregate.Path() {
		dto.Path = append(dto.Path, TrackSampleDTO{
			RouteID: dto.ID,
			Seq:     i + 1,
			Lat:     sample.Location.Latitude(),
			Lng:     sample.Location.Longitude(),
			Address: sample.Location.Address(),
			At:      sample.At,
		})
	}

	return dto
}

// toDomain converts a database DTO to a route domain aggregate using
// RestoreRoute. Waypoints must be preloaded in position order and path
// samples in sequence order.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := route.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewTimeWindow(dto.PlannedStart, dto.PlannedEnd)
	if err != nil {
		return nil, err
	}

	snapshot := route.RouteSnapshot{
		ID:        id,
		CreatedBy: createdBy,
		Status:    status,
		Schedule:  schedule,
		Metrics: route.Metrics{
			DistanceKm:        dto.DistanceKm,
			EstimatedDuration: time.Duration(dto.EstimatedDuration),
			EstimatedFuelCost: dto.EstimatedFuelCost,
			ActualDuration:    time.Duration(dto.ActualDuration),
			Delay:             time.Duration(dto.Delay),
		},
		CompletionNotes: dto.CompletionNotes,
		Issues:          dto.Issues,
		ActualStart:     copyTime(dto.ActualStart),
		ActualEnd:       copyTime(dto.ActualEnd),
		Version:         dto.Version,
	}

	if snapshot.DriverID, err = kernelUUIDPtr(dto.DriverID); err != nil {
		return nil, err
	}
	if snapshot.VehicleID, err = kernelUUIDPtr(dto.VehicleID); err != nil {
		return nil, err
	}

	if dto.CurrentLat != nil && dto.CurrentLng != nil {
		address := ""
		if dto.CurrentAddress != nil {
			address = *dto.CurrentAddress
		}
		location, locErr := kernel.NewGeoLocation(*dto.CurrentLat, *dto.CurrentLng, address)
		if locErr != nil {
			return nil, locErr
		}
		snapshot.CurrentLocation = &location
	}

	for _, row := range dto.Waypoints {
		wp, wpErr := toWaypoint(row)
		if wpErr != nil {
			return nil, wpErr
		}
		snapshot.Waypoints = append(snapshot.Waypoints, wp)
	}

	for _, row := range dto.Path {
		location, locErr := kernel.NewGeoLocation(row.Lat, row.Lng, row.Address)
		if locErr != nil {
			return nil, locErr
		}
		snapshot.Path = append(snapshot.Path, route.TrackSample{Location: location, At: row.At})
	}

	return route.RestoreRoute(snapshot)
}

func toWaypoint(row WaypointDTO) (*route.Waypoint, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoLocation(row.Lat, row.Lng, row.Address)
	if err != nil {
		return nil, err
	}

	kind, err := route.KindFromString(row.Kind)
	if err != nil {
		return nil, err
	}

	status, err := route.WaypointStatusFromString(row.Status)
	if err != nil {
		return nil, err
	}

	return route.RestoreWaypoint(
		id,
		row.Position,
		location,
		kind,
		status,
		copyTime(row.PlannedArrival),
		copyTime(row.ActualArrival),
		copyTime(row.ActualDeparture),
	)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
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
