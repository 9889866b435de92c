// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. A shipment aggregate spans three tables: the
// shipment row, its item snapshots, and its append-only tracking event log.
package shipmentrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The request_id column carries a unique index so a retried consolidation
// request cannot create a second shipment.
type ShipmentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID       string    `gorm:"uniqueIndex"`
	LockerCode      string    `gorm:"index"`
	RecipientName   string
	ServiceTier     int
	DestinationZone *int
	TotalWeightKg   float64
	TotalPrice      float64
	Status          int `gorm:"index"`
	CreatedAt       time.Time
	LastUpdate      time.Time `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentItemDTO represents one item snapshot copied into a shipment.
// Snapshots are immutable once written.
type ShipmentItemDTO struct {
	ItemID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Description string
	WeightKg    float64
}

// TableName specifies the database table name for item snapshots.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// TrackingEventDTO represents one entry of a shipment's tracking log.
// The autoincrement id preserves insertion order, which is how the log
// distinguishes back-filled events from reordered ones.
type TrackingEventDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	OccurredAt time.Time
	Location   string
	Details    string
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a shipment aggregate to its row representation.
// Item snapshots and tracking events are mapped separately.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var zone *int
	if z := aggregate.DestinationZone(); z != nil {
		idx := z.Index()
		zone = &idx
	}

	return ShipmentDTO{
		ID:              aggregate.ID().Bytes(),
		RequestID:       aggregate.RequestID(),
		LockerCode:      aggregate.LockerCode(),
		RecipientName:   aggregate.RecipientName(),
		ServiceTier:     int(aggregate.ServiceTier()),
		DestinationZone: zone,
		TotalWeightKg:   aggregate.TotalWeight().Kg(),
		TotalPrice:      aggregate.TotalPrice(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		LastUpdate:      aggregate.LastUpdate(),
	}
}

// itemsFromDomain converts the aggregate's item snapshots to row representations.
func itemsFromDomain(aggregate *shipment.Shipment) []ShipmentItemDTO {
	snapshots := aggregate.Items()
	dtos := make([]ShipmentItemDTO, 0, len(snapshots))
	for _, snapshot := range snapshots {
		dtos = append(dtos, ShipmentItemDTO{
			ItemID:      snapshot.ItemID().Bytes(),
			ShipmentID:  aggregate.ID().Bytes(),
			Description: snapshot.Description(),
			WeightKg:    snapshot.Weight().Kg(),
		})
	}
	return dtos
}

// eventsFromDomain converts tracking events to row representations, keeping
// insertion order. Only events at positions >= from are returned, which lets
// Update insert the tail appended since the aggregate was loaded.
func eventsFromDomain(aggregate *shipment.Shipment, from int) []TrackingEventDTO {
	events := aggregate.EventsInInsertionOrder()
	if from > len(events) {
		return nil
	}

	dtos := make([]TrackingEventDTO, 0, len(events)-from)
	for _, event := range events[from:] {
		dtos = append(dtos, TrackingEventDTO{
			ShipmentID: aggregate.ID().Bytes(),
			OccurredAt: event.Timestamp(),
			Location:   event.Location(),
			Details:    event.Details(),
		})
	}
	return dtos
}

// toDomain reconstructs a shipment aggregate from its rows using RestoreShipment.
func toDomain(dto ShipmentDTO, itemDTOs []ShipmentItemDTO, eventDTOs []TrackingEventDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var zone *tariff.Zone
	if dto.DestinationZone != nil {
		z, zoneErr := tariff.NewZone(*dto.DestinationZone)
		if zoneErr != nil {
			return nil, zoneErr
		}
		zone = &z
	}

	totalWeight, err := kernel.NewWeight(dto.TotalWeightKg)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shipment.ItemSnapshot, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		weight, weightErr := kernel.NewWeight(itemDTO.WeightKg)
		if weightErr != nil {
			return nil, weightErr
		}

		snapshot, snapErr := shipment.RestoreItemSnapshot(itemID, itemDTO.Description, weight)
		if snapErr != nil {
			return nil, snapErr
		}
		snapshots = append(snapshots, snapshot)
	}

	events := make([]shipment.TrackingEvent, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		event, eventErr := shipment.NewTrackingEvent(eventDTO.OccurredAt, eventDTO.Location, eventDTO.Details)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	aggregate, err := shipment.RestoreShipment(
		id,
		dto.LockerCode,
		dto.RecipientName,
		tariff.ServiceTier(dto.ServiceTier),
		zone,
		snapshots,
		totalWeight,
		dto.TotalPrice,
		shipment.Status(dto.Status),
		events,
		dto.CreatedAt,
		dto.LastUpdate,
	)
	if err != nil {
		return nil, err
	}
	aggregate.AssignRequestID(dto.RequestID)

	return aggregate, nil
}
