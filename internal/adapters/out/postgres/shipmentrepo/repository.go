package shipmentrepo

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
//
// The tracking event log is append-only at the storage level: Update never
// rewrites rows already present, it only inserts the events appended to the
// aggregate since it was loaded.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment with its item snapshots and initial tracking events.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if items := itemsFromDomain(aggregate); len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	if events := eventsFromDomain(aggregate, 0); len(events) > 0 {
		if err := r.db.WithContext(ctx).Create(&events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing shipment. Item snapshots are immutable
// and left untouched; tracking events already stored stay as they are, only
// the tail appended since the last load is inserted.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var storedEvents int64
	err := r.db.WithContext(ctx).Model(&TrackingEventDTO{}).
		Where("shipment_id = ?", dto.ID).
		Count(&storedEvents).Error
	if err != nil {
		return err
	}

	if events := eventsFromDomain(aggregate, int(storedEvents)); len(events) > 0 {
		if err = r.db.WithContext(ctx).Create(&events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID with its snapshots and tracking events.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByRequestID retrieves the shipment created for a client request ID.
func (r *GormShipmentRepository) GetByRequestID(
	ctx context.Context,
	requestID string,
) (*shipment.Shipment, error) {
	if requestID == "" {
		return nil, errs.NewValueIsRequiredError("requestID")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestID", requestID)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// load fetches the shipment's snapshots and events and restores the aggregate.
// Events are read in insertion order so the append-only tail stays aligned
// with the stored log.
func (r *GormShipmentRepository) load(ctx context.Context, dto ShipmentDTO) (*shipment.Shipment, error) {
	var itemDTOs []ShipmentItemDTO
	err := r.db.WithContext(ctx).
		Order("item_id").
		Find(&itemDTOs, "shipment_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	var eventDTOs []TrackingEventDTO
	err = r.db.WithContext(ctx).
		Order("id").
		Find(&eventDTOs, "shipment_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs, eventDTOs)
}
