package lockeritemrepo

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/locker"
	"parcelhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLockerItemRepository implements LockerItemRepository using GORM.
type GormLockerItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLockerItemRepository creates a new GORM locker item repository.
func NewGormLockerItemRepository(db *gorm.DB, tracker aggregateTracker) *GormLockerItemRepository {
	return &GormLockerItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly arrived item to the registry.
func (r *GormLockerItemRepository) Add(ctx context.Context, item *locker.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a pending item by ID.
func (r *GormLockerItemRepository) Get(ctx context.Context, id kernel.UUID) (*locker.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LockerItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lockerItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByLocker retrieves all pending items for a locker in arrival order.
func (r *GormLockerItemRepository) GetPendingByLocker(
	ctx context.Context,
	lockerCode string,
) ([]*locker.Item, error) {
	if lockerCode == "" {
		return nil, errs.NewValueIsRequiredError("lockerCode")
	}

	var dtos []LockerItemDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&dtos, "locker_code = ?", lockerCode).Error
	if err != nil {
		return nil, err
	}

	items := make([]*locker.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, itemErr := toDomain(dto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return items, nil
}

// RemoveItems deletes the given items from the registry.
// Removing an already absent item is not an error, so a retried consolidation
// does not fail on cleanup.
func (r *GormLockerItemRepository) RemoveItems(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).Delete(&LockerItemDTO{}, "id IN ?", raw).Error
}
