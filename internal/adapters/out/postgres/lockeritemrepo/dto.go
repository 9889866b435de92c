// Package lockeritemrepo provides data transfer objects and mapping functions
// for the pending item registry. Items are stored with a monotonically
// increasing sequence number so the arrival order survives round trips.
package lockeritemrepo

import (
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// LockerItemDTO represents the database structure for persisting pending items.
// The seq column is assigned by the database and preserves arrival order
// within a locker.
type LockerItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int64     `gorm:"autoIncrement;uniqueIndex"`
	LockerCode  string    `gorm:"index"`
	Description string
	WeightKg    float64
}

// TableName specifies the database table name for pending items.
// Overrides GORM's default naming convention to use "locker_items".
func (LockerItemDTO) TableName() string {
	return "locker_items"
}

// fromDomain converts a pending item entity to its database representation.
// The seq column is left to the database.
func fromDomain(item *locker.Item) LockerItemDTO {
	return LockerItemDTO{
		ID:          item.ID().Bytes(),
		LockerCode:  item.LockerCode(),
		Description: item.Description(),
		WeightKg:    item.Weight().Kg(),
	}
}

// toDomain converts a database DTO to a pending item entity using RestoreItem.
func toDomain(dto LockerItemDTO) (*locker.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	return locker.RestoreItem(id, dto.LockerCode, dto.Description, weight)
}
