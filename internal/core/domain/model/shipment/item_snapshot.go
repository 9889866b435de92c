package shipment

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/locker"
)

// ErrItemSnapshotIsNotConstructed is returned when an ItemSnapshot was not
// created through one of its factory functions.
var ErrItemSnapshotIsNotConstructed = errors.New(
	"ItemSnapshot must be created via SnapshotOf or RestoreItemSnapshot")

// ItemSnapshot is a copied-in record of a locker item at the moment it was
// consumed by a consolidation. Snapshots are composition, not aggregation:
// later changes to the locker item registry never retroactively alter a
// sealed shipment.
type ItemSnapshot struct {
	itemID        kernel.UUID
	description   string
	weight        kernel.Weight
	isConstructed bool
}

// SnapshotOf copies the relevant fields out of a locker item.
func SnapshotOf(item *locker.Item) (ItemSnapshot, error) {
	if err := item.Validate(); err != nil {
		return ItemSnapshot{}, err
	}

	return ItemSnapshot{
		itemID:        item.ID(),
		description:   item.Description(),
		weight:        item.Weight(),
		isConstructed: true,
	}, nil
}

// RestoreItemSnapshot reconstructs a snapshot from persistence.
func RestoreItemSnapshot(itemID kernel.UUID, description string, weight kernel.Weight) (ItemSnapshot, error) {
	if err := itemID.Validate(); err != nil {
		return ItemSnapshot{}, err
	}
	if err := weight.Validate(); err != nil {
		return ItemSnapshot{}, err
	}

	return ItemSnapshot{
		itemID:        itemID,
		description:   description,
		weight:        weight,
		isConstructed: true,
	}, nil
}

// Validate ensures the snapshot was created through a factory function.
func (s ItemSnapshot) Validate() error {
	if !s.isConstructed {
		return ErrItemSnapshotIsNotConstructed
	}
	return nil
}

// ItemID returns the identifier the item carried in the locker registry.
func (s ItemSnapshot) ItemID() kernel.UUID {
	return s.itemID
}

// Description returns the item description as captured at consolidation time.
func (s ItemSnapshot) Description() string {
	return s.description
}

// Weight returns the item weight as captured at consolidation time.
func (s ItemSnapshot) Weight() kernel.Weight {
	return s.weight
}
