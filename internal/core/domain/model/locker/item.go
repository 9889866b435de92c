package locker

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created through
	// the NewItem or RestoreItem factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrLockerCodeIsRequired is returned when attempting to create an item without a locker code.
	ErrLockerCodeIsRequired = errs.NewValueIsRequiredError("lockerCode")
)

// Item represents a physical package received at a locker and not yet
// consolidated into a shipment.
//
// Item follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a non-empty locker code
//   - Weight must be a valid non-negative kilogram value
//   - Can only be created through NewItem or RestoreItem
//
// Items are owned by the locker item registry until a consolidation consumes
// them; a consolidation stores snapshots, never references to Items.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// lockerCode identifies the locker the item was received at
	lockerCode string

	// description is a free-form label for the item contents
	description string

	// weight is the item weight in kilograms
	weight kernel.Weight

	// isConstructed ensures the item was created via a factory method
	isConstructed bool
}

// NewItem creates a new Item with validation. This is the only way to create
// a valid Item for a freshly received package.
func NewItem(id kernel.UUID, lockerCode string, description string, weight kernel.Weight) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setLockerCode(lockerCode),
		item.setWeight(weight),
	); err != nil {
		return nil, err
	}

	item.description = description
	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
// The same validation rules as NewItem apply.
func RestoreItem(id kernel.UUID, lockerCode string, description string, weight kernel.Weight) (*Item, error) {
	return NewItem(id, lockerCode, description, weight)
}

// Validate ensures the Item instance was properly constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// LockerCode returns the code of the locker holding the item.
func (i *Item) LockerCode() string {
	return i.lockerCode
}

// Description returns the free-form item description.
func (i *Item) Description() string {
	return i.description
}

// Weight returns the item weight.
func (i *Item) Weight() kernel.Weight {
	return i.weight
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setLockerCode(code string) error {
	if code == "" {
		return ErrLockerCodeIsRequired
	}
	i.lockerCode = code
	return nil
}

func (i *Item) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	i.weight = weight
	return nil
}
