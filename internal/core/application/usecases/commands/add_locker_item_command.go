package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrAddLockerItemCommandIsNotConstructed = errors.New(
		"AddLockerItemCommand must be created via NewAddLockerItemCommand constructor",
	)
	ErrLockerCodeIsRequired = errors.New("locker code is required")
)

// AddLockerItemCommand represents a request to register a newly arrived item
// in a locker. The item stays in the registry until a consolidation consumes it.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	cmd, err := NewAddLockerItemCommand(itemID, "XG15STV", "running shoes", 1.8)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddLockerItemCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register item: %w", err)
//	}
type AddLockerItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	lockerCode  string
	description string
	weight      kernel.Weight

	guard guard.ConstructorGuard
}

// NewAddLockerItemCommand creates a command to register an arrived item.
// Validates that the item ID is valid, the locker code is not empty, and the
// weight is a valid non-negative quantity. The description is optional.
func NewAddLockerItemCommand(
	itemID kernel.UUID,
	lockerCode string,
	description string,
	weightKg float64,
) (AddLockerItemCommand, error) {
	itemCommand := AddLockerItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setLockerCode(lockerCode),
		itemCommand.setWeight(weightKg),
	); err != nil {
		return AddLockerItemCommand{}, err
	}
	itemCommand.description = description

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddLockerItemCommandIsNotConstructed if validation fails.
func (c AddLockerItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLockerItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the item.
func (c AddLockerItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// LockerCode returns the code of the locker the item arrived at.
func (c AddLockerItemCommand) LockerCode() string {
	return c.lockerCode
}

// Description returns the free-form item description, possibly empty.
func (c AddLockerItemCommand) Description() string {
	return c.description
}

// Weight returns the item weight.
func (c AddLockerItemCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *AddLockerItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddLockerItemCommand) setLockerCode(lockerCode string) error {
	if lockerCode == "" {
		return ErrLockerCodeIsRequired
	}

	c.lockerCode = lockerCode
	return nil
}

func (c *AddLockerItemCommand) setWeight(weightKg float64) error {
	weight, err := kernel.NewWeight(weightKg)
	if err != nil {
		return err
	}

	c.weight = weight
	return nil
}
