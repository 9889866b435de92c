package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/locker"
)

// AddLockerItemCommandHandler handles the business logic for item arrival.
// Registers the item in the locker's pending registry.
type AddLockerItemCommandHandler struct {
	uowFactory LockerItemUoWFactory
}

// NewAddLockerItemCommandHandler creates a handler for item registration.
// Requires a LockerItemUoWFactory for transactional persistence.
func NewAddLockerItemCommandHandler(uowFactory LockerItemUoWFactory) AddLockerItemCommandHandler {
	return AddLockerItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item registration command.
// Creates the item entity and persists it to the pending registry.
// Uses a transaction to ensure the item is properly persisted or rolled back on error.
func (h *AddLockerItemCommandHandler) Handle(ctx context.Context, cmd AddLockerItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := locker.NewItem(cmd.ItemID(), cmd.LockerCode(), cmd.Description(), cmd.Weight())
	if err != nil {
		return err
	}

	if err = uow.LockerItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
