package commands

import (
	"context"
	"time"
)

// ChangeShipmentStatusCommandHandler handles shipment lifecycle transitions.
//
// The shipment is re-read inside the transaction, so concurrent transition
// attempts are serialized against the persisted state: the loser of a race
// sees the winner's status and gets the aggregate's transition error.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewChangeShipmentStatusCommandHandler creates a handler for status transitions.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewChangeShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the shipment, applies the transition through the aggregate (which
// appends the corresponding tracking event), and persists the result.
func (h *ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.NextStatus(), time.Now().UTC()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
