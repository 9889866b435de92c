package commands

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/shipment"
)

// AddTrackingEventCommandHandler appends manual tracking events to a
// shipment's append-only history. The log accepts events regardless of the
// shipment's status, including terminal states.
type AddTrackingEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddTrackingEventCommandHandler creates a handler for recording tracking events.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewAddTrackingEventCommandHandler(uowFactory ShipmentUoWFactory) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tracking event command.
// Loads the shipment, appends the event (stamping it with the current time
// when no explicit timestamp was supplied), and persists the result.
func (h *AddTrackingEventCommandHandler) Handle(ctx context.Context, cmd AddTrackingEventCommand) error {
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

	timestamp := time.Now().UTC()
	if cmd.Timestamp() != nil {
		timestamp = *cmd.Timestamp()
	}

	event, err := shipment.NewTrackingEvent(timestamp, cmd.Location(), cmd.Details())
	if err != nil {
		return err
	}

	if err = aggregate.AppendEvent(event); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
