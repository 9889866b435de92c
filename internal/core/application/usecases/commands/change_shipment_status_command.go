package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand represents a request to advance a shipment to a
// new lifecycle status. Whether the transition is actually allowed is decided
// by the aggregate against its current persisted status.
//
// Example:
//
//	cmd, err := NewChangeShipmentStatusCommand(shipmentID, shipment.Booked)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewChangeShipmentStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	nextStatus shipment.Status

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a command to advance a shipment's status.
// Validates that the shipment ID and the target status are valid; transition
// rules are checked later against the shipment's current state.
func NewChangeShipmentStatusCommand(
	shipmentID kernel.UUID,
	nextStatus shipment.Status,
) (ChangeShipmentStatusCommand, error) {
	statusCommand := ChangeShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setShipmentID(shipmentID),
		statusCommand.setNextStatus(nextStatus),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeShipmentStatusCommandIsNotConstructed if validation fails.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to advance.
func (c ChangeShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// NextStatus returns the status the shipment should move to.
func (c ChangeShipmentStatusCommand) NextStatus() shipment.Status {
	return c.nextStatus
}

func (c *ChangeShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *ChangeShipmentStatusCommand) setNextStatus(nextStatus shipment.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
