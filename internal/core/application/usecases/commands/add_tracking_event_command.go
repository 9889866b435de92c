package commands

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrAddTrackingEventCommandIsNotConstructed = errors.New(
		"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
	)
	ErrEventDetailsAreRequired = errors.New("event details are required")
)

// AddTrackingEventCommand represents a request to append a manual tracking
// event to a shipment's history. The timestamp is optional: a nil value means
// "now", while an explicit value allows operators to back-fill events.
//
// Example:
//
//	cmd, err := NewAddTrackingEventCommand(shipmentID, nil, "Miami, FL",
//	    "arrived at export facility")
//	if err != nil {
//	    return fmt.Errorf("invalid tracking event: %w", err)
//	}
//
//	handler := NewAddTrackingEventCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record event: %w", err)
//	}
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	timestamp  *time.Time
	location   string
	details    string

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand creates a command to append a tracking event.
// Validates that the shipment ID is valid and details are not empty. The
// location is optional, and a nil timestamp defaults to the handling time.
func NewAddTrackingEventCommand(
	shipmentID kernel.UUID,
	timestamp *time.Time,
	location string,
	details string,
) (AddTrackingEventCommand, error) {
	eventCommand := AddTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		eventCommand.setShipmentID(shipmentID),
		eventCommand.setDetails(details),
	); err != nil {
		return AddTrackingEventCommand{}, err
	}
	eventCommand.location = location
	if timestamp != nil {
		ts := *timestamp
		eventCommand.timestamp = &ts
	}

	return eventCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddTrackingEventCommandIsNotConstructed if validation fails.
func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to append to.
func (c AddTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Timestamp returns the explicit event time, or nil when the event should be
// stamped at handling time.
func (c AddTrackingEventCommand) Timestamp() *time.Time {
	if c.timestamp == nil {
		return nil
	}
	ts := *c.timestamp
	return &ts
}

// Location returns the free-form location text, possibly empty.
func (c AddTrackingEventCommand) Location() string {
	return c.location
}

// Details returns the event description.
func (c AddTrackingEventCommand) Details() string {
	return c.details
}

func (c *AddTrackingEventCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AddTrackingEventCommand) setDetails(details string) error {
	if details == "" {
		return ErrEventDetailsAreRequired
	}

	c.details = details
	return nil
}
