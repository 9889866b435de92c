package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrCreateConsolidationCommandIsNotConstructed = errors.New(
		"CreateConsolidationCommand must be created via NewCreateConsolidationCommand constructor",
	)
	ErrRequestIDIsRequired     = errors.New("request id is required")
	ErrRecipientNameIsRequired = errors.New("recipient name is required")
)

// CreateConsolidationCommand represents a request to consolidate a locker's
// pending items into a single priced shipment.
//
// The request ID makes the operation idempotent: a retried request with the
// same ID returns the shipment created by the first attempt instead of
// consuming the locker twice.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateConsolidationCommand(shipmentID, "req-8842", "XG15STV",
//	    "Ada Morales", tariff.Air, nil, shipment.ReadyToBook)
//	if err != nil {
//	    return fmt.Errorf("invalid consolidation data: %w", err)
//	}
//
//	handler := NewCreateConsolidationCommandHandler(uowFactory, builder)
//	createdID, err := handler.Handle(ctx, cmd)
type CreateConsolidationCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	requestID       string
	lockerCode      string
	recipientName   string
	serviceTier     tariff.ServiceTier
	destinationZone *tariff.Zone
	initialStatus   shipment.Status

	guard guard.ConstructorGuard
}

// NewCreateConsolidationCommand creates a command to consolidate a locker.
// Validates that the shipment ID, request ID, locker code, and recipient are
// present, the service tier is valid, the zone (when given) is valid, and the
// initial status is one a shipment may start in.
func NewCreateConsolidationCommand(
	shipmentID kernel.UUID,
	requestID string,
	lockerCode string,
	recipientName string,
	serviceTier tariff.ServiceTier,
	destinationZone *tariff.Zone,
	initialStatus shipment.Status,
) (CreateConsolidationCommand, error) {
	consolidationCommand := CreateConsolidationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		consolidationCommand.setShipmentID(shipmentID),
		consolidationCommand.setRequestID(requestID),
		consolidationCommand.setLockerCode(lockerCode),
		consolidationCommand.setRecipientName(recipientName),
		consolidationCommand.setServiceTier(serviceTier),
		consolidationCommand.setDestinationZone(destinationZone),
		consolidationCommand.setInitialStatus(initialStatus),
	); err != nil {
		return CreateConsolidationCommand{}, err
	}

	return consolidationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateConsolidationCommandIsNotConstructed if validation fails.
func (c CreateConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrCreateConsolidationCommandIsNotConstructed)
}

// ShipmentID returns the identifier the new shipment will be created under.
func (c CreateConsolidationCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// RequestID returns the client-supplied idempotency key.
func (c CreateConsolidationCommand) RequestID() string {
	return c.requestID
}

// LockerCode returns the code of the locker to consolidate.
func (c CreateConsolidationCommand) LockerCode() string {
	return c.lockerCode
}

// RecipientName returns the person the shipment is addressed to.
func (c CreateConsolidationCommand) RecipientName() string {
	return c.recipientName
}

// ServiceTier returns the shipping tier to price the consolidation at.
func (c CreateConsolidationCommand) ServiceTier() tariff.ServiceTier {
	return c.serviceTier
}

// DestinationZone returns the surcharge zone, or nil for flat per-kg routes.
func (c CreateConsolidationCommand) DestinationZone() *tariff.Zone {
	if c.destinationZone == nil {
		return nil
	}
	zone := *c.destinationZone
	return &zone
}

// InitialStatus returns the status the new shipment starts in.
func (c CreateConsolidationCommand) InitialStatus() shipment.Status {
	return c.initialStatus
}

func (c *CreateConsolidationCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateConsolidationCommand) setRequestID(requestID string) error {
	if requestID == "" {
		return ErrRequestIDIsRequired
	}

	c.requestID = requestID
	return nil
}

func (c *CreateConsolidationCommand) setLockerCode(lockerCode string) error {
	if lockerCode == "" {
		return ErrLockerCodeIsRequired
	}

	c.lockerCode = lockerCode
	return nil
}

func (c *CreateConsolidationCommand) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipientName = recipientName
	return nil
}

func (c *CreateConsolidationCommand) setServiceTier(serviceTier tariff.ServiceTier) error {
	if err := serviceTier.Validate(); err != nil {
		return err
	}

	c.serviceTier = serviceTier
	return nil
}

func (c *CreateConsolidationCommand) setDestinationZone(destinationZone *tariff.Zone) error {
	if destinationZone == nil {
		return nil
	}
	if err := destinationZone.Validate(); err != nil {
		return err
	}

	zone := *destinationZone
	c.destinationZone = &zone
	return nil
}

func (c *CreateConsolidationCommand) setInitialStatus(initialStatus shipment.Status) error {
	if err := initialStatus.ValidateInitial(); err != nil {
		return err
	}

	c.initialStatus = initialStatus
	return nil
}
