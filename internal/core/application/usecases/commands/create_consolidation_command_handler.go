package commands

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/locker"
	"parcelhub/internal/core/domain/services"
	"parcelhub/internal/pkg/errs"
)

// CreateConsolidationCommandHandler handles the business logic for locker
// consolidation. Atomically builds and persists the shipment and removes the
// consumed items from the registry.
//
// The handler returns the ID of the resulting shipment: the freshly created
// one, or the previously created one when the request ID has been seen before.
//
// Example:
//
//	handler := NewCreateConsolidationCommandHandler(uowFactory, builder)
//	cmd, _ := NewCreateConsolidationCommand(kernel.NewUUID(), "req-8842",
//	    "XG15STV", "Ada Morales", tariff.Air, nil, shipment.ReadyToBook)
//
//	shipmentID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("consolidation failed: %w", err)
//	}
type CreateConsolidationCommandHandler struct {
	uowFactory UoWFactory
	builder    *services.ConsolidationBuilder
}

// NewCreateConsolidationCommandHandler creates a handler for consolidation operations.
// Requires a UoWFactory spanning both repositories and a ConsolidationBuilder
// for pricing and assembly.
func NewCreateConsolidationCommandHandler(
	uowFactory UoWFactory,
	builder *services.ConsolidationBuilder,
) CreateConsolidationCommandHandler {
	return CreateConsolidationCommandHandler{
		uowFactory: uowFactory,
		builder:    builder,
	}
}

// Handle processes the consolidation command.
//
// A request ID that was already consolidated short-circuits to the existing
// shipment's ID without touching the registry. Otherwise the handler loads the
// locker's pending items, builds the priced shipment, persists it, and removes
// the consumed items, all in one transaction.
func (h *CreateConsolidationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateConsolidationCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	existing, err := shipmentRepo.GetByRequestID(ctx, cmd.RequestID())
	if err == nil {
		return existing.ID(), nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	lockerRepo := uow.LockerItemRepository()
	items, err := lockerRepo.GetPendingByLocker(ctx, cmd.LockerCode())
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := h.builder.Build(
		cmd.ShipmentID(),
		cmd.LockerCode(),
		cmd.RecipientName(),
		cmd.ServiceTier(),
		cmd.DestinationZone(),
		items,
		cmd.InitialStatus(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}
	aggregate.AssignRequestID(cmd.RequestID())

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = lockerRepo.RemoveItems(ctx, itemIDs(items)); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}

func itemIDs(items []*locker.Item) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID())
	}
	return ids
}
