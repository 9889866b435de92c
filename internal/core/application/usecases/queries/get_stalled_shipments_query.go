package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrGetStalledShipmentsQueryIsNotConstructed = errors.New(
	"GetStalledShipmentsQuery must be created via NewGetStalledShipmentsQuery constructor",
)

// GetStalledShipmentsQuery retrieves active shipments whose status has not
// changed for longer than the given duration. Used by the background monitor
// to surface shipments that may be stuck in customs or transit.
//
// Example:
//
//	query, err := NewGetStalledShipmentsQuery(72 * time.Hour)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetStalledShipmentsQueryHandler(db)
//	stalled, err := handler.Handle(ctx, query)
type GetStalledShipmentsQuery struct {
	stalledAfter time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalledShipmentsQuery creates a query for shipments without a status
// change in the given duration. The duration must be positive.
func NewGetStalledShipmentsQuery(stalledAfter time.Duration) (GetStalledShipmentsQuery, error) {
	if stalledAfter <= 0 {
		return GetStalledShipmentsQuery{}, errs.NewValueIsInvalidError("stalledAfter")
	}

	return GetStalledShipmentsQuery{
		stalledAfter: stalledAfter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalledShipmentsQueryIsNotConstructed if validation fails.
func (q GetStalledShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledShipmentsQueryIsNotConstructed)
}

// StalledAfter returns the inactivity window after which a shipment counts as stalled.
func (q GetStalledShipmentsQuery) StalledAfter() time.Duration {
	return q.stalledAfter
}

// StalledShipmentResponse represents a shipment flagged as stalled.
type StalledShipmentResponse struct {
	ID         kernel.UUID
	LockerCode string
	Status     string
	LastUpdate time.Time
}
