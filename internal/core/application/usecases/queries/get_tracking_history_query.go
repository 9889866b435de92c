package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery retrieves a shipment's tracking events ordered by
// event time, oldest first. Back-filled events slot into their chronological
// position regardless of when they were recorded.
//
// Example:
//
//	query, err := NewGetTrackingHistoryQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetTrackingHistoryQueryHandler(db)
//	events, err := handler.Handle(ctx, query)
type GetTrackingHistoryQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query to retrieve a shipment's tracking history.
func NewGetTrackingHistoryQuery(shipmentID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}

	return GetTrackingHistoryQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackingHistoryQueryIsNotConstructed if validation fails.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment whose history is requested.
func (q GetTrackingHistoryQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// TrackingEventResponse represents one entry of a shipment's tracking history.
type TrackingEventResponse struct {
	Timestamp time.Time
	Location  string
	Details   string
}
