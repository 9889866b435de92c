package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// A shipment is stored together with its item snapshots and its append-only
// tracking event log.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage, including its item
	// snapshots and initial tracking events.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate. Tracking
	// events already stored are never rewritten; only events appended since
	// the last load are inserted.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with snapshots and tracking events.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByRequestID retrieves the shipment created for the given client
	// request identifier, if any. Used to make consolidation idempotent.
	GetByRequestID(ctx context.Context, requestID string) (*shipment.Shipment, error)
}
