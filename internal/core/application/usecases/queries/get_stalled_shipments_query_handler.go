package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalledShipmentsQueryHandler retrieves stalled shipments from the database.
type GetStalledShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledShipmentsQueryHandler creates a handler for stalled shipment queries.
// Requires a GORM database connection for query execution.
func NewGetStalledShipmentsQueryHandler(db *gorm.DB) GetStalledShipmentsQueryHandler {
	return GetStalledShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve non-terminal shipments whose last
// status change is older than the query's inactivity window.
func (h GetStalledShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetStalledShipmentsQuery,
) ([]StalledShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.StalledAfter())
	stalled := make([]StalledShipmentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			locker_code,
			status,
			last_update
		FROM shipments
		WHERE status NOT IN (?, ?, ?, ?)
		  AND last_update < ?
		ORDER BY last_update
	`, int(shipment.Delivered), int(shipment.Cancelled),
		int(shipment.Returned), int(shipment.Rejected), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp   StalledShipmentResponse
			id     uuid.UUID
			status int
		)

		if err = rows.Scan(&id, &resp.LockerCode, &status, &resp.LastUpdate); err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID
		resp.Status = shipment.Status(status).String()
		stalled = append(stalled, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stalled, nil
}
