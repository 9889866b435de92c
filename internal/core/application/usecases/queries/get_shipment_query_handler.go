package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"
	"parcelhub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment read model from the database.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the query to retrieve the shipment and its item snapshots.
// Returns an object-not-found error when no shipment exists under the given ID.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var (
		id              uuid.UUID
		lockerCode      string
		recipientName   string
		serviceTier     int
		destinationZone sql.NullInt64
		totalWeightKg   float64
		totalPrice      float64
		status          int
		createdAt       time.Time
		lastUpdate      time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			locker_code,
			recipient_name,
			service_tier,
			destination_zone,
			total_weight_kg,
			total_price,
			status,
			created_at,
			last_update
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().String()).Row()

	err := row.Scan(
		&id,
		&lockerCode,
		&recipientName,
		&serviceTier,
		&destinationZone,
		&totalWeightKg,
		&totalPrice,
		&status,
		&createdAt,
		&lastUpdate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp := GetShipmentQueryResponse{
		ID:            shipmentID,
		LockerCode:    lockerCode,
		RecipientName: recipientName,
		ServiceTier:   tariff.ServiceTier(serviceTier).String(),
		TotalWeightKg: totalWeightKg,
		TotalPrice:    totalPrice,
		Status:        shipment.Status(status).String(),
		CreatedAt:     createdAt,
		LastUpdate:    lastUpdate,
	}
	if destinationZone.Valid {
		zone := int(destinationZone.Int64)
		resp.DestinationZone = &zone
	}

	items, err := h.loadItems(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetShipmentQueryHandler) loadItems(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]ShipmentItemResponse, error) {
	items := make([]ShipmentItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			description,
			weight_kg
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY item_id
	`, shipmentID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ShipmentItemResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &item.Description, &item.WeightKg); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ItemID = itemID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
