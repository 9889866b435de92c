package queries

import (
	"context"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves pages of shipments from the database.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for shipment listings.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of shipments, newest first.
// The response carries the total match count so callers can page through.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) (ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, int(*query.Status()))
	}
	if query.LockerCode() != "" {
		where += " AND locker_code = ?"
		args = append(args, query.LockerCode())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM shipments WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	resp := ListShipmentsQueryResponse{
		Total:     total,
		Page:      query.Page(),
		PageSize:  query.PageSize(),
		Shipments: make([]ShipmentSummaryResponse, 0),
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			locker_code,
			recipient_name,
			service_tier,
			total_weight_kg,
			total_price,
			status,
			created_at,
			last_update
		FROM shipments
		WHERE `+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return ListShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			summary     ShipmentSummaryResponse
			id          uuid.UUID
			serviceTier int
			status      int
			createdAt   time.Time
			lastUpdate  time.Time
		)

		err = rows.Scan(
			&id,
			&summary.LockerCode,
			&summary.RecipientName,
			&serviceTier,
			&summary.TotalWeightKg,
			&summary.TotalPrice,
			&status,
			&createdAt,
			&lastUpdate,
		)
		if err != nil {
			return ListShipmentsQueryResponse{}, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListShipmentsQueryResponse{}, idErr
		}
		summary.ID = shipmentID
		summary.ServiceTier = tariff.ServiceTier(serviceTier).String()
		summary.Status = shipment.Status(status).String()
		summary.CreatedAt = createdAt
		summary.LastUpdate = lastUpdate
		resp.Shipments = append(resp.Shipments, summary)
	}

	if err = rows.Err(); err != nil {
		return ListShipmentsQueryResponse{}, err
	}

	return resp, nil
}
