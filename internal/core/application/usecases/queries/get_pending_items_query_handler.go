package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingItemsQueryHandler retrieves a locker's pending items from the database.
type GetPendingItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingItemsQueryHandler creates a handler for pending item queries.
// Requires a GORM database connection for query execution.
func NewGetPendingItemsQueryHandler(db *gorm.DB) GetPendingItemsQueryHandler {
	return GetPendingItemsQueryHandler{db: db}
}

// Handle executes the query to list the locker's pending items in arrival order.
// An unknown locker code yields an empty list, not an error.
func (h GetPendingItemsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingItemsQuery,
) ([]PendingItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]PendingItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			locker_code,
			description,
			weight_kg
		FROM locker_items
		WHERE locker_code = ?
		ORDER BY seq
	`, query.LockerCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item PendingItemResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &item.LockerCode, &item.Description, &item.WeightKg); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
