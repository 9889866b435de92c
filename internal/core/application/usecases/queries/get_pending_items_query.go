package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetPendingItemsQueryIsNotConstructed = errors.New(
		"GetPendingItemsQuery must be created via NewGetPendingItemsQuery constructor",
	)
	ErrLockerCodeIsRequired = errors.New("locker code is required")
)

// GetPendingItemsQuery retrieves the items waiting in a locker, in arrival
// order. An empty result means the locker has nothing to consolidate.
//
// Example:
//
//	query, err := NewGetPendingItemsQuery("XG15STV")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetPendingItemsQueryHandler(db)
//	items, err := handler.Handle(ctx, query)
type GetPendingItemsQuery struct {
	lockerCode string

	guard guard.ConstructorGuard
}

// NewGetPendingItemsQuery creates a query to list a locker's pending items.
func NewGetPendingItemsQuery(lockerCode string) (GetPendingItemsQuery, error) {
	if lockerCode == "" {
		return GetPendingItemsQuery{}, ErrLockerCodeIsRequired
	}

	return GetPendingItemsQuery{
		lockerCode: lockerCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingItemsQueryIsNotConstructed if validation fails.
func (q GetPendingItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingItemsQueryIsNotConstructed)
}

// LockerCode returns the code of the locker being inspected.
func (q GetPendingItemsQuery) LockerCode() string {
	return q.lockerCode
}

// PendingItemResponse represents one item waiting in a locker.
type PendingItemResponse struct {
	ID          kernel.UUID
	LockerCode  string
	Description string
	WeightKg    float64
}
