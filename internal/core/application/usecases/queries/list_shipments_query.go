package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

const (
	// DefaultPageSize is used when the caller does not specify one.
	DefaultPageSize = 20

	// MaxPageSize caps a single page of shipments.
	MaxPageSize = 100
)

// ListShipmentsQuery retrieves a page of shipments, optionally filtered by
// status and/or locker code. Results are ordered by creation time, newest first.
//
// Example:
//
//	status := shipment.InTransit
//	query, err := NewListShipmentsQuery(&status, "", 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListShipmentsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d shipments\n", len(page.Shipments), page.Total)
type ListShipmentsQuery struct {
	status     *shipment.Status
	lockerCode string
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a query for a page of shipments.
// A nil status and an empty locker code mean "no filter". Page numbering
// starts at 1; a zero pageSize falls back to DefaultPageSize.
func NewListShipmentsQuery(
	status *shipment.Status,
	lockerCode string,
	page int,
	pageSize int,
) (ListShipmentsQuery, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	if page < 1 {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, int(^uint(0)>>1))
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, MaxPageSize)
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}

	listQuery := ListShipmentsQuery{
		lockerCode: lockerCode,
		page:       page,
		pageSize:   pageSize,
		guard:      guard.NewConstructorGuard(),
	}
	if status != nil {
		s := *status
		listQuery.status = &s
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

// Status returns the status filter, or nil when not filtering by status.
func (q ListShipmentsQuery) Status() *shipment.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

// LockerCode returns the locker code filter, or an empty string when not filtering.
func (q ListShipmentsQuery) LockerCode() string {
	return q.lockerCode
}

// Page returns the 1-based page number.
func (q ListShipmentsQuery) Page() int {
	return q.page
}

// PageSize returns the number of shipments per page.
func (q ListShipmentsQuery) PageSize() int {
	return q.pageSize
}

// ShipmentSummaryResponse represents one shipment in a listing.
type ShipmentSummaryResponse struct {
	ID            kernel.UUID
	LockerCode    string
	RecipientName string
	ServiceTier   string
	TotalWeightKg float64
	TotalPrice    float64
	Status        string
	CreatedAt     time.Time
	LastUpdate    time.Time
}

// ListShipmentsQueryResponse represents one page of shipments together with
// the total number of matches across all pages.
type ListShipmentsQueryResponse struct {
	Total     int64
	Page      int
	PageSize  int
	Shipments []ShipmentSummaryResponse
}
