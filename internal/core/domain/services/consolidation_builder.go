package services

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/locker"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"
)

// ErrEmptyLocker is returned when a consolidation is requested for a locker
// that has no pending items. Consolidating nothing would produce a zero-weight,
// zero-price shipment, which is never intended.
var ErrEmptyLocker = errors.New("locker has no pending items")

// ConsolidationBuilder is a domain service that groups a locker's pending
// items into a single billable shipment.
//
// Key responsibilities:
//   - Summing the weights of the selected items
//   - Pricing the shipment through the rate table
//   - Copying item snapshots into the new shipment
//
// The builder never touches the registry itself; the caller removes the
// consumed items in the same transaction that persists the shipment.
//
// Example usage:
//
//	builder := services.NewConsolidationBuilder(tariff.NewDefaultRateTable())
//	s, err := builder.Build(kernel.NewUUID(), "XG15STV", "Ada Morales",
//	    tariff.Air, nil, items, shipment.ReadyToBook, time.Now())
//	if errors.Is(err, services.ErrEmptyLocker) {
//	    // Nothing to consolidate for this locker
//	}
type ConsolidationBuilder struct {
	rates *tariff.RateTable
}

// NewConsolidationBuilder creates a builder pricing against the given rate table.
// A nil table falls back to the default rates.
func NewConsolidationBuilder(rates *tariff.RateTable) *ConsolidationBuilder {
	if rates == nil {
		rates = tariff.NewDefaultRateTable()
	}
	return &ConsolidationBuilder{rates: rates}
}

// Build groups the given pending items into a priced shipment.
//
// Fails with ErrEmptyLocker when items is empty, with the rate table's error
// when the tier is not registered, and with the shipment's own validation
// errors (missing recipient, invalid initial status). The total weight is the
// sum of the item weights and the total price is the rate table quote for that
// weight, tier, and optional destination zone.
func (b *ConsolidationBuilder) Build(
	id kernel.UUID,
	lockerCode string,
	recipientName string,
	serviceTier tariff.ServiceTier,
	destinationZone *tariff.Zone,
	items []*locker.Item,
	initialStatus shipment.Status,
	now time.Time,
) (*shipment.Shipment, error) {
	if len(items) == 0 {
		return nil, ErrEmptyLocker
	}

	totalWeight, err := kernel.NewWeight(0)
	if err != nil {
		return nil, err
	}

	snapshots := make([]shipment.ItemSnapshot, 0, len(items))
	for _, item := range items {
		snapshot, snapErr := shipment.SnapshotOf(item)
		if snapErr != nil {
			return nil, snapErr
		}
		snapshots = append(snapshots, snapshot)

		totalWeight, err = totalWeight.Add(item.Weight())
		if err != nil {
			return nil, err
		}
	}

	totalPrice, err := b.rates.Quote(serviceTier, destinationZone, totalWeight)
	if err != nil {
		return nil, err
	}

	return shipment.NewShipment(
		id,
		lockerCode,
		recipientName,
		serviceTier,
		destinationZone,
		snapshots,
		totalWeight,
		totalPrice,
		initialStatus,
		now,
	)
}
