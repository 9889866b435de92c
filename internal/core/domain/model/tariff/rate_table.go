package tariff

import (
	"errors"
	"fmt"
	"math"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrTierIsNotRegistered is returned when a quote or lookup is requested for a
// service tier that has no entry in the rate table.
var ErrTierIsNotRegistered = errors.New("service tier is not registered in the rate table")

// Default pricing constants. Per-kilogram rates per tier plus the zone base
// pricing parameters shared by all tiers.
const (
	defaultAirPerKg      = 4.50
	defaultMaritimePerKg = 2.00
	defaultExpressPerKg  = 7.25

	defaultBaseFloor     = 5.00
	defaultZoneIncrement = 1.50
)

// RateEntry holds the immutable pricing reference data for one service tier:
// the per-kilogram price and a human-readable transit time descriptor.
// Entries are looked up, never mutated.
type RateEntry struct {
	tier    ServiceTier
	perKg   float64
	transit string
}

// NewRateEntry creates a rate entry for a service tier.
// The per-kilogram price must be zero or positive.
func NewRateEntry(tier ServiceTier, perKg float64, transit string) (RateEntry, error) {
	if err := tier.Validate(); err != nil {
		return RateEntry{}, err
	}
	if perKg < 0 || math.IsNaN(perKg) || math.IsInf(perKg, 0) {
		return RateEntry{}, errs.NewValueIsInvalidErrorWithCause("pricePerKg",
			fmt.Errorf("%v is not a valid price", perKg))
	}

	return RateEntry{tier: tier, perKg: perKg, transit: transit}, nil
}

// Tier returns the service tier this entry prices.
func (e RateEntry) Tier() ServiceTier {
	return e.tier
}

// PerKg returns the per-kilogram price for the tier.
func (e RateEntry) PerKg() float64 {
	return e.perKg
}

// Transit returns the transit time descriptor, e.g. "5-7 days".
func (e RateEntry) Transit() string {
	return e.transit
}

// RateTable maps service tiers to their rate entries and carries the zone
// base pricing parameters. The table is immutable after construction and
// therefore safe for concurrent reads.
type RateTable struct {
	entries       map[ServiceTier]RateEntry
	baseFloor     float64
	zoneIncrement float64
}

// NewRateTable creates a rate table from the given entries.
// Duplicate entries for the same tier are rejected.
func NewRateTable(entries []RateEntry, baseFloor, zoneIncrement float64) (*RateTable, error) {
	if baseFloor < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseFloor",
			fmt.Errorf("%v is negative", baseFloor))
	}
	if zoneIncrement < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("zoneIncrement",
			fmt.Errorf("%v is negative", zoneIncrement))
	}

	table := &RateTable{
		entries:       make(map[ServiceTier]RateEntry, len(entries)),
		baseFloor:     baseFloor,
		zoneIncrement: zoneIncrement,
	}

	for _, entry := range entries {
		if _, ok := table.entries[entry.Tier()]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("entries",
				fmt.Errorf("duplicate entry for tier %s", entry.Tier()))
		}
		table.entries[entry.Tier()] = entry
	}

	return table, nil
}

// NewDefaultRateTable creates the standard rate table:
// Air $4.50/kg (5-7 days), Maritime $2.00/kg (20-30 days),
// Express $7.25/kg (2-3 days), with a $5.00 base floor and
// $1.50 zone increment for zoned destinations.
func NewDefaultRateTable() *RateTable {
	air, _ := NewRateEntry(Air, defaultAirPerKg, "5-7 days")
	maritime, _ := NewRateEntry(Maritime, defaultMaritimePerKg, "20-30 days")
	express, _ := NewRateEntry(Express, defaultExpressPerKg, "2-3 days")

	table, _ := NewRateTable([]RateEntry{air, maritime, express},
		defaultBaseFloor, defaultZoneIncrement)
	return table
}

// Lookup returns the rate entry for a service tier.
// Fails with ErrTierIsNotRegistered if the tier has no entry.
func (t *RateTable) Lookup(tier ServiceTier) (RateEntry, error) {
	entry, ok := t.entries[tier]
	if !ok {
		return RateEntry{}, fmt.Errorf("%s: %w", tier, ErrTierIsNotRegistered)
	}
	return entry, nil
}

// BasePrice returns the zone-dependent base component of a quote.
// A nil zone means a flat per-kilogram route with no base charge.
func (t *RateTable) BasePrice(zone *Zone) (float64, error) {
	if zone == nil {
		return 0, nil
	}
	if err := zone.Validate(); err != nil {
		return 0, err
	}

	return t.baseFloor + float64(zone.Index())*t.zoneIncrement, nil
}

// Quote computes the total shipping price for a weight on a service tier,
// optionally bound to a destination zone, rounded to two decimal places.
//
//	price = base(zone) + perKg(tier) * weightKg
func (t *RateTable) Quote(tier ServiceTier, zone *Zone, total kernel.Weight) (float64, error) {
	if err := total.Validate(); err != nil {
		return 0, err
	}

	entry, err := t.Lookup(tier)
	if err != nil {
		return 0, err
	}

	base, err := t.BasePrice(zone)
	if err != nil {
		return 0, err
	}

	return Round2(base + entry.PerKg()*total.Kg()), nil
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
