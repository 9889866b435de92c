// Package tariff provides the pricing reference data for shipment consolidation.
//
// The package includes:
//   - ServiceTier: an enum of shipping speed/price classes (Air, Maritime, Express)
//   - Zone: a value object identifying a destination surcharge zone
//   - RateEntry: immutable per-tier pricing reference data
//   - RateTable: the lookup and quoting engine combining base and per-weight pricing
//
// A quote has two independent components. The per-weight component is
// perKg(tier) * totalWeight and applies to every shipment. The base component
// baseFloor + zoneIndex * zoneIncrement applies only when a destination zone is
// supplied; flat per-kilogram routes omit the zone and pay no base charge.
// All amounts are rounded to two decimal places.
//
// RateTable is immutable after construction and safe for concurrent reads.
package tariff
