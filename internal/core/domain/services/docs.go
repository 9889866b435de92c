// Package services contains domain services that coordinate behavior across
// aggregates without belonging to any single one.
//
// The package includes:
//   - ConsolidationBuilder: groups a locker's pending items into a priced
//     shipment using the rate table
//
// Domain services are stateless; transactional concerns (removing the consumed
// items from the registry together with persisting the new shipment) belong to
// the application layer.
package services
