// Package shipment provides domain entities and business logic for shipment
// consolidation management. It implements the Shipment aggregate root with
// lifecycle management, state transitions, and an append-only tracking history.
//
// The package includes:
//   - Shipment: The aggregate root holding pricing, item snapshots, and the event log
//   - Status: A state machine that enforces valid shipment status transitions
//   - TrackingEvent: An immutable, timestamped entry in the shipment's audit history
//   - ItemSnapshot: A copied-in record of a locker item consumed by the consolidation
//
// Key business rules:
//   - Shipments must have a valid unique identifier, locker code, and recipient
//   - Status moves strictly forward through the lifecycle; terminal states are final
//   - Every accepted status transition appends a tracking event; transitions are never silent
//   - Tracking events are append-only and returned sorted by timestamp ascending
//   - Item snapshots are copies; later registry changes never alter a sealed shipment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
