package shipment

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/tariff"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrRecipientIsRequired is returned when attempting to create a shipment
	// without a recipient name.
	ErrRecipientIsRequired = errs.NewValueIsRequiredError("recipientName")
)

// Shipment represents a consolidation: a single billable shipment formed by
// grouping one or more locker items. It is the aggregate root that manages the
// shipment lifecycle from creation through booking and transit to a terminal
// state, and exclusively owns its ordered tracking event history.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier, locker code, and recipient name
//   - Total weight equals the sum of the constituent item snapshot weights
//   - Item snapshots are copies; the aggregate never references registry items
//   - Status transitions follow the rules enforced by Status.TransitionTo
//   - Every accepted transition bumps lastUpdate and appends a tracking event
//   - Tracking events are append-only; terminal states still accept appends
//
// Only status, lastUpdate, and the event log are mutated after creation.
// Shipments are never deleted; terminal states are retained for audit.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// lockerCode identifies the locker the consolidation was built from
	lockerCode string

	// recipientName is the person the shipment is addressed to
	recipientName string

	// requestID is the client-supplied identifier the consolidation was
	// created under, used to deduplicate retried requests
	requestID string

	// serviceTier is the shipping speed/price class the shipment was priced at
	serviceTier tariff.ServiceTier

	// destinationZone is the surcharge zone, nil for flat per-kg routes
	destinationZone *tariff.Zone

	// totalWeight is the sum of the constituent item weights
	totalWeight kernel.Weight

	// totalPrice is the quoted shipping cost, rounded to 2 decimals
	totalPrice float64

	// status is the current state in the shipment lifecycle
	status Status

	// items holds the copied-in snapshots of the consumed locker items
	items []ItemSnapshot

	// events holds the tracking history in insertion order
	events []TrackingEvent

	// createdAt is when the consolidation was built
	createdAt time.Time

	// lastUpdate is when the status last changed
	lastUpdate time.Time

	// isConstructed ensures the shipment was created via a factory method
	isConstructed bool
}

// NewShipment creates a new Shipment with validation. This is the only way to
// create a valid shipment for a freshly built consolidation.
//
// The initial status must be Draft or ReadyToBook; lastUpdate starts equal to
// createdAt and the event log starts with a single creation event.
func NewShipment(
	id kernel.UUID,
	lockerCode string,
	recipientName string,
	serviceTier tariff.ServiceTier,
	destinationZone *tariff.Zone,
	items []ItemSnapshot,
	totalWeight kernel.Weight,
	totalPrice float64,
	initialStatus Status,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
		createdAt:     createdAt,
		lastUpdate:    createdAt,
	}

	if err := errors.Join(
		s.setID(id),
		s.setLockerCode(lockerCode),
		s.setRecipientName(recipientName),
		s.setServiceTier(serviceTier),
		s.setDestinationZone(destinationZone),
		s.setItems(items),
		s.setTotalWeight(totalWeight),
		s.setTotalPrice(totalPrice),
		s.setInitialStatus(initialStatus),
	); err != nil {
		return nil, err
	}

	created, err := NewTrackingEvent(createdAt, "",
		fmt.Sprintf("consolidation created from locker %s in status %s", lockerCode, initialStatus))
	if err != nil {
		return nil, err
	}
	s.events = append(s.events, created)

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including its
// status, event history, and timestamps. Unlike NewShipment it accepts any
// valid status and does not synthesize a creation event.
func RestoreShipment(
	id kernel.UUID,
	lockerCode string,
	recipientName string,
	serviceTier tariff.ServiceTier,
	destinationZone *tariff.Zone,
	items []ItemSnapshot,
	totalWeight kernel.Weight,
	totalPrice float64,
	status Status,
	events []TrackingEvent,
	createdAt time.Time,
	lastUpdate time.Time,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
		createdAt:     createdAt,
		lastUpdate:    lastUpdate,
	}

	if err := errors.Join(
		s.setID(id),
		s.setLockerCode(lockerCode),
		s.setRecipientName(recipientName),
		s.setServiceTier(serviceTier),
		s.setDestinationZone(destinationZone),
		s.setItems(items),
		s.setTotalWeight(totalWeight),
		s.setTotalPrice(totalPrice),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	s.status = status

	for _, event := range events {
		if err := event.Validate(); err != nil {
			return nil, err
		}
	}
	s.events = append(s.events, events...)

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// factory method. This prevents bypassing validation by directly instantiating
// the struct and should be called when reconstructing shipments from persistence.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// LockerCode returns the code of the locker the consolidation was built from.
func (s *Shipment) LockerCode() string {
	return s.lockerCode
}

// RecipientName returns the recipient the shipment is addressed to.
func (s *Shipment) RecipientName() string {
	return s.recipientName
}

// RequestID returns the client request identifier the consolidation was
// created under, or an empty string if none was recorded.
func (s *Shipment) RequestID() string {
	return s.requestID
}

// AssignRequestID records the client request identifier the consolidation was
// created under. Set once at creation time and restored from persistence.
func (s *Shipment) AssignRequestID(requestID string) {
	s.requestID = requestID
}

// ServiceTier returns the tier the shipment was priced at.
func (s *Shipment) ServiceTier() tariff.ServiceTier {
	return s.serviceTier
}

// DestinationZone returns the surcharge zone, or nil for flat per-kg routes.
func (s *Shipment) DestinationZone() *tariff.Zone {
	if s.destinationZone == nil {
		return nil
	}
	zone := *s.destinationZone
	return &zone
}

// TotalWeight returns the sum of the constituent item weights.
func (s *Shipment) TotalWeight() kernel.Weight {
	return s.totalWeight
}

// TotalPrice returns the quoted shipping cost.
func (s *Shipment) TotalPrice() float64 {
	return s.totalPrice
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns when the consolidation was built.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// LastUpdate returns when the status last changed.
func (s *Shipment) LastUpdate() time.Time {
	return s.lastUpdate
}

// Items returns a copy of the item snapshots in consolidation order.
func (s *Shipment) Items() []ItemSnapshot {
	items := make([]ItemSnapshot, len(s.items))
	copy(items, s.items)
	return items
}

// Events returns a copy of the tracking history sorted by timestamp ascending,
// regardless of insertion order. Operators may back-fill an event after the
// fact; equal timestamps keep their insertion order.
func (s *Shipment) Events() []TrackingEvent {
	events := make([]TrackingEvent, len(s.events))
	copy(events, s.events)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp().Before(events[j].Timestamp())
	})
	return events
}

// EventsInInsertionOrder returns a copy of the tracking history in the order
// events were appended. Persistence uses this to store the append-only log
// without reordering it.
func (s *Shipment) EventsInInsertionOrder() []TrackingEvent {
	events := make([]TrackingEvent, len(s.events))
	copy(events, s.events)
	return events
}

// ChangeStatus transitions the shipment to a new status.
//
// The transition rules are enforced by Status.TransitionTo: the lifecycle only
// moves forward, terminal states accept nothing further, and Cancelled /
// Returned / Rejected follow their reachability rules. An accepted transition
// updates lastUpdate to at and appends a system tracking event describing the
// change, so a transition is never silent.
func (s *Shipment) ChangeStatus(next Status, at time.Time) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	event, err := NewTrackingEvent(at, "",
		fmt.Sprintf("status changed from %s to %s", s.status, newStatus))
	if err != nil {
		return err
	}

	s.status = newStatus
	s.lastUpdate = at
	s.events = append(s.events, event)
	return nil
}

// AppendEvent appends a tracking event to the shipment's history.
//
// The log itself never rejects appends: back-filled timestamps are allowed and
// shipments in terminal states still accept events (a delivered shipment may
// receive a clarifying note). No update or delete operation exists.
func (s *Shipment) AppendEvent(event TrackingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	s.events = append(s.events, event)
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setLockerCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("lockerCode")
	}
	s.lockerCode = code
	return nil
}

func (s *Shipment) setRecipientName(name string) error {
	if name == "" {
		return ErrRecipientIsRequired
	}
	s.recipientName = name
	return nil
}

func (s *Shipment) setServiceTier(tier tariff.ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	s.serviceTier = tier
	return nil
}

func (s *Shipment) setDestinationZone(zone *tariff.Zone) error {
	if zone == nil {
		return nil
	}
	if err := zone.Validate(); err != nil {
		return err
	}
	z := *zone
	s.destinationZone = &z
	return nil
}

func (s *Shipment) setItems(items []ItemSnapshot) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = make([]ItemSnapshot, len(items))
	copy(s.items, items)
	return nil
}

func (s *Shipment) setTotalWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	s.totalWeight = weight
	return nil
}

func (s *Shipment) setTotalPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%v is negative", price))
	}
	s.totalPrice = price
	return nil
}

func (s *Shipment) setInitialStatus(status Status) error {
	if err := status.ValidateInitial(); err != nil {
		return err
	}
	s.status = status
	return nil
}
