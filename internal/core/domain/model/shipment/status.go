package shipment

import (
	"errors"
	"fmt"

	"parcelhub/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is returned when a status change would move the
	// shipment backward, re-enter the current state, or reach a state that is
	// unreachable from the current one.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrShipmentInTerminalState is returned when a status change is requested
	// on a shipment whose status accepts no further transitions.
	ErrShipmentInTerminalState = errors.New("shipment is in a terminal state")
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions so that the audit
// trail and the customer-facing tracking page stay meaningful: status never
// moves backward and terminal states are final.
//
// State transitions:
//
//	Draft ──> ReadyToBook ──> Booked ──> InCustoms ──> InTransit ──> Delivered
//	                              └────────────────────────┘
//	                               (customs leg is optional)
//
// Cancelled is reachable from any non-terminal state. Returned and Rejected
// are alternate terminal outcomes reachable from InCustoms or InTransit.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Draft is the initial status of an unconfirmed consolidation.
	Draft

	// ReadyToBook indicates an operator confirmed the consolidation for booking.
	ReadyToBook

	// Booked indicates the shipment has been booked with a carrier.
	Booked

	// InCustoms indicates the shipment is undergoing customs clearance.
	// This leg is optional; domestic shipments skip it.
	InCustoms

	// InTransit indicates the shipment is on its way to the recipient.
	InTransit

	// Delivered indicates the shipment reached the recipient. Terminal.
	Delivered

	// Cancelled indicates the shipment was cancelled before completion. Terminal.
	Cancelled

	// Returned indicates the shipment was sent back to the origin. Terminal.
	Returned

	// Rejected indicates the shipment was refused in transit or customs. Terminal.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Draft:         "draft",
		ReadyToBook:   "ready_to_book",
		Booked:        "booked",
		InCustoms:     "in_customs",
		InTransit:     "in_transit",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
		Returned:      "returned",
		Rejected:      "rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:       "draft",
		ReadyToBook: "ready_to_book",
		Booked:      "booked",
		InCustoms:   "in_customs",
		InTransit:   "in_transit",
		Delivered:   "delivered",
		Cancelled:   "cancelled",
		Returned:    "returned",
		Rejected:    "rejected",
	}
}

// forwardRanks orders the states of the main lifecycle. A transition within
// the main lifecycle is only accepted when the target rank is strictly
// greater than the current rank, so the customs leg may be skipped but the
// lifecycle never moves backward or re-enters a state.
func forwardRanks() map[Status]int {
	return map[Status]int{
		Draft:       1,
		ReadyToBook: 2,
		Booked:      3,
		InCustoms:   4,
		InTransit:   5,
		Delivered:   6,
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are every declared state except UnknownStatus.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "ready_to_book".
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its wire name.
// Returns an error for unrecognized names, including the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status accepts no further transitions.
// Terminal statuses: Delivered, Cancelled, Returned, Rejected.
func (s Status) IsTerminal() bool {
	switch s {
	case Delivered, Cancelled, Returned, Rejected:
		return true
	default:
		return false
	}
}

// ValidateInitial checks if the status is an allowed starting state for a
// freshly built consolidation. Operators either confirm the consolidation
// (ReadyToBook) or park it unconfirmed (Draft).
func (s Status) ValidateInitial() error {
	if s != Draft && s != ReadyToBook {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid initial status", s))
	}
	return nil
}

// TransitionTo validates a transition from the current status to next and
// returns next on success.
//
// Rules:
//   - next must be a valid status
//   - terminal statuses accept no transitions (ErrShipmentInTerminalState)
//   - Cancelled is reachable from any non-terminal status
//   - Returned and Rejected are reachable only from InCustoms or InTransit
//   - within the main lifecycle, the target rank must be strictly greater
//     than the current rank (ErrInvalidTransition otherwise)
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return UnknownStatus, err
	}
	if err := next.Validate(); err != nil {
		return UnknownStatus, err
	}

	if s.IsTerminal() {
		return UnknownStatus, fmt.Errorf("%s accepts no further transitions: %w",
			s, ErrShipmentInTerminalState)
	}

	switch next {
	case Cancelled:
		return Cancelled, nil
	case Returned, Rejected:
		if s != InCustoms && s != InTransit {
			return UnknownStatus, fmt.Errorf("%s -> %s: %w", s, next, ErrInvalidTransition)
		}
		return next, nil
	default:
		ranks := forwardRanks()
		if ranks[next] <= ranks[s] {
			return UnknownStatus, fmt.Errorf("%s -> %s: %w", s, next, ErrInvalidTransition)
		}
		return next, nil
	}
}
