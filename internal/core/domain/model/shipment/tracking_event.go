package shipment

import (
	"errors"
	"time"

	"parcelhub/internal/pkg/errs"
)

var (
	// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
	// created through the NewTrackingEvent constructor.
	ErrTrackingEventIsNotConstructed = errors.New(
		"TrackingEvent must be created via NewTrackingEvent constructor")

	// ErrEventDetailsAreRequired is returned when attempting to create a
	// tracking event without a details text.
	ErrEventDetailsAreRequired = errs.NewValueIsRequiredError("details")

	// ErrEventTimestampIsRequired is returned when attempting to create a
	// tracking event with a zero timestamp.
	ErrEventTimestampIsRequired = errs.NewValueIsRequiredError("timestamp")
)

// TrackingEvent is one timestamped, immutable entry in a shipment's audit and
// status history. Events are owned exclusively by their parent shipment and
// are append-only: corrections are made by appending a clarifying event, never
// by editing or removing an existing one.
//
// The location is optional; system-generated transition events carry only a
// details text.
type TrackingEvent struct {
	timestamp     time.Time
	location      string
	details       string
	isConstructed bool
}

// NewTrackingEvent creates a tracking event with validation.
// The timestamp must be non-zero and the details text non-empty;
// location may be empty.
func NewTrackingEvent(timestamp time.Time, location string, details string) (TrackingEvent, error) {
	if timestamp.IsZero() {
		return TrackingEvent{}, ErrEventTimestampIsRequired
	}
	if details == "" {
		return TrackingEvent{}, ErrEventDetailsAreRequired
	}

	return TrackingEvent{
		timestamp:     timestamp,
		location:      location,
		details:       details,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created through the constructor.
func (e TrackingEvent) Validate() error {
	if !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// Timestamp returns when the event occurred.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// Location returns where the event occurred. May be empty for
// system-generated events.
func (e TrackingEvent) Location() string {
	return e.location
}

// Details returns the event description.
func (e TrackingEvent) Details() string {
	return e.details
}
