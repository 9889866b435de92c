package tariff

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

// ErrZoneIsNotConstructed is returned when attempting to use an improperly initialized Zone.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError(
	"zone must be created via NewZone constructor")

// Zone identifies a destination surcharge zone. Zones are indexed from zero;
// the index feeds the base-price component of a quote. Zone is an immutable
// value object - use NewZone to create instances.
type Zone struct { //nolint:recvcheck //using for validation
	index int
	guard guard.ConstructorGuard
}

// NewZone creates a new Zone with the given index.
// The index must be zero or positive.
func NewZone(index int) (Zone, error) {
	if index < 0 {
		return Zone{}, errs.NewValueIsInvalidErrorWithCause("zoneIndex",
			fmt.Errorf("%d is negative", index))
	}

	return Zone{
		index: index,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Zone was properly constructed using the constructor.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Index returns the zone index.
func (z Zone) Index() int {
	return z.index
}

// String returns a human-readable representation, e.g. "Zone(2)".
func (z Zone) String() string {
	return fmt.Sprintf("Zone(%d)", z.index)
}
