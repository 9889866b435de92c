package tariff

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// ServiceTier represents a named shipping speed/price class.
// It is a value object that validates tier values coming from
// external sources and provides string representations for
// persistence and display.
type ServiceTier int

const (
	// UnknownTier represents an invalid or undefined service tier.
	// This value (0) helps catch uninitialized ServiceTier values.
	UnknownTier ServiceTier = iota

	// Air is the standard air-freight tier.
	Air

	// Maritime is the slow, cheap sea-freight tier.
	Maritime

	// Express is the fastest and most expensive tier.
	Express
)

// getTierStrings returns a map of ServiceTier values to their string representations.
// All tiers are included for string conversion.
func getTierStrings() map[ServiceTier]string {
	return map[ServiceTier]string{
		UnknownTier: "Unknown",
		Air:         "Air",
		Maritime:    "Maritime",
		Express:     "Express",
	}
}

// getValidTierStrings returns a map of only valid ServiceTier values.
// Only valid tiers are included to support validation.
func getValidTierStrings() map[ServiceTier]string {
	//nolint:exhaustive // UnknownTier is intentionally excluded as it's invalid
	return map[ServiceTier]string{
		Air:      "Air",
		Maritime: "Maritime",
		Express:  "Express",
	}
}

// Validate checks if the ServiceTier value is valid.
//
// Valid tiers are: Air, Maritime, Express.
// UnknownTier (0) and any other values are invalid.
func (s ServiceTier) Validate() error {
	if _, ok := getValidTierStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("serviceTier",
			fmt.Errorf("%d is not a valid service tier", s))
	}
	return nil
}

// String returns the human-readable name of the service tier.
// Returns "Unknown" for invalid tier values.
// This method implements the fmt.Stringer interface.
func (s ServiceTier) String() string {
	if str, ok := getTierStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ServiceTierFromString parses a service tier from its string representation.
// The comparison is exact ("Air", "Maritime", "Express").
// Returns an error for unrecognized names, including the empty string.
func ServiceTierFromString(s string) (ServiceTier, error) {
	for tier, str := range getValidTierStrings() {
		if str == s {
			return tier, nil
		}
	}
	return UnknownTier, errs.NewValueIsInvalidErrorWithCause("serviceTier",
		fmt.Errorf("%q is not a valid service tier", s))
}
