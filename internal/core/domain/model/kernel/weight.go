package kernel

import (
	"fmt"
	"math"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
// Weights must be created using the NewWeight constructor to ensure validity.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight represents a mass in kilograms. It is an immutable value object that
// guarantees the stored value is finite and non-negative. The zero value of
// Weight is invalid and will fail validation - use NewWeight to create instances.
//
// Example:
//
//	w, err := kernel.NewWeight(5.5)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("item weighs %s", w) // Output: item weighs 5.50 kg
type Weight struct { //nolint:recvcheck //using for validation
	kg    float64
	guard guard.ConstructorGuard
}

// NewWeight creates a new Weight from a kilogram value.
// The value must be finite and greater than or equal to zero.
// Returns an error if the value is negative, NaN, or infinite.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%v is not a finite number", kg))
	}
	if kg < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%v is negative", kg))
	}

	return Weight{
		kg:    kg,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Weight was properly constructed using the constructor.
// The zero value of Weight is invalid and will fail this validation.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Kg returns the weight value in kilograms.
// The returned value is guaranteed to be finite and non-negative
// for properly constructed Weight instances.
func (w Weight) Kg() float64 {
	return w.kg
}

// Add returns a new Weight holding the sum of the two weights.
// Both operands must be properly constructed.
func (w Weight) Add(other Weight) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	if err := other.Validate(); err != nil {
		return Weight{}, err
	}

	return NewWeight(w.kg + other.kg)
}

// IsEqual compares two weights by value.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg == other.kg
}

// String returns a human-readable representation of the weight, e.g. "5.50 kg".
// This method implements the fmt.Stringer interface.
func (w Weight) String() string {
	return fmt.Sprintf("%.2f kg", w.kg)
}
