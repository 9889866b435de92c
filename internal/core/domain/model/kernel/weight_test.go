package kernel_test

import (
	"math"
	"testing"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight from valid value", func(t *testing.T) {
		w, err := kernel.NewWeight(5.5)

		require.NoError(t, err)
		assert.InDelta(t, 5.5, w.Kg(), 0.0001)
		require.NoError(t, w.Validate())
	})

	t.Run("should accept zero", func(t *testing.T) {
		w, err := kernel.NewWeight(0)

		require.NoError(t, err)
		assert.Zero(t, w.Kg())
	})

	t.Run("should reject negative value", func(t *testing.T) {
		_, err := kernel.NewWeight(-0.1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-finite values", func(t *testing.T) {
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := kernel.NewWeight(v)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestWeight_Validate(t *testing.T) {
	t.Run("zero value weight is invalid", func(t *testing.T) {
		var w kernel.Weight

		err := w.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestWeight_Add(t *testing.T) {
	t.Run("should sum two weights", func(t *testing.T) {
		a, _ := kernel.NewWeight(5.5)
		b, _ := kernel.NewWeight(2.1)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.InDelta(t, 7.6, sum.Kg(), 0.0001)
	})

	t.Run("should reject unconstructed operand", func(t *testing.T) {
		a, _ := kernel.NewWeight(1)
		var b kernel.Weight

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestWeight_String(t *testing.T) {
	w, _ := kernel.NewWeight(7.6)
	assert.Equal(t, "7.60 kg", w.String())
}
