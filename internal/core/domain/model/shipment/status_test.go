package shipment_test

import (
	"testing"

	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.UnknownStatus))
		assert.Equal(t, 1, int(shipment.Draft))
		assert.Equal(t, 2, int(shipment.ReadyToBook))
		assert.Equal(t, 3, int(shipment.Booked))
		assert.Equal(t, 4, int(shipment.InCustoms))
		assert.Equal(t, 5, int(shipment.InTransit))
		assert.Equal(t, 6, int(shipment.Delivered))
		assert.Equal(t, 7, int(shipment.Cancelled))
		assert.Equal(t, 8, int(shipment.Returned))
		assert.Equal(t, 9, int(shipment.Rejected))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		statuses := []shipment.Status{
			shipment.Draft, shipment.ReadyToBook, shipment.Booked,
			shipment.InCustoms, shipment.InTransit, shipment.Delivered,
			shipment.Cancelled, shipment.Returned, shipment.Rejected,
		}
		for _, s := range statuses {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range statuses fail", func(t *testing.T) {
		for _, s := range []shipment.Status{shipment.UnknownStatus, shipment.Status(99)} {
			err := s.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   shipment.Status
		expected string
	}{
		{shipment.UnknownStatus, "unknown"},
		{shipment.Draft, "draft"},
		{shipment.ReadyToBook, "ready_to_book"},
		{shipment.Booked, "booked"},
		{shipment.InCustoms, "in_customs"},
		{shipment.InTransit, "in_transit"},
		{shipment.Delivered, "delivered"},
		{shipment.Cancelled, "cancelled"},
		{shipment.Returned, "returned"},
		{shipment.Rejected, "rejected"},
		{shipment.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		statuses := []shipment.Status{
			shipment.Draft, shipment.ReadyToBook, shipment.Booked,
			shipment.InCustoms, shipment.InTransit, shipment.Delivered,
			shipment.Cancelled, shipment.Returned, shipment.Rejected,
		}
		for _, s := range statuses {
			parsed, err := shipment.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unrecognized names", func(t *testing.T) {
		for _, name := range []string{"", "Draft", "shipped"} {
			_, err := shipment.StatusFromString(name)
			require.Error(t, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []shipment.Status{
		shipment.Delivered, shipment.Cancelled, shipment.Returned, shipment.Rejected,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s.String())
	}

	nonTerminal := []shipment.Status{
		shipment.Draft, shipment.ReadyToBook, shipment.Booked,
		shipment.InCustoms, shipment.InTransit,
	}
	for _, s := range nonTerminal {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_ValidateInitial(t *testing.T) {
	require.NoError(t, shipment.Draft.ValidateInitial())
	require.NoError(t, shipment.ReadyToBook.ValidateInitial())

	for _, s := range []shipment.Status{shipment.Booked, shipment.InTransit, shipment.Delivered, shipment.Cancelled} {
		require.Error(t, s.ValidateInitial(), s.String())
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("accepts forward transitions", func(t *testing.T) {
		testCases := []struct {
			from, to shipment.Status
		}{
			{shipment.Draft, shipment.ReadyToBook},
			{shipment.ReadyToBook, shipment.Booked},
			{shipment.Booked, shipment.InCustoms},
			{shipment.InCustoms, shipment.InTransit},
			{shipment.InTransit, shipment.Delivered},
			// customs leg is optional
			{shipment.Booked, shipment.InTransit},
		}

		for _, tc := range testCases {
			next, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, next)
		}
	})

	t.Run("accepts cancellation from any non-terminal state", func(t *testing.T) {
		nonTerminal := []shipment.Status{
			shipment.Draft, shipment.ReadyToBook, shipment.Booked,
			shipment.InCustoms, shipment.InTransit,
		}
		for _, s := range nonTerminal {
			next, err := s.TransitionTo(shipment.Cancelled)
			require.NoError(t, err, s.String())
			assert.Equal(t, shipment.Cancelled, next)
		}
	})

	t.Run("returned and rejected require customs or transit", func(t *testing.T) {
		for _, target := range []shipment.Status{shipment.Returned, shipment.Rejected} {
			for _, from := range []shipment.Status{shipment.InCustoms, shipment.InTransit} {
				next, err := from.TransitionTo(target)
				require.NoError(t, err)
				assert.Equal(t, target, next)
			}
			for _, from := range []shipment.Status{shipment.Draft, shipment.ReadyToBook, shipment.Booked} {
				_, err := from.TransitionTo(target)
				require.ErrorIs(t, err, shipment.ErrInvalidTransition, "%s -> %s", from, target)
			}
		}
	})

	t.Run("rejects backward and same-state transitions", func(t *testing.T) {
		testCases := []struct {
			from, to shipment.Status
		}{
			{shipment.ReadyToBook, shipment.Draft},
			{shipment.Booked, shipment.ReadyToBook},
			{shipment.InTransit, shipment.Booked},
			{shipment.InTransit, shipment.InTransit},
			{shipment.Draft, shipment.Draft},
		}

		for _, tc := range testCases {
			_, err := tc.from.TransitionTo(tc.to)
			require.ErrorIs(t, err, shipment.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		terminal := []shipment.Status{
			shipment.Delivered, shipment.Cancelled, shipment.Returned, shipment.Rejected,
		}
		for _, s := range terminal {
			_, err := s.TransitionTo(shipment.InTransit)
			require.ErrorIs(t, err, shipment.ErrShipmentInTerminalState, s.String())

			_, err = s.TransitionTo(shipment.Cancelled)
			require.ErrorIs(t, err, shipment.ErrShipmentInTerminalState, s.String())
		}
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		_, err := shipment.Draft.TransitionTo(shipment.UnknownStatus)
		require.Error(t, err)
	})
}
