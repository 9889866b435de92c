package commands_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddTrackingEventCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	ts := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	cmd, err := commands.NewAddTrackingEventCommand(id, &ts, "Miami, FL", "arrived at export facility")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	require.NotNil(t, cmd.Timestamp())
	assert.Equal(t, ts, *cmd.Timestamp())
	assert.Equal(t, "Miami, FL", cmd.Location())
	assert.Equal(t, "arrived at export facility", cmd.Details())
}

func TestNewAddTrackingEventCommand_NilTimestampAllowed(t *testing.T) {
	cmd, err := commands.NewAddTrackingEventCommand(kernel.NewUUID(), nil, "", "note")
	require.NoError(t, err)
	assert.Nil(t, cmd.Timestamp())
}

func TestNewAddTrackingEventCommand_EmptyDetails(t *testing.T) {
	_, err := commands.NewAddTrackingEventCommand(kernel.NewUUID(), nil, "Miami", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEventDetailsAreRequired)
}

func TestNewAddTrackingEventCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewAddTrackingEventCommand(kernel.UUID{}, nil, "", "note")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
