package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeShipmentStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeShipmentStatusCommand(id, shipment.Booked)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, shipment.Booked, cmd.NextStatus())
}

func TestNewChangeShipmentStatusCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewChangeShipmentStatusCommand(kernel.UUID{}, shipment.Booked)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeShipmentStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewChangeShipmentStatusCommand(kernel.NewUUID(), shipment.UnknownStatus)
	require.Error(t, err)
}

func TestChangeShipmentStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.ChangeShipmentStatusCommand{}
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrChangeShipmentStatusCommandIsNotConstructed)
}
