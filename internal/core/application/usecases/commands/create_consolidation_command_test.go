package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateConsolidationCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateConsolidationCommand(
		id, "req-8842", "XG15STV", "Ada Morales", tariff.Air, nil, shipment.ReadyToBook)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, "req-8842", cmd.RequestID())
	assert.Equal(t, "XG15STV", cmd.LockerCode())
	assert.Equal(t, "Ada Morales", cmd.RecipientName())
	assert.Equal(t, tariff.Air, cmd.ServiceTier())
	assert.Nil(t, cmd.DestinationZone())
	assert.Equal(t, shipment.ReadyToBook, cmd.InitialStatus())
}

func TestNewCreateConsolidationCommand_WithZone(t *testing.T) {
	zone, err := tariff.NewZone(2)
	require.NoError(t, err)

	cmd, err := commands.NewCreateConsolidationCommand(
		kernel.NewUUID(), "req-1", "XG15STV", "Ada", tariff.Maritime, &zone, shipment.Draft)
	require.NoError(t, err)
	require.NotNil(t, cmd.DestinationZone())
	assert.Equal(t, 2, cmd.DestinationZone().Index())
}

func TestNewCreateConsolidationCommand_EmptyRequestID(t *testing.T) {
	_, err := commands.NewCreateConsolidationCommand(
		kernel.NewUUID(), "", "XG15STV", "Ada", tariff.Air, nil, shipment.Draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRequestIDIsRequired)
}

func TestNewCreateConsolidationCommand_EmptyLockerCode(t *testing.T) {
	_, err := commands.NewCreateConsolidationCommand(
		kernel.NewUUID(), "req-1", "", "Ada", tariff.Air, nil, shipment.Draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLockerCodeIsRequired)
}

func TestNewCreateConsolidationCommand_EmptyRecipient(t *testing.T) {
	_, err := commands.NewCreateConsolidationCommand(
		kernel.NewUUID(), "req-1", "XG15STV", "", tariff.Air, nil, shipment.Draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecipientNameIsRequired)
}

func TestNewCreateConsolidationCommand_InvalidTier(t *testing.T) {
	_, err := commands.NewCreateConsolidationCommand(
		kernel.NewUUID(), "req-1", "XG15STV", "Ada", tariff.UnknownTier, nil, shipment.Draft)
	require.Error(t, err)
}

func TestNewCreateConsolidationCommand_NonInitialStatus(t *testing.T) {
	_, err := commands.NewCreateConsolidationCommand(
		kernel.NewUUID(), "req-1", "XG15STV", "Ada", tariff.Air, nil, shipment.Delivered)
	require.Error(t, err)
}
