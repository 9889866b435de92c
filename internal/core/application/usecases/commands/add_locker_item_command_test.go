package commands_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddLockerItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAddLockerItemCommand(id, "XG15STV", "running shoes", 1.8)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, "XG15STV", cmd.LockerCode())
	assert.Equal(t, "running shoes", cmd.Description())
	assert.InDelta(t, 1.8, cmd.Weight().Kg(), 0.0001)
}

func TestNewAddLockerItemCommand_EmptyDescriptionAllowed(t *testing.T) {
	_, err := commands.NewAddLockerItemCommand(kernel.NewUUID(), "XG15STV", "", 1)
	require.NoError(t, err)
}

func TestNewAddLockerItemCommand_InvalidItemID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewAddLockerItemCommand(invalidID, "XG15STV", "shoes", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddLockerItemCommand_EmptyLockerCode(t *testing.T) {
	_, err := commands.NewAddLockerItemCommand(kernel.NewUUID(), "", "shoes", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLockerCodeIsRequired)
}

func TestNewAddLockerItemCommand_NegativeWeight(t *testing.T) {
	_, err := commands.NewAddLockerItemCommand(kernel.NewUUID(), "XG15STV", "shoes", -0.5)
	require.Error(t, err)
}

func TestAddLockerItemCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AddLockerItemCommand{}
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrAddLockerItemCommandIsNotConstructed)
}
