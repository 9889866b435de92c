package queries_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingItemsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPendingItemsQuery("XG15STV")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "XG15STV", query.LockerCode())
}

func TestNewGetPendingItemsQuery_EmptyLockerCode(t *testing.T) {
	_, err := queries.NewGetPendingItemsQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLockerCodeIsRequired)
}

func TestGetPendingItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingItemsQueryIsNotConstructed)
}
