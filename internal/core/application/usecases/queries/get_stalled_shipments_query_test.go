package queries_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStalledShipmentsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetStalledShipmentsQuery(72 * time.Hour)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 72*time.Hour, query.StalledAfter())
}

func TestNewGetStalledShipmentsQuery_NonPositiveDuration(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Hour} {
		_, err := queries.NewGetStalledShipmentsQuery(d)
		require.Error(t, err, d.String())
	}
}

func TestGetStalledShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStalledShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStalledShipmentsQueryIsNotConstructed)
}
