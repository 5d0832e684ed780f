package repositoryImp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eggfarm/database"
	"eggfarm/entities"
	"eggfarm/pkg/query"
)

func TestRange_OrderedAndBounded(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "sensor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	repo := New(db)
	ctx := context.Background()

	// Inserted out of time order on purpose.
	for _, r := range []entities.SensorReading{
		{CoopID: "c", Temperature: 3, Timestamp: "2025-01-02T12:00:00.000000Z"},
		{CoopID: "c", Temperature: 1, Timestamp: "2025-01-01T00:00:00.000000Z"},
		{CoopID: "c", Temperature: 9, Timestamp: "2024-12-31T23:59:59.999999Z"},
		{CoopID: "c", Temperature: 2, Timestamp: "2025-01-01T08:00:00.000000Z"},
		{CoopID: "d", Temperature: 5, Timestamp: "2025-01-01T08:00:00.000000Z"},
		{CoopID: "c", Temperature: 8, Timestamp: "2025-01-03T00:00:00.000000Z"},
	} {
		r := r
		require.NoError(t, repo.Create(ctx, &r))
		assert.NotZero(t, r.ID)
	}

	q, err := query.ParseRange("c", "2025-01-01", "2025-01-02")
	require.NoError(t, err)
	out, err := repo.Range(ctx, q)
	require.NoError(t, err)

	var temps []float64
	for _, r := range out {
		temps = append(temps, r.Temperature)
	}
	assert.Equal(t, []float64{1, 2, 3}, temps)
}
