//go:build integration

package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

func TestOverallStats(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetDatabase(t)
	})

	_, err := testDB.GetOverallStats(ctx)
	require.Error(t, err)
	assert.True(t, db.IsNotFoundError(err))

	stats := &model.OverallStatsDocument{
		Ordinal:            42,
		TotalStaked:        "1000",
		Participants:       3,
		ActiveParticipants: 2,
		PendingRewards:     "77",
		TotalClaimed:       "12",
		LastUpdated:        1700000000,
	}
	require.NoError(t, testDB.UpsertOverallStats(ctx, stats))

	stats.Ordinal = 43
	stats.PendingRewards = "80"
	require.NoError(t, testDB.UpsertOverallStats(ctx, stats))

	result, err := testDB.GetOverallStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, db.OverallStatsID, result.ID)
	assert.Equal(t, uint64(43), result.Ordinal)
	assert.Equal(t, "80", result.PendingRewards)
}
