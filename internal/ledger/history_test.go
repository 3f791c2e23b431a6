package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStakeHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var h StakeHistory
		assert.True(t, h.StakeAt(100).IsZero())
		assert.True(t, h.CurrentStake().IsZero())
		assert.Empty(t, h.Events())

		_, ok := h.FirstTime()
		assert.False(t, ok)
	})
	t.Run("last at or before", func(t *testing.T) {
		var h StakeHistory
		h.RecordChange(5, sdkmath.NewUint(10))
		h.RecordChange(8, sdkmath.NewUint(30))
		h.RecordChange(12, sdkmath.ZeroUint())

		cases := []struct {
			time     Ordinal
			expected uint64
		}{
			{0, 0},
			{4, 0},
			{5, 10},
			{7, 10},
			{8, 30},
			{11, 30},
			{12, 0},
			{1000, 0},
		}
		for _, c := range cases {
			assert.Equal(t, c.expected, h.StakeAt(c.time).Uint64(), "stake at %d", c.time)
		}
		assert.True(t, h.CurrentStake().IsZero())

		first, ok := h.FirstTime()
		require.True(t, ok)
		assert.Equal(t, Ordinal(5), first)
	})
	t.Run("same time duplicate is last write wins", func(t *testing.T) {
		var h StakeHistory
		h.RecordChange(3, sdkmath.NewUint(1))
		h.RecordChange(3, sdkmath.NewUint(2))

		assert.Equal(t, uint64(2), h.StakeAt(3).Uint64())
		assert.Equal(t, uint64(2), h.CurrentStake().Uint64())
		assert.Len(t, h.Events(), 2)
	})
	t.Run("events are a copy", func(t *testing.T) {
		var h StakeHistory
		h.RecordChange(1, sdkmath.NewUint(7))

		events := h.Events()
		events[0].Amount = sdkmath.NewUint(100)
		assert.Equal(t, uint64(7), h.CurrentStake().Uint64())
	})
}

func TestGlobalStakeHistory(t *testing.T) {
	var g GlobalStakeHistory
	assert.True(t, g.CurrentTotal().IsZero())
	_, ok := g.LastTime()
	assert.False(t, ok)

	g.RecordTotal(0, sdkmath.NewUint(10))
	g.RecordTotal(9, sdkmath.NewUint(20))
	g.RecordTotal(9, sdkmath.NewUint(25))

	assert.Equal(t, uint64(10), g.TotalAt(8).Uint64())
	assert.Equal(t, uint64(25), g.TotalAt(9).Uint64())
	assert.Equal(t, uint64(25), g.CurrentTotal().Uint64())

	last, ok := g.LastTime()
	require.True(t, ok)
	assert.Equal(t, Ordinal(9), last)
	assert.Equal(t, 3, g.Len())
	first := g.Checkpoints()[0]
	assert.Equal(t, Ordinal(0), first.Time)
	assert.Equal(t, "10", first.TotalStaked.String())
}
