package ledger

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	t.Run("deposits accumulate", func(t *testing.T) {
		s := NewState(sdkmath.OneUint())
		amounts := []uint64{3, 7, 11, 13}
		var sum uint64
		for i, amount := range amounts {
			deposit(t, s, "alice", amount, Ordinal(i*2))
			sum += amount
		}
		deposit(t, s, "bob", 5, 20)

		acc, ok := s.Account("alice")
		require.True(t, ok)
		assert.Equal(t, sum, acc.CurrentStake().Uint64())
		assert.Equal(t, sum+5, s.TotalAt(20).Uint64())
		assert.Equal(t, uint64(len(amounts)+1), s.Seq())
		assert.Equal(t, []string{"alice", "bob"}, s.Participants())
	})
	t.Run("plan does not mutate", func(t *testing.T) {
		s := NewState(sdkmath.OneUint())
		change, err := s.PlanDeposit("alice", sdkmath.NewUint(10), 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), change.Seq)
		assert.Equal(t, ChangeDeposit, change.Kind)
		assert.Equal(t, "10", change.NewStake.String())
		assert.Equal(t, "10", change.NewTotal.String())

		_, ok := s.Account("alice")
		assert.False(t, ok)
		assert.Zero(t, s.Seq())
		assert.Empty(t, s.GlobalCheckpoints())
	})
	t.Run("rejections", func(t *testing.T) {
		s := NewState(sdkmath.OneUint())

		_, err := s.PlanDeposit("alice", sdkmath.ZeroUint(), 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = s.PlanWithdraw("alice", 0)
		assert.ErrorIs(t, err, ErrNoStake)

		_, err = s.PlanClaim("alice", 0)
		assert.ErrorIs(t, err, ErrNoClaimable)

		deposit(t, s, "alice", 10, 5)
		_, err = s.PlanDeposit("bob", sdkmath.NewUint(1), 4)
		assert.ErrorIs(t, err, ErrInvalidOrdinal)
		_, err = s.PlanWithdraw("alice", 4)
		assert.ErrorIs(t, err, ErrInvalidOrdinal)

		// nothing accrued at the deposit instant
		_, err = s.PlanClaim("alice", 5)
		assert.ErrorIs(t, err, ErrNoClaimable)

		withdraw(t, s, "alice", 6)
		_, err = s.PlanWithdraw("alice", 7)
		assert.ErrorIs(t, err, ErrNoStake)

		assert.Equal(t, uint64(2), s.Seq())
		assert.Len(t, s.GlobalCheckpoints(), 2)
	})
	t.Run("apply out of sequence", func(t *testing.T) {
		s := NewState(sdkmath.OneUint())
		change, err := s.PlanDeposit("alice", sdkmath.NewUint(1), 0)
		require.NoError(t, err)
		change.Seq = 5
		require.Error(t, s.Apply(change))

		err = s.Apply(&Change{Seq: 1, Participant: "bob", Kind: ChangeWithdraw, NewStake: sdkmath.ZeroUint(), NewTotal: sdkmath.ZeroUint()})
		assert.ErrorIs(t, err, ErrNoStake)
		assert.Zero(t, s.Seq())
	})
	t.Run("claim checkpoint", func(t *testing.T) {
		s := NewState(sdkmath.OneUint())
		deposit(t, s, "alice", 10, 0)

		acc, _ := s.Account("alice")
		_, claimed := acc.ClaimCheckpoint()
		assert.False(t, claimed)

		assert.Equal(t, uint64(10), claim(t, s, "alice", 10).Uint64())
		_, err := s.PlanClaim("alice", 10)
		assert.ErrorIs(t, err, ErrNoClaimable)

		assert.Equal(t, uint64(5), claim(t, s, "alice", 15).Uint64())
		cp, claimed := acc.ClaimCheckpoint()
		assert.True(t, claimed)
		assert.Equal(t, Ordinal(15), cp)
		assert.Equal(t, uint64(15), acc.TotalClaimed().Uint64())

		_, err = s.PlanClaim("alice", 14)
		assert.ErrorIs(t, err, ErrInvalidOrdinal)
	})
	t.Run("restore claim", func(t *testing.T) {
		s := NewState(sdkmath.OneUint())
		require.Error(t, s.RestoreClaim("alice", 3, sdkmath.NewUint(3)))

		deposit(t, s, "alice", 10, 0)
		require.NoError(t, s.RestoreClaim("alice", 3, sdkmath.NewUint(3)))
		assert.Equal(t, uint64(7), s.Claimable("alice", 10).Uint64())
	})
}
