package ledger

import (
	"errors"
	"strconv"

	sdkmath "cosmossdk.io/math"
)

// Ordinal is a caller supplied, monotonically advancing time unit (tick).
type Ordinal uint64

func (o Ordinal) String() string {
	return strconv.FormatUint(uint64(o), 10)
}

// MaxRewardRateBits keeps rate * elapsed ticks, and so every reward and
// claimed sum, within the 256 bits of sdkmath.Uint for any uint64 ordinal.
const MaxRewardRateBits = 256 - 64 - 1

var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrNoStake        = errors.New("participant has no stake")
	ErrNoClaimable    = errors.New("no claimable reward")
	ErrInvalidOrdinal = errors.New("ordinal is earlier than the last recorded change")
)

// StakeEvent is the stake level of a participant starting at Time.
type StakeEvent struct {
	Time   Ordinal      `json:"time"`
	Amount sdkmath.Uint `json:"amount"`
}

// GlobalCheckpoint is the total stake of all participants starting at Time.
type GlobalCheckpoint struct {
	Time        Ordinal      `json:"time"`
	TotalStaked sdkmath.Uint `json:"total_staked"`
}

type ChangeKind string

const (
	ChangeDeposit  ChangeKind = "deposit"
	ChangeWithdraw ChangeKind = "withdraw"
)

func (k ChangeKind) String() string {
	return string(k)
}

// Change is one planned or applied stake mutation. It carries both the new
// participant stake and the new global total so it can be journaled as a
// single record.
type Change struct {
	Seq         uint64
	Participant string
	Kind        ChangeKind
	Time        Ordinal
	Delta       sdkmath.Uint
	NewStake    sdkmath.Uint
	NewTotal    sdkmath.Uint
}

// ClaimPlan is a computed claim that has not been committed yet.
type ClaimPlan struct {
	Participant string
	Time        Ordinal
	Amount      sdkmath.Uint
}
