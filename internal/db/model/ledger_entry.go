package model

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
)

const LedgerEntryCollection = "ledger_entries"

// LedgerEntryDocument is one journaled stake change. A single document holds
// both the participant stake and the global total so that the two histories
// are always persisted together.
type LedgerEntryDocument struct {
	Seq           uint64 `bson:"_id"` // Primary key, gap free change sequence
	ParticipantID string `bson:"participant_id"`
	Kind          string `bson:"kind"`
	Ordinal       uint64 `bson:"ordinal"`
	Delta         string `bson:"delta"`
	NewStake      string `bson:"new_stake"`
	NewTotal      string `bson:"new_total"`
	CreatedAt     int64  `bson:"created_at"`
}

func FromLedgerChange(change *ledger.Change) *LedgerEntryDocument {
	return &LedgerEntryDocument{
		Seq:           change.Seq,
		ParticipantID: change.Participant,
		Kind:          change.Kind.String(),
		Ordinal:       uint64(change.Time),
		Delta:         change.Delta.String(),
		NewStake:      change.NewStake.String(),
		NewTotal:      change.NewTotal.String(),
		CreatedAt:     time.Now().Unix(),
	}
}

func (d *LedgerEntryDocument) ToLedgerChange() (*ledger.Change, error) {
	kind := ledger.ChangeKind(d.Kind)
	if kind != ledger.ChangeDeposit && kind != ledger.ChangeWithdraw {
		return nil, fmt.Errorf("ledger entry %d has unknown kind %q", d.Seq, d.Kind)
	}

	delta, err := sdkmath.ParseUint(d.Delta)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %d has invalid delta: %w", d.Seq, err)
	}
	newStake, err := sdkmath.ParseUint(d.NewStake)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %d has invalid stake: %w", d.Seq, err)
	}
	newTotal, err := sdkmath.ParseUint(d.NewTotal)
	if err != nil {
		return nil, fmt.Errorf("ledger entry %d has invalid total: %w", d.Seq, err)
	}

	return &ledger.Change{
		Seq:         d.Seq,
		Participant: d.ParticipantID,
		Kind:        kind,
		Time:        ledger.Ordinal(d.Ordinal),
		Delta:       delta,
		NewStake:    newStake,
		NewTotal:    newTotal,
	}, nil
}
