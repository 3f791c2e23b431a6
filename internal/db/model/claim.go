package model

import (
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
)

const ClaimCollection = "claims"

type ClaimDocument struct {
	ParticipantID string `bson:"_id"` // Primary key
	Checkpoint    uint64 `bson:"checkpoint"`
	LastAmount    string `bson:"last_amount"`
	TotalClaimed  string `bson:"total_claimed"`
	UpdatedAt     int64  `bson:"updated_at"`
}

func NewClaimDocument(plan *ledger.ClaimPlan, totalClaimed sdkmath.Uint) *ClaimDocument {
	return &ClaimDocument{
		ParticipantID: plan.Participant,
		Checkpoint:    uint64(plan.Time),
		LastAmount:    plan.Amount.String(),
		TotalClaimed:  totalClaimed.String(),
		UpdatedAt:     time.Now().Unix(),
	}
}

func (d *ClaimDocument) TotalClaimedUint() (sdkmath.Uint, error) {
	total, err := sdkmath.ParseUint(d.TotalClaimed)
	if err != nil {
		return sdkmath.Uint{}, fmt.Errorf("claim of %s has invalid total: %w", d.ParticipantID, err)
	}
	return total, nil
}
