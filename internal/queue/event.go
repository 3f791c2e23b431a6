package queue

import (
	sdkmath "cosmossdk.io/math"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
)

// LedgerEvent is the message body published for every committed operation.
type LedgerEvent struct {
	EventType     types.EventType `json:"event_type"`
	ParticipantID string          `json:"participant_id"`
	Amount        string          `json:"amount"`
	Ordinal       uint64          `json:"ordinal"`
}

func NewLedgerEvent(eventType types.EventType, participant string, amount sdkmath.Uint, ordinal uint64) *LedgerEvent {
	return &LedgerEvent{
		EventType:     eventType,
		ParticipantID: participant,
		Amount:        amount.String(),
		Ordinal:       ordinal,
	}
}
