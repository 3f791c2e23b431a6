package services

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/queue"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
)

// notify publishes an event for a committed operation. Failures are recorded
// but do not undo the operation.
func (s *Service) notify(
	ctx context.Context, eventType types.EventType, participant string, amount sdkmath.Uint, now ledger.Ordinal,
) {
	ev := queue.NewLedgerEvent(eventType, participant, amount, uint64(now))
	if err := s.publisher.Publish(ctx, ev); err != nil {
		metrics.RecordQueueSendError()
		log.Ctx(ctx).Error().
			Err(err).
			Stringer("event_type", eventType).
			Str("participant", participant).
			Msg("failed to publish ledger event")
	}
}
