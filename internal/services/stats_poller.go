package services

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/utils/poller"
)

type OverallStats struct {
	Ordinal            ledger.Ordinal `json:"ordinal"`
	TotalStaked        sdkmath.Uint   `json:"total_staked"`
	Participants       uint64         `json:"participants"`
	ActiveParticipants uint64         `json:"active_participants"`
	PendingRewards     sdkmath.Uint   `json:"pending_rewards"`
	TotalClaimed       sdkmath.Uint   `json:"total_claimed"`
}

// StartStatsPoller starts the stats polling service
func (s *Service) StartStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		"stats",
		s.cfg.Poller.StatsPollingInterval,
		metrics.RecordPollerDuration("stats", s.calculateAndUpdateStats),
		poller.WithImmediateStart(),
	)
	go statsPoller.Start(ctx)
}

// Stats aggregates the ledger at now. Pending rewards are computed per
// participant on a bounded worker pool.
func (s *Service) Stats(now ledger.Ordinal) *OverallStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	participants := s.state.Participants()
	stats := &OverallStats{
		Ordinal:        now,
		TotalStaked:    s.state.CurrentTotal(),
		Participants:   uint64(len(participants)),
		PendingRewards: sdkmath.ZeroUint(),
		TotalClaimed:   sdkmath.ZeroUint(),
	}

	p := pool.NewWithResults[sdkmath.Uint]()
	if workers := s.cfg.Poller.StatsWorkers; workers > 0 {
		p = p.WithMaxGoroutines(workers)
	}
	for _, id := range participants {
		acc, _ := s.state.Account(id)
		if !acc.CurrentStake().IsZero() {
			stats.ActiveParticipants++
		}
		stats.TotalClaimed = stats.TotalClaimed.Add(acc.TotalClaimed())

		p.Go(func() sdkmath.Uint {
			return s.state.Claimable(id, now)
		})
	}
	for _, pending := range p.Wait() {
		stats.PendingRewards = stats.PendingRewards.Add(pending)
	}

	return stats
}

// OverallStats returns the last stored aggregate, computing a fresh one when
// the poller has not stored any yet.
func (s *Service) OverallStats(ctx context.Context) (*OverallStats, error) {
	doc, err := s.db.GetOverallStats(ctx)
	if err != nil {
		if db.IsNotFoundError(err) {
			return s.Stats(s.clock.Now()), nil
		}
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to get overall stats: %w", err))
	}

	return statsFromDocument(doc)
}

func statsFromDocument(doc *model.OverallStatsDocument) (*OverallStats, error) {
	totalStaked, err := sdkmath.ParseUint(doc.TotalStaked)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("invalid stored total staked: %w", err))
	}
	pending, err := sdkmath.ParseUint(doc.PendingRewards)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("invalid stored pending rewards: %w", err))
	}
	claimed, err := sdkmath.ParseUint(doc.TotalClaimed)
	if err != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("invalid stored total claimed: %w", err))
	}

	return &OverallStats{
		Ordinal:            ledger.Ordinal(doc.Ordinal),
		TotalStaked:        totalStaked,
		Participants:       doc.Participants,
		ActiveParticipants: doc.ActiveParticipants,
		PendingRewards:     pending,
		TotalClaimed:       claimed,
	}, nil
}

// calculateAndUpdateStats computes the aggregate at the current tick and stores it
func (s *Service) calculateAndUpdateStats(ctx context.Context) error {
	now := s.clock.Now()

	startTime := time.Now()
	stats := s.Stats(now)
	log.Ctx(ctx).Debug().
		Dur("aggregation_duration_ms", time.Since(startTime)).
		Msg("Stats aggregation completed")

	if stats.Participants == 0 {
		log.Ctx(ctx).Debug().Msg("No participants found - skipping stats update")
		return nil
	}

	doc := &model.OverallStatsDocument{
		Ordinal:            uint64(stats.Ordinal),
		TotalStaked:        stats.TotalStaked.String(),
		Participants:       stats.Participants,
		ActiveParticipants: stats.ActiveParticipants,
		PendingRewards:     stats.PendingRewards.String(),
		TotalClaimed:       stats.TotalClaimed.String(),
		LastUpdated:        time.Now().Unix(),
	}
	if err := s.db.UpsertOverallStats(ctx, doc); err != nil {
		return fmt.Errorf("failed to upsert overall stats: %w", err)
	}

	log.Ctx(ctx).Info().
		Stringer("total_staked", stats.TotalStaked).
		Uint64("active_participants", stats.ActiveParticipants).
		Stringer("pending_rewards", stats.PendingRewards).
		Msg("Updated overall stats")

	metrics.RecordLedgerStats(
		uintToFloat(stats.TotalStaked),
		uintToFloat(stats.PendingRewards),
		stats.ActiveParticipants,
	)
	return nil
}

func uintToFloat(u sdkmath.Uint) float64 {
	f, _ := u.BigInt().Float64()
	return f
}
