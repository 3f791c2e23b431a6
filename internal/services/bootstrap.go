package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
)

// Bootstrap rebuilds the in-memory ledger from the journal and the stored
// claim checkpoints. Entries must form a gap free sequence starting at 1.
func (s *Service) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := ledger.NewState(s.cfg.Ledger.Rate())

	entries, err := s.db.GetLedgerEntries(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to load ledger entries: %w", err)
	}

	for _, entry := range entries {
		change, err := entry.ToLedgerChange()
		if err != nil {
			return err
		}
		if err := state.Apply(change); err != nil {
			return fmt.Errorf("failed to replay ledger entry %d: %w", entry.Seq, err)
		}
	}

	claims, err := s.db.GetClaims(ctx)
	if err != nil {
		return fmt.Errorf("failed to load claims: %w", err)
	}

	for _, claim := range claims {
		totalClaimed, err := claim.TotalClaimedUint()
		if err != nil {
			return err
		}
		if err := state.RestoreClaim(claim.ParticipantID, ledger.Ordinal(claim.Checkpoint), totalClaimed); err != nil {
			return err
		}
	}

	s.state = state

	log.Ctx(ctx).Info().
		Int("entries", len(entries)).
		Int("claims", len(claims)).
		Uint64("seq", state.Seq()).
		Stringer("total_staked", state.CurrentTotal()).
		Msg("ledger bootstrapped")

	return nil
}
