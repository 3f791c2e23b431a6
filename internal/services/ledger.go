package services

import (
	"context"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
)

// Deposit adds amount to the stake of participant at now.
func (s *Service) Deposit(ctx context.Context, participant string, amount sdkmath.Uint, now ledger.Ordinal) (err error) {
	defer observe("deposit", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	change, err := s.state.PlanDeposit(participant, amount, now)
	if err != nil {
		return ledgerError(err)
	}

	if err := s.custody.TransferIn(ctx, participant, amount); err != nil {
		return transferError(fmt.Errorf("failed to receive deposit of %s: %w", participant, err))
	}

	if err := s.journal(ctx, change); err != nil {
		s.compensate(ctx, participant, amount, s.custody.TransferOut)
		return err
	}
	if err := s.state.Apply(change); err != nil {
		return types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().
		Str("participant", participant).
		Stringer("amount", amount).
		Stringer("stake", change.NewStake).
		Stringer("total", change.NewTotal).
		Stringer("ordinal", now).
		Msg("deposit recorded")

	s.notify(ctx, types.EventDeposit, participant, amount, now)
	return nil
}

// Withdraw pays out the entire stake of participant at now and returns the
// withdrawn amount.
func (s *Service) Withdraw(ctx context.Context, participant string, now ledger.Ordinal) (amount sdkmath.Uint, err error) {
	defer observe("withdraw", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	change, err := s.state.PlanWithdraw(participant, now)
	if err != nil {
		return sdkmath.ZeroUint(), ledgerError(err)
	}

	if err := s.custody.TransferOut(ctx, participant, change.Delta); err != nil {
		return sdkmath.ZeroUint(), transferError(fmt.Errorf("failed to pay out stake of %s: %w", participant, err))
	}

	if err := s.journal(ctx, change); err != nil {
		s.compensate(ctx, participant, change.Delta, s.custody.TransferIn)
		return sdkmath.ZeroUint(), err
	}
	if err := s.state.Apply(change); err != nil {
		return sdkmath.ZeroUint(), types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().
		Str("participant", participant).
		Stringer("amount", change.Delta).
		Stringer("total", change.NewTotal).
		Stringer("ordinal", now).
		Msg("withdrawal recorded")

	s.notify(ctx, types.EventWithdraw, participant, change.Delta, now)
	return change.Delta, nil
}

// Claim pays out the reward accrued by participant up to now and moves the
// claim checkpoint to now.
func (s *Service) Claim(ctx context.Context, participant string, now ledger.Ordinal) (amount sdkmath.Uint, err error) {
	defer observe("claim", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	plan, err := s.state.PlanClaim(participant, now)
	if err != nil {
		return sdkmath.ZeroUint(), ledgerError(err)
	}

	if err := s.custody.TransferOut(ctx, participant, plan.Amount); err != nil {
		return sdkmath.ZeroUint(), transferError(fmt.Errorf("failed to pay out reward of %s: %w", participant, err))
	}

	acc, _ := s.state.Account(participant)
	doc := model.NewClaimDocument(plan, acc.TotalClaimed().Add(plan.Amount))
	if err := s.db.SaveClaim(ctx, doc); err != nil {
		s.compensate(ctx, participant, plan.Amount, s.custody.TransferIn)
		return sdkmath.ZeroUint(), types.NewInternalServiceError(
			fmt.Errorf("failed to save claim of %s: %w", participant, err),
		)
	}

	if err := s.state.ApplyClaim(plan); err != nil {
		// the claim is persisted, memory is repaired by the next bootstrap
		return sdkmath.ZeroUint(), types.NewInternalServiceError(err)
	}

	log.Ctx(ctx).Info().
		Str("participant", participant).
		Stringer("amount", plan.Amount).
		Stringer("ordinal", now).
		Msg("claim paid")

	s.notify(ctx, types.EventClaim, participant, plan.Amount, now)
	return plan.Amount, nil
}

// Claimable returns the reward participant could claim at now. Unknown
// participants and times before the claim checkpoint yield zero.
func (s *Service) Claimable(participant string, now ledger.Ordinal) sdkmath.Uint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Claimable(participant, now)
}

type ParticipantHistory struct {
	Events          []ledger.StakeEvent
	ClaimCheckpoint *ledger.Ordinal
	TotalClaimed    sdkmath.Uint
}

// History returns the stake events and claim checkpoint of participant. The
// second value is false for unknown participants.
func (s *Service) History(participant string) (*ParticipantHistory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.state.Account(participant)
	if !ok {
		return &ParticipantHistory{
			Events:       []ledger.StakeEvent{},
			TotalClaimed: sdkmath.ZeroUint(),
		}, false
	}

	history := &ParticipantHistory{
		Events:       acc.Events(),
		TotalClaimed: acc.TotalClaimed(),
	}
	if cp, claimed := acc.ClaimCheckpoint(); claimed {
		history.ClaimCheckpoint = &cp
	}
	return history, true
}

func (s *Service) journal(ctx context.Context, change *ledger.Change) error {
	if err := s.db.SaveLedgerEntry(ctx, model.FromLedgerChange(change)); err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to journal change %d of %s: %w", change.Seq, change.Participant, err),
		)
	}
	return nil
}

type transferFunc func(ctx context.Context, participant string, amount sdkmath.Uint) error

// compensate reverses a transfer whose ledger record could not be written.
func (s *Service) compensate(ctx context.Context, participant string, amount sdkmath.Uint, reverse transferFunc) {
	if err := reverse(ctx, participant, amount); err != nil {
		metrics.IncCompensationFailures()
		log.Ctx(ctx).Error().
			Err(err).
			Str("participant", participant).
			Stringer("amount", amount).
			Msg("failed to reverse custody transfer, manual reconciliation required")
		return
	}

	log.Ctx(ctx).Warn().
		Str("participant", participant).
		Stringer("amount", amount).
		Msg("custody transfer reversed after journal failure")
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordLedgerOperationDuration(time.Since(start), operation, *err != nil)
}
