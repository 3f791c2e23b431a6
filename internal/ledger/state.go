package ledger

import (
	"fmt"
	"math/big"
	"sort"

	sdkmath "cosmossdk.io/math"
)

// Account is the ledger view of one participant.
type Account struct {
	history         StakeHistory
	claimCheckpoint Ordinal
	claimed         bool
	totalClaimed    sdkmath.Uint
}

func newAccount() *Account {
	return &Account{totalClaimed: sdkmath.ZeroUint()}
}

// ClaimCheckpoint returns the time up to which rewards were paid out. The
// second value is false while the participant has never claimed.
func (a *Account) ClaimCheckpoint() (Ordinal, bool) {
	return a.claimCheckpoint, a.claimed
}

func (a *Account) StakeAt(time Ordinal) sdkmath.Uint {
	return a.history.StakeAt(time)
}

func (a *Account) CurrentStake() sdkmath.Uint {
	return a.history.CurrentStake()
}

func (a *Account) Events() []StakeEvent {
	return a.history.Events()
}

func (a *Account) TotalClaimed() sdkmath.Uint {
	return a.totalClaimed
}

func (a *Account) resumePoint() (Ordinal, bool) {
	if a.claimed {
		return a.claimCheckpoint, true
	}
	return a.history.FirstTime()
}

// State holds every participant account and the global stake history. It
// is not safe for concurrent use; the owner serialises access.
type State struct {
	rate     sdkmath.Uint
	accounts map[string]*Account
	global   GlobalStakeHistory
	seq      uint64
}

func NewState(rate sdkmath.Uint) *State {
	return &State{
		rate:     rate,
		accounts: make(map[string]*Account),
	}
}

func (s *State) Rate() sdkmath.Uint {
	return s.rate
}

// Seq is the sequence number of the last applied change.
func (s *State) Seq() uint64 {
	return s.seq
}

func (s *State) Account(participant string) (*Account, bool) {
	acc, ok := s.accounts[participant]
	return acc, ok
}

// Participants returns the ids of all known participants in lexical order.
func (s *State) Participants() []string {
	ids := make([]string, 0, len(s.accounts))
	for id := range s.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *State) TotalAt(time Ordinal) sdkmath.Uint {
	return s.global.TotalAt(time)
}

func (s *State) CurrentTotal() sdkmath.Uint {
	return s.global.CurrentTotal()
}

func (s *State) GlobalCheckpoints() []GlobalCheckpoint {
	return s.global.Checkpoints()
}

// Claimable returns the reward the participant could claim at now.
func (s *State) Claimable(participant string, now Ordinal) sdkmath.Uint {
	acc, ok := s.accounts[participant]
	if !ok {
		return sdkmath.ZeroUint()
	}
	return Claimable(acc, &s.global, s.rate, now)
}

func (s *State) checkOrdinal(now Ordinal) error {
	if last, ok := s.global.LastTime(); ok && now < last {
		return fmt.Errorf("%w: now %d, last change %d", ErrInvalidOrdinal, now, last)
	}
	return nil
}

// PlanDeposit validates a deposit and returns the change it would apply.
// The state is not modified.
func (s *State) PlanDeposit(participant string, amount sdkmath.Uint, now Ordinal) (*Change, error) {
	if amount.IsZero() {
		return nil, ErrInvalidAmount
	}
	if err := s.checkOrdinal(now); err != nil {
		return nil, err
	}

	stake := sdkmath.ZeroUint()
	if acc, ok := s.accounts[participant]; ok {
		stake = acc.history.StakeAt(now)
	}

	// stake <= total, so a total that fits bounds the new stake too
	newTotal := new(big.Int).Add(s.global.CurrentTotal().BigInt(), amount.BigInt())
	if err := sdkmath.UintOverflow(newTotal); err != nil {
		return nil, fmt.Errorf("%w: total stake after deposit: %w", ErrInvalidAmount, err)
	}

	return &Change{
		Seq:         s.seq + 1,
		Participant: participant,
		Kind:        ChangeDeposit,
		Time:        now,
		Delta:       amount,
		NewStake:    stake.Add(amount),
		NewTotal:    sdkmath.NewUintFromBigInt(newTotal),
	}, nil
}

// PlanWithdraw validates a full withdrawal and returns the change it would
// apply. The state is not modified.
func (s *State) PlanWithdraw(participant string, now Ordinal) (*Change, error) {
	acc, ok := s.accounts[participant]
	if !ok || acc.history.CurrentStake().IsZero() {
		return nil, ErrNoStake
	}
	if err := s.checkOrdinal(now); err != nil {
		return nil, err
	}

	stake := acc.history.CurrentStake()
	total := s.global.CurrentTotal()
	if total.LT(stake) {
		return nil, fmt.Errorf("global total %s is below stake %s of %s", total, stake, participant)
	}

	return &Change{
		Seq:         s.seq + 1,
		Participant: participant,
		Kind:        ChangeWithdraw,
		Time:        now,
		Delta:       stake,
		NewStake:    sdkmath.ZeroUint(),
		NewTotal:    total.Sub(stake),
	}, nil
}

// Apply appends a change to the participant and global histories. Changes
// must be applied in sequence order.
func (s *State) Apply(change *Change) error {
	if change.Seq != s.seq+1 {
		return fmt.Errorf("unexpected change sequence %d, expected %d", change.Seq, s.seq+1)
	}
	if err := s.checkOrdinal(change.Time); err != nil {
		return err
	}

	acc, ok := s.accounts[change.Participant]
	if !ok {
		if change.Kind != ChangeDeposit {
			return fmt.Errorf("%w: %s", ErrNoStake, change.Participant)
		}
		acc = newAccount()
		s.accounts[change.Participant] = acc
	}

	acc.history.RecordChange(change.Time, change.NewStake)
	s.global.RecordTotal(change.Time, change.NewTotal)
	s.seq = change.Seq

	return nil
}

// PlanClaim computes the claimable reward at now without committing it.
func (s *State) PlanClaim(participant string, now Ordinal) (*ClaimPlan, error) {
	if err := s.checkOrdinal(now); err != nil {
		return nil, err
	}

	acc, ok := s.accounts[participant]
	if !ok {
		return nil, ErrNoClaimable
	}
	if cp, claimed := acc.ClaimCheckpoint(); claimed && now < cp {
		return nil, fmt.Errorf("%w: now %d, claim checkpoint %d", ErrInvalidOrdinal, now, cp)
	}

	amount := Claimable(acc, &s.global, s.rate, now)
	if amount.IsZero() {
		return nil, ErrNoClaimable
	}

	return &ClaimPlan{
		Participant: participant,
		Time:        now,
		Amount:      amount,
	}, nil
}

// ApplyClaim advances the claim checkpoint of the participant to the plan time.
func (s *State) ApplyClaim(plan *ClaimPlan) error {
	acc, ok := s.accounts[plan.Participant]
	if !ok {
		return fmt.Errorf("unknown participant %s", plan.Participant)
	}
	if cp, claimed := acc.ClaimCheckpoint(); claimed && plan.Time < cp {
		return fmt.Errorf("%w: claim at %d before checkpoint %d", ErrInvalidOrdinal, plan.Time, cp)
	}

	acc.claimCheckpoint = plan.Time
	acc.claimed = true
	acc.totalClaimed = acc.totalClaimed.Add(plan.Amount)

	return nil
}

// RestoreClaim sets a persisted claim checkpoint. It is used while replaying
// the journal at start-up.
func (s *State) RestoreClaim(participant string, checkpoint Ordinal, totalClaimed sdkmath.Uint) error {
	acc, ok := s.accounts[participant]
	if !ok {
		return fmt.Errorf("claim checkpoint for unknown participant %s", participant)
	}

	acc.claimCheckpoint = checkpoint
	acc.claimed = true
	acc.totalClaimed = totalClaimed

	return nil
}
