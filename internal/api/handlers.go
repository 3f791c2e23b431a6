package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	sdkmath "cosmossdk.io/math"
	"github.com/go-chi/chi/v5"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/services"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
	"github.com/babylonlabs-io/staking-reward-ledger/pkg"
)

//go:generate mockery --name=LedgerService --output=../../tests/mocks --outpkg=mocks --filename=mock_ledger_service.go
type LedgerService interface {
	Now() ledger.Ordinal
	Ping(ctx context.Context) error
	Deposit(ctx context.Context, participant string, amount sdkmath.Uint, now ledger.Ordinal) error
	Withdraw(ctx context.Context, participant string, now ledger.Ordinal) (sdkmath.Uint, error)
	Claim(ctx context.Context, participant string, now ledger.Ordinal) (sdkmath.Uint, error)
	Claimable(participant string, now ledger.Ordinal) sdkmath.Uint
	History(participant string) (*services.ParticipantHistory, bool)
	OverallStats(ctx context.Context) (*services.OverallStats, error)
}

type Handler struct {
	service LedgerService
}

func NewHandler(service LedgerService) *Handler {
	return &Handler{service: service}
}

type DepositRequest struct {
	Amount string `json:"amount"`
}

type OperationResponse struct {
	ParticipantID string         `json:"participant_id"`
	Amount        string         `json:"amount"`
	Ordinal       ledger.Ordinal `json:"ordinal"`
}

type ClaimableResponse struct {
	ParticipantID string         `json:"participant_id"`
	Claimable     string         `json:"claimable"`
	Ordinal       ledger.Ordinal `json:"ordinal"`
}

type StakeEventPublic struct {
	Ordinal ledger.Ordinal `json:"ordinal"`
	Amount  string         `json:"amount"`
}

type HistoryResponse struct {
	ParticipantID   string             `json:"participant_id"`
	Events          []StakeEventPublic `json:"events"`
	ClaimCheckpoint *ledger.Ordinal    `json:"claim_checkpoint,omitempty"`
	TotalClaimed    string             `json:"total_claimed"`
}

type StatsResponse struct {
	Ordinal            ledger.Ordinal `json:"ordinal"`
	TotalStaked        string         `json:"total_staked"`
	Participants       uint64         `json:"participants"`
	ActiveParticipants uint64         `json:"active_participants"`
	PendingRewards     string         `json:"pending_rewards"`
	TotalClaimed       string         `json:"total_claimed"`
}

func participantID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if err := pkg.ValidateParticipantID(id); err != nil {
		return "", types.NewValidationFailedError(err)
	}
	return id, nil
}

func parseAmount(raw string) (sdkmath.Uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sdkmath.Uint{}, types.NewError(http.StatusBadRequest, types.InvalidAmount, errors.New("amount is required"))
	}
	amount, err := sdkmath.ParseUint(raw)
	if err != nil {
		return sdkmath.Uint{}, types.NewError(http.StatusBadRequest, types.InvalidAmount, fmt.Errorf("invalid amount %q", raw))
	}
	return amount, nil
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) error {
	id, err := participantID(r)
	if err != nil {
		return err
	}

	var req DepositRequest
	if err := parseJSON(r.Body, &req); err != nil {
		return types.NewError(http.StatusBadRequest, types.BadRequest, fmt.Errorf("invalid request body: %w", err))
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return err
	}

	now := h.service.Now()
	if err := h.service.Deposit(r.Context(), id, amount, now); err != nil {
		return err
	}

	return writeData(w, OperationResponse{ParticipantID: id, Amount: amount.String(), Ordinal: now})
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) error {
	id, err := participantID(r)
	if err != nil {
		return err
	}

	now := h.service.Now()
	amount, err := h.service.Withdraw(r.Context(), id, now)
	if err != nil {
		return err
	}

	return writeData(w, OperationResponse{ParticipantID: id, Amount: amount.String(), Ordinal: now})
}

func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) error {
	id, err := participantID(r)
	if err != nil {
		return err
	}

	now := h.service.Now()
	amount, err := h.service.Claim(r.Context(), id, now)
	if err != nil {
		return err
	}

	return writeData(w, OperationResponse{ParticipantID: id, Amount: amount.String(), Ordinal: now})
}

func (h *Handler) Claimable(w http.ResponseWriter, r *http.Request) error {
	id, err := participantID(r)
	if err != nil {
		return err
	}

	now := h.service.Now()
	claimable := h.service.Claimable(id, now)

	return writeData(w, ClaimableResponse{ParticipantID: id, Claimable: claimable.String(), Ordinal: now})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) error {
	id, err := participantID(r)
	if err != nil {
		return err
	}

	history, _ := h.service.History(id)
	events := make([]StakeEventPublic, 0, len(history.Events))
	for _, ev := range history.Events {
		events = append(events, StakeEventPublic{Ordinal: ev.Time, Amount: ev.Amount.String()})
	}

	return writeData(w, HistoryResponse{
		ParticipantID:   id,
		Events:          events,
		ClaimCheckpoint: history.ClaimCheckpoint,
		TotalClaimed:    history.TotalClaimed.String(),
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.service.OverallStats(r.Context())
	if err != nil {
		return err
	}

	return writeData(w, StatsResponse{
		Ordinal:            stats.Ordinal,
		TotalStaked:        stats.TotalStaked.String(),
		Participants:       stats.Participants,
		ActiveParticipants: stats.ActiveParticipants,
		PendingRewards:     stats.PendingRewards.String(),
		TotalClaimed:       stats.TotalClaimed.String(),
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Ping(r.Context()); err != nil {
		return types.NewError(http.StatusServiceUnavailable, types.ServiceUnavailable, fmt.Errorf("store unreachable: %w", err))
	}
	return writeData(w, "ok")
}
