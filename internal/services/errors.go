package services

import (
	"errors"
	"net/http"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/types"
)

// ledgerError maps engine rejections onto API errors.
func ledgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return types.NewError(http.StatusBadRequest, types.InvalidAmount, err)
	case errors.Is(err, ledger.ErrInvalidOrdinal):
		return types.NewError(http.StatusConflict, types.InvalidOrdinal, err)
	case errors.Is(err, ledger.ErrNoStake):
		return types.NewError(http.StatusConflict, types.NoStake, err)
	case errors.Is(err, ledger.ErrNoClaimable):
		return types.NewError(http.StatusConflict, types.NoClaimable, err)
	default:
		return types.NewInternalServiceError(err)
	}
}

func transferError(err error) error {
	return types.NewError(http.StatusBadGateway, types.TransferFailure, err)
}
