package custody

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog/log"
)

// Vault is an in-process custody pool. Deposits grow the balance and
// payouts beyond the balance are declined.
type Vault struct {
	mu      sync.Mutex
	balance sdkmath.Uint
}

var _ Custody = (*Vault)(nil)

func NewVault(reserve sdkmath.Uint) *Vault {
	return &Vault{balance: reserve}
}

func (v *Vault) TransferIn(ctx context.Context, participant string, amount sdkmath.Uint) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	balance := new(big.Int).Add(v.balance.BigInt(), amount.BigInt())
	if err := sdkmath.UintOverflow(balance); err != nil {
		return fmt.Errorf("%w: vault balance %s cannot hold %s more: %w", ErrTransferDeclined, v.balance, amount, err)
	}
	v.balance = sdkmath.NewUintFromBigInt(balance)
	log.Ctx(ctx).Debug().
		Str("participant", participant).
		Stringer("amount", amount).
		Stringer("balance", v.balance).
		Msg("vault received transfer")
	return nil
}

func (v *Vault) TransferOut(ctx context.Context, participant string, amount sdkmath.Uint) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.balance.LT(amount) {
		return fmt.Errorf("%w: vault balance %s is below %s", ErrTransferDeclined, v.balance, amount)
	}
	v.balance = v.balance.Sub(amount)
	log.Ctx(ctx).Debug().
		Str("participant", participant).
		Stringer("amount", amount).
		Stringer("balance", v.balance).
		Msg("vault paid out transfer")
	return nil
}

func (v *Vault) Balance() sdkmath.Uint {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.balance
}
