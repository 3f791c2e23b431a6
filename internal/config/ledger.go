package config

import (
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
)

const defaultTickInterval = time.Second

type LedgerConfig struct {
	// RewardRate is the number of reward units paid per tick to the whole pool.
	RewardRate string `mapstructure:"reward-rate"`
	// GenesisUnix is the unix time of ordinal 0.
	GenesisUnix  int64         `mapstructure:"genesis-unix"`
	TickInterval time.Duration `mapstructure:"tick-interval"`
}

func (cfg *LedgerConfig) Validate() error {
	if cfg.RewardRate == "" {
		return errors.New("reward-rate is required")
	}

	rate, err := sdkmath.ParseUint(cfg.RewardRate)
	if err != nil {
		return fmt.Errorf("invalid reward-rate %q: %w", cfg.RewardRate, err)
	}
	if rate.BigInt().BitLen() > ledger.MaxRewardRateBits {
		return fmt.Errorf("reward-rate must fit in %d bits", ledger.MaxRewardRateBits)
	}

	if cfg.GenesisUnix < 0 {
		return errors.New("genesis-unix must not be negative")
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = defaultTickInterval
	}

	return nil
}

// Rate returns the parsed reward rate. Validate must have succeeded before.
func (cfg *LedgerConfig) Rate() sdkmath.Uint {
	return sdkmath.NewUintFromString(cfg.RewardRate)
}

func (cfg *LedgerConfig) Genesis() time.Time {
	return time.Unix(cfg.GenesisUnix, 0).UTC()
}
