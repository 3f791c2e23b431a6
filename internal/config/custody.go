package config

import (
	"errors"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"
)

type CustodyType string

const (
	// CustodyTypeVault keeps the pool in process, useful for local runs and tests.
	CustodyTypeVault CustodyType = "vault"
	CustodyTypeHTTP  CustodyType = "http"
)

type CustodyConfig struct {
	Type CustodyType `mapstructure:"type"`
	// InitialReserve seeds the vault with reward funds.
	InitialReserve string        `mapstructure:"initial-reserve"`
	URL            string        `mapstructure:"url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	MaxRetryTimes  uint          `mapstructure:"max-retry-times"`
	RetryInterval  time.Duration `mapstructure:"retry-interval"`
}

func (cfg *CustodyConfig) Validate() error {
	switch cfg.Type {
	case CustodyTypeVault:
		if cfg.InitialReserve == "" {
			return nil
		}
		if _, err := sdkmath.ParseUint(cfg.InitialReserve); err != nil {
			return fmt.Errorf("invalid initial-reserve %q: %w", cfg.InitialReserve, err)
		}
		return nil
	case CustodyTypeHTTP:
		if cfg.URL == "" {
			return errors.New("custody url must be set")
		}
		if cfg.Timeout <= 0 {
			return errors.New("custody timeout must be positive")
		}
		if cfg.MaxRetryTimes <= 0 {
			return errors.New("custody max-retry-times must be positive")
		}
		if cfg.RetryInterval <= 0 {
			return errors.New("custody retry-interval must be positive")
		}
		return nil
	default:
		return fmt.Errorf("unsupported custody type %q", cfg.Type)
	}
}

// Reserve returns the initial vault reserve, zero when not configured.
func (cfg *CustodyConfig) Reserve() sdkmath.Uint {
	if cfg.InitialReserve == "" {
		return sdkmath.ZeroUint()
	}
	return sdkmath.NewUintFromString(cfg.InitialReserve)
}
