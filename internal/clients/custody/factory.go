package custody

import (
	"fmt"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
)

// New builds the custody collaborator selected by cfg, wrapped with metrics.
func New(cfg *config.CustodyConfig) (*CustodyWithMetrics, error) {
	switch cfg.Type {
	case config.CustodyTypeVault:
		return NewCustodyWithMetrics(NewVault(cfg.Reserve())), nil
	case config.CustodyTypeHTTP:
		return NewCustodyWithMetrics(NewClient(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported custody type %q", cfg.Type)
	}
}
