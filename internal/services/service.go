package services

import (
	"context"
	"sync"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/clients/custody"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/clock"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/queue"
)

// Service owns the in-memory ledger state. Mutations hold the write lock from
// planning until the change is applied, queries share the read lock.
type Service struct {
	cfg       *config.Config
	db        db.DbInterface
	custody   custody.Custody
	publisher queue.Publisher
	clock     clock.Clock

	mu    sync.RWMutex
	state *ledger.State
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	custody custody.Custody,
	publisher queue.Publisher,
	clk clock.Clock,
) *Service {
	return &Service{
		cfg:       cfg,
		db:        db,
		custody:   custody,
		publisher: publisher,
		clock:     clk,
		state:     ledger.NewState(cfg.Ledger.Rate()),
	}
}

// Start replays the journal and launches the background pollers.
func (s *Service) Start(ctx context.Context) error {
	if err := s.Bootstrap(ctx); err != nil {
		return err
	}
	s.StartStatsPoller(ctx)
	return nil
}

// Now is the ordinal of the current tick.
func (s *Service) Now() ledger.Ordinal {
	return s.clock.Now()
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
