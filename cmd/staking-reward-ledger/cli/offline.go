package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/clients/custody"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/clock"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/queue"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/services"
)

// loadLedger rebuilds the ledger from the configured store without starting
// the server. Nothing is transferred or published by the returned service.
func loadLedger(ctx context.Context) (*services.Service, func(), error) {
	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("error while loading config file: %w", err)
	}

	dbClient, err := openDatabase(ctx, &cfg.Db, false)
	if err != nil {
		return nil, nil, err
	}
	closeDb := func() {
		if err := dbClient.Close(context.Background()); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("error while closing db client")
		}
	}

	tickClock := clock.NewTickClock(cfg.Ledger.Genesis(), cfg.Ledger.TickInterval)
	service := services.NewService(cfg, dbClient, custody.NewVault(cfg.Custody.Reserve()), queue.LoggingPublisher{}, tickClock)
	if err := service.Bootstrap(ctx); err != nil {
		closeDb()
		return nil, nil, err
	}

	return service, closeDb, nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
