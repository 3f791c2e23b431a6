package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/api"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/clients/custody"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/clock"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/tracing"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/queue"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/services"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking reward ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func newPublisher(cfg *config.QueueConfig) (queue.Publisher, error) {
	if cfg == nil {
		return queue.LoggingPublisher{}, nil
	}
	return queue.NewQueueManager(cfg)
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics address from config
	metrics.Init(cfg.Metrics.GetMetricsAddr())

	dbClient, err := openDatabase(ctx, &cfg.Db, true)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	defer func() {
		if err := dbClient.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("error while closing db client")
		}
	}()

	custodyClient, err := custody.New(&cfg.Custody)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating custody client")
	}

	publisher, err := newPublisher(cfg.Queue)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize event publisher")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("error while closing event publisher")
		}
	}()

	tickClock := clock.NewTickClock(cfg.Ledger.Genesis(), cfg.Ledger.TickInterval)
	service := services.NewService(cfg, dbClient, custodyClient, publisher, tickClock)
	if err := service.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("error while starting ledger service")
	}

	server := api.New(&cfg.Server, service)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
