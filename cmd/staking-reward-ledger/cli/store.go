package cli

import (
	"context"
	"fmt"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/badgerdb"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/memdb"
	dbmodel "github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

// openDatabase connects to the configured journal store. Mongo collections and
// indexes are created only when setup is set.
func openDatabase(ctx context.Context, cfg *config.DbConfig, setup bool) (db.DbInterface, error) {
	var (
		dbClient db.DbInterface
		err      error
	)

	switch cfg.Backend {
	case config.DbBackendMongo, "":
		if setup {
			if err := dbmodel.Setup(ctx, cfg); err != nil {
				return nil, fmt.Errorf("error while setting up ledger db model: %w", err)
			}
		}
		dbClient, err = db.New(ctx, *cfg)
	case config.DbBackendBadger:
		dbClient, err = badgerdb.Open(cfg.Path)
	case config.DbBackendMemory:
		dbClient = memdb.New()
	default:
		err = fmt.Errorf("unsupported db backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return db.NewDbWithMetrics(dbClient), nil
}
