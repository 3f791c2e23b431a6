//go:build integration

package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

const (
	mongoUsername = "user"
	mongoPassword = "password"
	mongoDatabase = "test-database"

	// this version corresponds to docker tag for mongodb
	// it should be in sync with mongo version used in production
	mongoVersion = "7.0.5"

	mongoTimeout = 5 * time.Second
)

// Mongo is a throwaway mongodb container with the ledger collections set up.
type Mongo struct {
	Config *config.DbConfig
	// DB talks to the test database directly, bypassing the client under test.
	DB *mongo.Database

	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// StartMongo runs a mongodb container and applies the ledger migrations.
// Close MUST be called in the end to release docker resources.
func StartMongo() (*Mongo, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, err
	}

	suffix, err := RandomAlphaNum(3)
	if err != nil {
		return nil, err
	}

	// container names are unique, an old container may still be running
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "ledger-mongo-" + suffix,
		Repository: "mongo",
		Tag:        mongoVersion,
		Env: []string{
			"MONGO_INITDB_ROOT_USERNAME=" + mongoUsername,
			"MONGO_INITDB_ROOT_PASSWORD=" + mongoPassword,
			"MONGO_INITDB_DATABASE=" + mongoDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, err
	}

	m := &Mongo{
		Config: &config.DbConfig{
			Backend:  config.DbBackendMongo,
			Username: mongoUsername,
			Password: mongoPassword,
			DbName:   mongoDatabase,
			Address:  fmt.Sprintf("mongodb://localhost:%s/", resource.GetPort("27017/tcp")),
		},
		pool:     pool,
		resource: resource,
	}

	if err := pool.Retry(m.connect); err != nil {
		m.Close()
		return nil, fmt.Errorf("mongo did not come up: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	if err := model.Setup(ctx, m.Config); err != nil {
		m.Close()
		return nil, fmt.Errorf("failed to init mongo database: %w", err)
	}

	return m, nil
}

func (m *Mongo) connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	clientOps := options.Client().
		ApplyURI(m.Config.Address).
		SetAuth(options.Credential{Username: m.Config.Username, Password: m.Config.Password})
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return err
	}

	m.DB = client.Database(m.Config.DbName)
	return nil
}

// Reset empties the ledger collections.
func (m *Mongo) Reset(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()

	for _, collection := range []string{
		model.LedgerEntryCollection,
		model.ClaimCollection,
		model.OverallStatsCollection,
	} {
		_, err := m.DB.Collection(collection).DeleteMany(ctx, bson.M{})
		require.NoError(t, err)
	}
}

func (m *Mongo) Close() {
	if m.DB != nil {
		_ = m.DB.Client().Disconnect(context.Background())
	}
	if err := m.pool.Purge(m.resource); err != nil {
		fmt.Printf("failed to purge mongo container: %v\n", err)
	}
}
