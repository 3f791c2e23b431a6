package model

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
)

const timeout = 30 * time.Second

type index struct {
	Keys   bson.D
	Unique bool
}

var collections = map[string][]index{
	LedgerEntryCollection: {
		{Keys: bson.D{{Key: "participant_id", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "ordinal", Value: 1}}},
	},
	ClaimCollection:        nil,
	OverallStatsCollection: nil,
}

// Setup creates the collections and indexes used by the ledger store.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	credential := options.Credential{
		Username: cfg.Username,
		Password: cfg.Password,
	}
	clientOps := options.Client().ApplyURI(cfg.Address).SetAuth(credential)
	client, err := mongo.Connect(ctx, clientOps)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to disconnect mongo setup client")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	database := client.Database(cfg.DbName)
	for collection, idxs := range collections {
		createCollection(ctx, database, collection)
		for _, idx := range idxs {
			if err := createIndex(ctx, database, collection, idx); err != nil {
				return err
			}
		}
	}

	log.Ctx(ctx).Info().Msg("Collections and indexes created successfully")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) {
	// Create the collection if it does not exist
	err := database.CreateCollection(ctx, collectionName)
	if err != nil {
		// Skip if the collection already exists
		if _, ok := err.(mongo.CommandError); ok {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("collection", collectionName).Msg("Failed to create collection")
		return
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("Collection created successfully")
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	indexModel := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	_, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	log.Ctx(ctx).Debug().Str("collection", collectionName).Msg("Index created successfully")
	return nil
}
