package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

const OverallStatsID = "overall_stats"

// UpsertOverallStats updates or inserts overall stats
func (db *Database) UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error {
	if stats == nil {
		return errors.New("nil stats")
	}
	stats.ID = OverallStatsID

	filter := bson.M{"_id": OverallStatsID}
	update := bson.M{"$set": stats}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.OverallStatsCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error) {
	filter := bson.M{"_id": OverallStatsID}
	res := db.collection(model.OverallStatsCollection).FindOne(ctx, filter)

	var stats model.OverallStatsDocument
	if err := res.Decode(&stats); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     OverallStatsID,
				Message: "overall stats not found",
			}
		}
		return nil, err
	}

	return &stats, nil
}
