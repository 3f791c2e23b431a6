package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

func (db *Database) SaveLedgerEntry(ctx context.Context, entry *model.LedgerEntryDocument) error {
	if entry == nil {
		return errors.New("nil ledger entry")
	}

	_, err := db.collection(model.LedgerEntryCollection).InsertOne(ctx, entry)
	if err != nil {
		var writeErr mongo.WriteException
		if errors.As(err, &writeErr) {
			for _, e := range writeErr.WriteErrors {
				if mongo.IsDuplicateKeyError(e) {
					return &DuplicateKeyError{
						Key:     strconv.FormatUint(entry.Seq, 10),
						Message: "ledger entry already exists",
					}
				}
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetLedgerEntries(ctx context.Context, afterSeq uint64) ([]*model.LedgerEntryDocument, error) {
	filter := bson.M{"_id": bson.M{"$gt": afterSeq}}
	return db.findLedgerEntries(ctx, filter)
}

func (db *Database) GetLedgerEntriesByParticipant(ctx context.Context, participantID string) ([]*model.LedgerEntryDocument, error) {
	filter := bson.M{"participant_id": participantID}
	return db.findLedgerEntries(ctx, filter)
}

func (db *Database) findLedgerEntries(ctx context.Context, filter bson.M) ([]*model.LedgerEntryDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := db.collection(model.LedgerEntryCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*model.LedgerEntryDocument
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
