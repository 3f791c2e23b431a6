package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

func (db *Database) SaveClaim(ctx context.Context, claim *model.ClaimDocument) error {
	if claim == nil {
		return errors.New("nil claim")
	}

	filter := bson.M{"_id": claim.ParticipantID}
	update := bson.M{"$set": claim}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.ClaimCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetClaim(ctx context.Context, participantID string) (*model.ClaimDocument, error) {
	filter := bson.M{"_id": participantID}
	res := db.collection(model.ClaimCollection).FindOne(ctx, filter)

	var claim model.ClaimDocument
	if err := res.Decode(&claim); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     participantID,
				Message: "claim not found",
			}
		}
		return nil, err
	}

	return &claim, nil
}

func (db *Database) GetClaims(ctx context.Context) ([]*model.ClaimDocument, error) {
	cursor, err := db.collection(model.ClaimCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var claims []*model.ClaimDocument
	if err = cursor.All(ctx, &claims); err != nil {
		return nil, err
	}

	return claims, nil
}
