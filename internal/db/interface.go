package db

import (
	"context"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	// SaveLedgerEntry appends a journal entry. It returns DuplicateKeyError when
	// an entry with the same sequence number already exists.
	SaveLedgerEntry(ctx context.Context, entry *model.LedgerEntryDocument) error
	// GetLedgerEntries returns entries with a sequence number greater than
	// afterSeq in ascending order.
	GetLedgerEntries(ctx context.Context, afterSeq uint64) ([]*model.LedgerEntryDocument, error)
	GetLedgerEntriesByParticipant(ctx context.Context, participantID string) ([]*model.LedgerEntryDocument, error)
	// SaveClaim upserts the claim checkpoint of a participant.
	SaveClaim(ctx context.Context, claim *model.ClaimDocument) error
	GetClaim(ctx context.Context, participantID string) (*model.ClaimDocument, error)
	GetClaims(ctx context.Context) ([]*model.ClaimDocument, error)
	UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error
	GetOverallStats(ctx context.Context) (*model.OverallStatsDocument, error)
}
