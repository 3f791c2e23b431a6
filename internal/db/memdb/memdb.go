// Package memdb keeps ledger documents in process memory. Contents are lost on
// restart, it is meant for tests and local experiments.
package memdb

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

type Database struct {
	mu      sync.RWMutex
	entries map[uint64]model.LedgerEntryDocument
	claims  map[string]model.ClaimDocument
	stats   *model.OverallStatsDocument
}

var _ db.DbInterface = (*Database)(nil)

func New() *Database {
	return &Database{
		entries: make(map[uint64]model.LedgerEntryDocument),
		claims:  make(map[string]model.ClaimDocument),
	}
}

func (d *Database) Ping(_ context.Context) error {
	return nil
}

func (d *Database) Close(_ context.Context) error {
	return nil
}

func (d *Database) SaveLedgerEntry(_ context.Context, entry *model.LedgerEntryDocument) error {
	if entry == nil {
		return errors.New("nil ledger entry")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.entries[entry.Seq]; ok {
		return &db.DuplicateKeyError{
			Key:     strconv.FormatUint(entry.Seq, 10),
			Message: "ledger entry already exists",
		}
	}
	d.entries[entry.Seq] = *entry
	return nil
}

func (d *Database) GetLedgerEntries(_ context.Context, afterSeq uint64) ([]*model.LedgerEntryDocument, error) {
	return d.filterEntries(func(e *model.LedgerEntryDocument) bool {
		return e.Seq > afterSeq
	}), nil
}

func (d *Database) GetLedgerEntriesByParticipant(_ context.Context, participantID string) ([]*model.LedgerEntryDocument, error) {
	return d.filterEntries(func(e *model.LedgerEntryDocument) bool {
		return e.ParticipantID == participantID
	}), nil
}

func (d *Database) filterEntries(keep func(e *model.LedgerEntryDocument) bool) []*model.LedgerEntryDocument {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var result []*model.LedgerEntryDocument
	for _, entry := range d.entries {
		if keep(&entry) {
			result = append(result, &entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Seq < result[j].Seq
	})
	return result
}

func (d *Database) SaveClaim(_ context.Context, claim *model.ClaimDocument) error {
	if claim == nil {
		return errors.New("nil claim")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.claims[claim.ParticipantID] = *claim
	return nil
}

func (d *Database) GetClaim(_ context.Context, participantID string) (*model.ClaimDocument, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	claim, ok := d.claims[participantID]
	if !ok {
		return nil, &db.NotFoundError{
			Key:     participantID,
			Message: "claim not found",
		}
	}
	return &claim, nil
}

func (d *Database) GetClaims(_ context.Context) ([]*model.ClaimDocument, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	claims := make([]*model.ClaimDocument, 0, len(d.claims))
	for _, claim := range d.claims {
		claims = append(claims, &claim)
	}
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].ParticipantID < claims[j].ParticipantID
	})
	return claims, nil
}

func (d *Database) UpsertOverallStats(_ context.Context, stats *model.OverallStatsDocument) error {
	if stats == nil {
		return errors.New("nil stats")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	stats.ID = db.OverallStatsID
	stored := *stats
	d.stats = &stored
	return nil
}

func (d *Database) GetOverallStats(_ context.Context) (*model.OverallStatsDocument, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stats == nil {
		return nil, &db.NotFoundError{
			Key:     db.OverallStatsID,
			Message: "overall stats not found",
		}
	}
	stats := *d.stats
	return &stats, nil
}
