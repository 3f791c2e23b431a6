// Package badgerdb is an embedded DbInterface implementation for single node
// deployments that do not run mongo.
package badgerdb

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/dgraph-io/badger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
)

var (
	entryPrefix = []byte("entry/")
	claimPrefix = []byte("claim/")
	statsKey    = []byte("stats/" + db.OverallStatsID)
)

type Database struct {
	path     string
	badgerDB *badger.DB
	closed   atomic.Bool
}

var _ db.DbInterface = (*Database)(nil)

// Open opens or creates the badger directory at path.
func Open(path string) (*Database, error) {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create badger directory: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{logger: log.With().Str("module", "badger").Logger()})
	bdb, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Database{path: path, badgerDB: bdb}, nil
}

func (d *Database) Ping(_ context.Context) error {
	if d.closed.Load() {
		return errors.New("badger database is closed")
	}
	return nil
}

func (d *Database) Close(_ context.Context) error {
	if !d.closed.CompareAndSwap(false, true) {
		return nil
	}
	return d.badgerDB.Close()
}

func entryKey(seq uint64) []byte {
	key := make([]byte, len(entryPrefix)+8)
	copy(key, entryPrefix)
	// big endian keeps iteration order equal to sequence order
	binary.BigEndian.PutUint64(key[len(entryPrefix):], seq)
	return key
}

func claimKey(participantID string) []byte {
	return append(append([]byte{}, claimPrefix...), participantID...)
}

func (d *Database) SaveLedgerEntry(_ context.Context, entry *model.LedgerEntryDocument) error {
	if entry == nil {
		return errors.New("nil ledger entry")
	}

	value, err := bson.Marshal(entry)
	if err != nil {
		return err
	}

	key := entryKey(entry.Seq)
	return d.badgerDB.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return &db.DuplicateKeyError{
				Key:     strconv.FormatUint(entry.Seq, 10),
				Message: "ledger entry already exists",
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, value)
	})
}

func (d *Database) GetLedgerEntries(_ context.Context, afterSeq uint64) ([]*model.LedgerEntryDocument, error) {
	var entries []*model.LedgerEntryDocument
	err := d.badgerDB.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(entryKey(afterSeq + 1)); it.ValidForPrefix(entryPrefix); it.Next() {
			var entry model.LedgerEntryDocument
			if err := decodeItem(it.Item(), &entry); err != nil {
				return err
			}
			if entry.Seq <= afterSeq {
				continue
			}
			entries = append(entries, &entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (d *Database) GetLedgerEntriesByParticipant(ctx context.Context, participantID string) ([]*model.LedgerEntryDocument, error) {
	all, err := d.GetLedgerEntries(ctx, 0)
	if err != nil {
		return nil, err
	}

	var entries []*model.LedgerEntryDocument
	for _, entry := range all {
		if entry.ParticipantID == participantID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (d *Database) SaveClaim(_ context.Context, claim *model.ClaimDocument) error {
	if claim == nil {
		return errors.New("nil claim")
	}
	return d.put(claimKey(claim.ParticipantID), claim)
}

func (d *Database) GetClaim(_ context.Context, participantID string) (*model.ClaimDocument, error) {
	var claim model.ClaimDocument
	found, err := d.get(claimKey(participantID), &claim)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &db.NotFoundError{
			Key:     participantID,
			Message: "claim not found",
		}
	}
	return &claim, nil
}

func (d *Database) GetClaims(_ context.Context) ([]*model.ClaimDocument, error) {
	var claims []*model.ClaimDocument
	err := d.badgerDB.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(claimPrefix); it.ValidForPrefix(claimPrefix); it.Next() {
			var claim model.ClaimDocument
			if err := decodeItem(it.Item(), &claim); err != nil {
				return err
			}
			claims = append(claims, &claim)
		}
		return nil
	})
	if err != nil {
		return nil, err
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
	stats.ID = db.OverallStatsID
	return d.put(statsKey, stats)
}

func (d *Database) GetOverallStats(_ context.Context) (*model.OverallStatsDocument, error) {
	var stats model.OverallStatsDocument
	found, err := d.get(statsKey, &stats)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &db.NotFoundError{
			Key:     db.OverallStatsID,
			Message: "overall stats not found",
		}
	}
	return &stats, nil
}

func (d *Database) put(key []byte, doc any) error {
	value, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return d.badgerDB.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (d *Database) get(key []byte, doc any) (bool, error) {
	found := true
	err := d.badgerDB.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		return decodeItem(item, doc)
	})
	return found, err
}

func decodeItem(item *badger.Item, doc any) error {
	value, err := item.ValueCopy(nil)
	if err != nil {
		return err
	}
	if err := bson.Unmarshal(value, doc); err != nil {
		return fmt.Errorf("failed to decode %s: %w", item.Key(), err)
	}
	return nil
}

// badgerLogger routes badger's internal logging into zerolog.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msgf(format, args...)
}
