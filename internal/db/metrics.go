package db

import (
	"context"
	"time"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/db/model"
	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) Close(ctx context.Context) error {
	return d.db.Close(ctx)
}

func (d *DbWithMetrics) SaveLedgerEntry(ctx context.Context, entry *model.LedgerEntryDocument) error {
	return d.run("SaveLedgerEntry", func() error {
		return d.db.SaveLedgerEntry(ctx, entry)
	})
}

func (d *DbWithMetrics) GetLedgerEntries(ctx context.Context, afterSeq uint64) (result []*model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerEntries", func() error {
		result, err = d.db.GetLedgerEntries(ctx, afterSeq)
		return err
	})
	return
}

func (d *DbWithMetrics) GetLedgerEntriesByParticipant(ctx context.Context, participantID string) (result []*model.LedgerEntryDocument, err error) {
	//nolint:errcheck
	d.run("GetLedgerEntriesByParticipant", func() error {
		result, err = d.db.GetLedgerEntriesByParticipant(ctx, participantID)
		return err
	})
	return
}

func (d *DbWithMetrics) SaveClaim(ctx context.Context, claim *model.ClaimDocument) error {
	return d.run("SaveClaim", func() error {
		return d.db.SaveClaim(ctx, claim)
	})
}

func (d *DbWithMetrics) GetClaim(ctx context.Context, participantID string) (result *model.ClaimDocument, err error) {
	//nolint:errcheck
	d.run("GetClaim", func() error {
		result, err = d.db.GetClaim(ctx, participantID)
		return err
	})
	return
}

func (d *DbWithMetrics) GetClaims(ctx context.Context) (result []*model.ClaimDocument, err error) {
	//nolint:errcheck
	d.run("GetClaims", func() error {
		result, err = d.db.GetClaims(ctx)
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertOverallStats(ctx context.Context, stats *model.OverallStatsDocument) error {
	return d.run("UpsertOverallStats", func() error {
		return d.db.UpsertOverallStats(ctx, stats)
	})
}

func (d *DbWithMetrics) GetOverallStats(ctx context.Context) (result *model.OverallStatsDocument, err error) {
	//nolint:errcheck
	d.run("GetOverallStats", func() error {
		result, err = d.db.GetOverallStats(ctx)
		return err
	})
	return
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
