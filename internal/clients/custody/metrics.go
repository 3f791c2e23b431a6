package custody

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/observability/metrics"
)

type CustodyWithMetrics struct {
	custody Custody
}

func NewCustodyWithMetrics(custody Custody) *CustodyWithMetrics {
	return &CustodyWithMetrics{custody: custody}
}

func (c *CustodyWithMetrics) TransferIn(ctx context.Context, participant string, amount sdkmath.Uint) error {
	return runCustodyMethodWithMetrics("TransferIn", func() error {
		return c.custody.TransferIn(ctx, participant, amount)
	})
}

func (c *CustodyWithMetrics) TransferOut(ctx context.Context, participant string, amount sdkmath.Uint) error {
	return runCustodyMethodWithMetrics("TransferOut", func() error {
		return c.custody.TransferOut(ctx, participant, amount)
	})
}

func runCustodyMethodWithMetrics(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordCustodyLatency(duration, method, err != nil)
	return err
}
