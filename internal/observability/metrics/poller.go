package metrics

import (
	"context"
	"time"
)

// RecordPollerDuration wraps a poll function so each run is observed under
// the given poller name.
func RecordPollerDuration(name string, f func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		start := time.Now()
		err := f(ctx)
		pollerDurationHistogram.WithLabelValues(name, outcome(err != nil).String()).
			Observe(time.Since(start).Seconds())
		return err
	}
}
