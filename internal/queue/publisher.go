package queue

import (
	"context"

	"github.com/rs/zerolog/log"
)

//go:generate mockery --name=Publisher --output=../../tests/mocks --outpkg=mocks --filename=mock_publisher.go
type Publisher interface {
	Publish(ctx context.Context, ev *LedgerEvent) error
	Close() error
}

// LoggingPublisher writes events to the log instead of a broker. It is used
// when no queue is configured.
type LoggingPublisher struct{}

var _ Publisher = LoggingPublisher{}

func (LoggingPublisher) Publish(ctx context.Context, ev *LedgerEvent) error {
	log.Ctx(ctx).Info().
		Stringer("event_type", ev.EventType).
		Str("participant", ev.ParticipantID).
		Str("amount", ev.Amount).
		Uint64("ordinal", ev.Ordinal).
		Msg("ledger event")
	return nil
}

func (LoggingPublisher) Close() error {
	return nil
}
