package poller

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type PollFunc func(ctx context.Context) error

// Poller calls a function on a fixed interval until stopped or until its
// context is done. Errors are logged and polling continues.
type Poller struct {
	name      string
	interval  time.Duration
	immediate bool
	quit      chan struct{}
	poll      PollFunc
}

type Option func(*Poller)

// WithImmediateStart makes the first poll happen on Start instead of after
// the first interval.
func WithImmediateStart() Option {
	return func(p *Poller) {
		p.immediate = true
	}
}

func NewPoller(name string, interval time.Duration, poll PollFunc, opts ...Option) *Poller {
	p := &Poller{
		name:     name,
		interval: interval,
		quit:     make(chan struct{}),
		poll:     poll,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Poller) Start(ctx context.Context) {
	logger := log.Ctx(ctx).With().Str("poller", p.name).Logger()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logger.Info().Msgf("Starting poller with interval %s", p.interval)
	if p.immediate {
		p.run(ctx, &logger)
	}

	for {
		select {
		case <-ticker.C:
			p.run(ctx, &logger)
		case <-ctx.Done():
			logger.Info().Msg("Poller stopped due to context cancellation")
			return
		case <-p.quit:
			logger.Info().Msg("Poller stopped")
			return
		}
	}
}

func (p *Poller) run(ctx context.Context, logger *zerolog.Logger) {
	if err := p.poll(ctx); err != nil {
		logger.Error().Err(err).Msg("Error polling")
		return
	}
	logger.Debug().Msg("Poll method executed successfully")
}

func (p *Poller) Stop() {
	close(p.quit)
}
