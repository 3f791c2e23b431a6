// Package clock maps wall-clock time onto ledger ordinals.
package clock

import (
	"time"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/ledger"
)

type Clock interface {
	Now() ledger.Ordinal
}

// TickClock counts whole ticks elapsed since genesis. Times before genesis
// map to ordinal 0.
type TickClock struct {
	genesis time.Time
	tick    time.Duration
	now     func() time.Time
}

var _ Clock = (*TickClock)(nil)

func NewTickClock(genesis time.Time, tick time.Duration) *TickClock {
	return &TickClock{
		genesis: genesis,
		tick:    tick,
		now:     time.Now,
	}
}

func (c *TickClock) Now() ledger.Ordinal {
	return c.OrdinalAt(c.now())
}

func (c *TickClock) OrdinalAt(t time.Time) ledger.Ordinal {
	elapsed := t.Sub(c.genesis)
	if elapsed <= 0 || c.tick <= 0 {
		return 0
	}
	return ledger.Ordinal(elapsed / c.tick)
}

// TimeOf returns the wall-clock start of an ordinal.
func (c *TickClock) TimeOf(o ledger.Ordinal) time.Time {
	return c.genesis.Add(time.Duration(o) * c.tick)
}
