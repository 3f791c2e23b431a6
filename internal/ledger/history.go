package ledger

import (
	"sort"

	sdkmath "cosmossdk.io/math"
)

// checkpoints is a time sorted, append-only list of (time, value) records.
// Lookups return the last record at or before a given time, so a duplicate
// time resolves to the value appended last.
type checkpoints struct {
	times  []Ordinal
	values []sdkmath.Uint
}

func (c *checkpoints) append(time Ordinal, value sdkmath.Uint) {
	c.times = append(c.times, time)
	c.values = append(c.values, value)
}

func (c *checkpoints) len() int {
	return len(c.times)
}

// upperBound returns the index of the first record with time > t.
func (c *checkpoints) upperBound(t Ordinal) int {
	return sort.Search(len(c.times), func(i int) bool {
		return c.times[i] > t
	})
}

func (c *checkpoints) at(t Ordinal) sdkmath.Uint {
	i := c.upperBound(t)
	if i == 0 {
		return sdkmath.ZeroUint()
	}
	return c.values[i-1]
}

func (c *checkpoints) last() (Ordinal, sdkmath.Uint, bool) {
	n := len(c.times)
	if n == 0 {
		return 0, sdkmath.ZeroUint(), false
	}
	return c.times[n-1], c.values[n-1], true
}

// StakeHistory is the stake log of a single participant.
type StakeHistory struct {
	log checkpoints
}

// RecordChange appends the absolute stake level effective from time.
// Callers must not pass a time earlier than the last recorded one.
func (h *StakeHistory) RecordChange(time Ordinal, newAmount sdkmath.Uint) {
	h.log.append(time, newAmount)
}

// StakeAt returns the stake effective at time, or zero if none was recorded yet.
func (h *StakeHistory) StakeAt(time Ordinal) sdkmath.Uint {
	return h.log.at(time)
}

func (h *StakeHistory) CurrentStake() sdkmath.Uint {
	_, amount, _ := h.log.last()
	return amount
}

// FirstTime returns the time of the first recorded event.
func (h *StakeHistory) FirstTime() (Ordinal, bool) {
	if h.log.len() == 0 {
		return 0, false
	}
	return h.log.times[0], true
}

func (h *StakeHistory) Len() int {
	return h.log.len()
}

// Events returns a copy of the recorded events in insertion order.
func (h *StakeHistory) Events() []StakeEvent {
	events := make([]StakeEvent, h.log.len())
	for i := range events {
		events[i] = StakeEvent{Time: h.log.times[i], Amount: h.log.values[i]}
	}
	return events
}

// GlobalStakeHistory is the log of the total stake across all participants.
type GlobalStakeHistory struct {
	log checkpoints
}

func (g *GlobalStakeHistory) RecordTotal(time Ordinal, newTotal sdkmath.Uint) {
	g.log.append(time, newTotal)
}

func (g *GlobalStakeHistory) TotalAt(time Ordinal) sdkmath.Uint {
	return g.log.at(time)
}

// CurrentTotal returns the most recently recorded total.
func (g *GlobalStakeHistory) CurrentTotal() sdkmath.Uint {
	t, _, ok := g.log.last()
	if !ok {
		return sdkmath.ZeroUint()
	}
	return g.log.at(t)
}

// LastTime returns the time of the most recent checkpoint.
func (g *GlobalStakeHistory) LastTime() (Ordinal, bool) {
	t, _, ok := g.log.last()
	return t, ok
}

func (g *GlobalStakeHistory) Len() int {
	return g.log.len()
}

func (g *GlobalStakeHistory) Checkpoints() []GlobalCheckpoint {
	cps := make([]GlobalCheckpoint, g.log.len())
	for i := range cps {
		cps[i] = GlobalCheckpoint{Time: g.log.times[i], TotalStaked: g.log.values[i]}
	}
	return cps
}
