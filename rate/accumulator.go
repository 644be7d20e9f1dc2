package rate

import (
	"math"
	"time"
)

// Accumulator converts elapsed wall-clock time into a whole number of items
// that are due for processing, carrying the fractional remainder forward
// between evaluations. Carrying the remainder is what makes the long-run
// average rate converge to the configured limit regardless of tick length
// or scheduling jitter.
//
// An Accumulator is not safe for concurrent use. The scheduler is its only
// caller and evaluates it at most once per tick.
type Accumulator struct {
	perSecond float64
	lastTick  time.Time
	ready     float64
}

// NewAccumulator creates an accumulator targeting perMinute items per minute,
// measuring elapsed time from start. It is seeded with one whole item of
// credit so the very first evaluation dispatches immediately instead of
// waiting out a full period.
func NewAccumulator(perMinute float64, start time.Time) *Accumulator {
	return &Accumulator{
		perSecond: perMinute / 60,
		lastTick:  start,
		ready:     1,
	}
}

// Due returns the number of whole items due at now and retains the sub-one
// remainder for the next evaluation. It never returns a negative count; a
// clock that steps backwards counts as zero elapsed time.
//
// Calling Due consumes the returned count. The scheduler therefore only
// calls it when a worker slot is free; while all slots are busy, elapsed
// time keeps accruing here and the next call returns the whole backlog.
func (a *Accumulator) Due(now time.Time) int {
	elapsed := now.Sub(a.lastTick).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	a.lastTick = now

	a.ready += elapsed * a.perSecond
	whole := math.Floor(a.ready)
	a.ready -= whole

	return int(whole)
}
