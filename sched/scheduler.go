package sched

import (
	"time"

	"github.com/synek317/rpm-timer/rate"
	"github.com/synek317/rpm-timer/slots"
	"github.com/synek317/rpm-timer/source"
)

// Scheduler drives the throttling loop. On a fixed cadence it asks the rate
// accumulator how many items are due, and when a worker slot is free, pulls
// that many items from the source and dispatches them as one batch.
//
// The loop is single-threaded with respect to its own state (accumulator,
// source cursor); only the slot pool is shared with worker goroutines.
//
// Usage Example:
//
//	s := sched.New(sched.Config{PerMinute: 120}, source.FromSlice(items), process)
//	err := s.Run()
type Scheduler[T any] struct {
	config Config
	src    source.Source[T]
	fn     func([]T) error
}

// New creates a scheduler that pulls from src and hands batches to fn.
// Zero config fields are replaced by defaults, see Config.
func New[T any](config Config, src source.Source[T], fn func([]T) error) *Scheduler[T] {
	return &Scheduler[T]{
		config: applyConfig(config),
		src:    src,
		fn:     fn,
	}
}

// Run executes the loop until the source is exhausted, then waits for all
// in-flight batches to finish. It returns the first batch failure (an error
// returned by fn, or an *errors.BatchError if fn panicked); a failing batch
// is neither retried nor allowed to abort the rest of the run.
//
// Run blocks the calling goroutine for the whole run. It is not safe to
// share one Scheduler between concurrent Run calls.
func (s *Scheduler[T]) Run() error {
	start := time.Now()
	acc := rate.NewAccumulator(s.config.PerMinute, start)
	pool := slots.NewPool(s.config.MaxThreads, s.config.Logger)
	log := s.config.Logger

	log.Debugf("sched: starting, %.2f items/min, tick %v, %d worker slots",
		s.config.PerMinute, s.config.Tick, s.config.MaxThreads)

	for tick := 1; s.src.HasMore(); {
		// Capacity is checked before the accumulator is consulted, so while
		// every slot is busy the elapsed time keeps accruing and the next
		// dispatch carries the whole backlog in a single batch.
		if !pool.HasFree() {
			log.Debugf("sched: all %d slots busy, holding back", pool.Size())
		} else if due := acc.Due(time.Now()); due > 0 {
			batch := s.src.Take(due)
			if len(batch) > 0 {
				if !pool.TryDispatch(len(batch), s.process(batch)) {
					// Unreachable: this loop is the pool's only dispatcher
					// and capacity was checked above.
					log.Errorf("sched: dropped a batch of %d items, pool refused dispatch", len(batch))
				} else {
					log.Debugf("sched: dispatched %d of %d due items", len(batch), due)
				}
			}
		}

		tick = s.sleepToBoundary(start, tick)
	}

	log.Debugf("sched: source exhausted, draining workers")
	err := pool.Drain()
	if err != nil {
		log.Errorf("sched: run finished with failed batches: %v", err)
	}
	return err
}

func (s *Scheduler[T]) process(batch []T) func() error {
	return func() error {
		return s.fn(batch)
	}
}

// sleepToBoundary sleeps until the next tick boundary and returns the number
// of the boundary after it. Boundaries are absolute (start + n*tick) rather
// than re-armed relative timers, so a late wakeup only skips boundaries; it
// never stretches the cadence, and the elapsed-time accounting in the
// accumulator makes up for whatever the skipped ticks would have dispatched.
func (s *Scheduler[T]) sleepToBoundary(start time.Time, tick int) int {
	now := time.Now()
	next := start.Add(time.Duration(tick) * s.config.Tick)
	for !next.After(now) {
		tick++
		next = start.Add(time.Duration(tick) * s.config.Tick)
	}
	time.Sleep(next.Sub(now))
	return tick + 1
}
