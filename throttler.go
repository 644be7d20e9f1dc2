package rpm_timer

import (
	"iter"

	"github.com/synek317/rpm-timer/sched"
	"github.com/synek317/rpm-timer/source"
)

// Throttler limits the speed of processing a collection of items to a target
// number of items per minute, handing batches to a bounded pool of worker
// goroutines. It is designed for feeding rate-limited APIs: the long-run
// average throughput converges to the configured limit while short bursts
// absorb whatever backlog accrued while the workers were busy.
//
// Usage Example:
//
//	timer, err := rpm_timer.New[string](
//	    rpm_timer.WithRpmLimit(100),
//	    rpm_timer.WithMaxThreads(4),
//	)
//	if err != nil {
//	    // invalid configuration
//	}
//
//	err = timer.RunSlice(requests, func(batch []string) error {
//	    return sendHttpRequests(batch)
//	})
//
// A Throttler is stateless between runs and may be reused, but a single run
// must finish before the next one starts.
type Throttler[T any] struct {
	config config
}

// New builds a Throttler from the given options. It returns an
// *errors.ConfigError when an option carries an invalid value (non-positive
// rate, tick or thread count); invalid values are rejected here, never
// silently clamped.
func New[T any](opts ...ConfigOption) (*Throttler[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Throttler[T]{config: cfg}, nil
}

// RunSlice processes items by handing sub-slices of the input to fn. No
// per-batch allocation happens; each batch borrows a window of the caller's
// slice, so fn must not hold on to it after returning.
//
// This is the preferred entry point unless all you have is an iterator.
//
// RunSlice blocks until every item has been dispatched and every in-flight
// batch has finished, and returns the first batch failure, if any.
func (t *Throttler[T]) RunSlice(items []T, fn func([]T) error) error {
	return t.RunSource(source.FromSlice(items), fn)
}

// RunIter processes a lazy, single-pass sequence, collecting each batch into
// a freshly allocated slice that fn owns. Use it for inputs that should not
// be materialized up front, e.g. lines streamed from a file.
//
// RunIter blocks until the sequence is exhausted and every in-flight batch
// has finished, and returns the first batch failure, if any.
func (t *Throttler[T]) RunIter(items iter.Seq[T], fn func([]T) error) error {
	return t.RunSource(source.FromSeq(items), fn)
}

// RunSource processes items from a custom source.Source implementation.
// RunSlice and RunIter are thin wrappers around this.
func (t *Throttler[T]) RunSource(src source.Source[T], fn func([]T) error) error {
	s := sched.New(sched.Config{
		PerMinute:  t.config.rpmLimit,
		Tick:       t.config.tick,
		MaxThreads: t.config.maxThreads,
		Logger:     t.config.logger,
	}, src, fn)

	return s.Run()
}
