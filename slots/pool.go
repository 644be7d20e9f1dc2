package slots

import (
	"runtime/debug"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	rpm_errors "github.com/synek317/rpm-timer/errors"
	"github.com/synek317/rpm-timer/logger"
)

// Pool is a bounded set of reusable worker slots. The scheduler checks for
// capacity with HasFree and hands a batch over with TryDispatch; neither call
// ever blocks, which is what keeps the scheduler's tick cadence accurate.
//
// The only cross-goroutine state is the busy-slot counter: the dispatching
// goroutine acquires a slot and the worker goroutine releases it when the
// batch function returns. Everything else a batch touches is owned by
// exactly one worker for the lifetime of the batch.
type Pool struct {
	size   int
	active atomic.Int64
	group  errgroup.Group
	logger logger.Logger
}

// NewPool creates a pool with size worker slots.
func NewPool(size int, log logger.Logger) *Pool {
	if log == nil {
		log = &logger.Noop{}
	}
	return &Pool{
		size:   size,
		logger: log,
	}
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.size
}

// Active returns the number of currently busy slots.
func (p *Pool) Active() int {
	return int(p.active.Load())
}

// HasFree reports whether at least one slot is idle. It never blocks.
func (p *Pool) HasFree() bool {
	return p.active.Load() < int64(p.size)
}

// TryDispatch starts run on a free slot and returns true immediately,
// without waiting for run to complete. When every slot is busy it returns
// false without side effects and without calling run.
//
// A run that returns an error or panics still releases its slot; the first
// failure is reported by Drain. Failed batches are not retried.
func (p *Pool) TryDispatch(size int, run func() error) bool {
	for {
		busy := p.active.Load()
		if busy >= int64(p.size) {
			return false
		}
		if p.active.CompareAndSwap(busy, busy+1) {
			break
		}
	}

	p.group.Go(func() (err error) {
		defer p.active.Add(-1)
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				p.logger.Errorf("slots.Pool: batch of %d panicked: %v\n%s", size, r, stack)
				err = &rpm_errors.BatchError{
					BatchSize: size,
					Panic:     r,
					Stack:     stack,
				}
			}
		}()

		return run()
	})

	return true
}

// Drain blocks until every busy slot is idle again and returns the first
// error produced by any batch, if any. It is intended for shutdown, after
// the input source is exhausted.
func (p *Pool) Drain() error {
	return p.group.Wait()
}
