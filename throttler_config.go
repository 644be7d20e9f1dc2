package rpm_timer

import (
	"math"
	"runtime"
	"time"

	rpm_errors "github.com/synek317/rpm-timer/errors"
	"github.com/synek317/rpm-timer/logger"
)

type config struct {
	// rpmLimit is the target number of items processed per minute.
	// WithRpmLimit and WithRpsLimit both write this field; the last
	// option applied wins
	// default: 60 (one item per second)
	rpmLimit float64

	// tick is the cadence at which the dispatch loop re-evaluates how
	// many items are due. The higher the requested rate, the shorter
	// the tick should be; it does not change the long-run rate
	// default: 100 milliseconds
	tick time.Duration

	// maxThreads is the number of worker slots, i.e. the maximum number
	// of batches processed concurrently
	// default: runtime.NumCPU()
	maxThreads int

	// logger provides logging functionality for all internal
	// rpm-timer operations
	// default: logger.Noop
	logger logger.Logger
}

func defaultConfig() config {
	return config{
		rpmLimit:   60,
		tick:       100 * time.Millisecond,
		maxThreads: runtime.NumCPU(),
		logger:     &logger.Noop{},
	}
}

func (c *config) validate() error {
	if math.IsNaN(c.rpmLimit) || math.IsInf(c.rpmLimit, 0) || c.rpmLimit <= 0 {
		return &rpm_errors.ConfigError{
			Option: rpm_errors.OPTION_RPM_LIMIT,
			Value:  c.rpmLimit,
			Reason: "must be a finite number > 0",
		}
	}
	if c.tick <= 0 {
		return &rpm_errors.ConfigError{
			Option: rpm_errors.OPTION_TICK,
			Value:  c.tick,
			Reason: "must be > 0",
		}
	}
	if c.maxThreads <= 0 {
		return &rpm_errors.ConfigError{
			Option: rpm_errors.OPTION_MAX_THREADS,
			Value:  c.maxThreads,
			Reason: "must be > 0",
		}
	}
	return nil
}

type ConfigOption func(c *config)

// WithRpmLimit sets the target number of items per minute.
// It overrides the value previously set by WithRpsLimit, if any.
func WithRpmLimit(limit float64) ConfigOption {
	return func(c *config) {
		c.rpmLimit = limit
	}
}

// WithRpsLimit sets the target number of items per second.
// It overrides the value previously set by WithRpmLimit, if any.
func WithRpsLimit(limit float64) ConfigOption {
	return func(c *config) {
		c.rpmLimit = limit * 60
	}
}

// WithTick sets how often the dispatch loop wakes up to check for due items.
func WithTick(tick time.Duration) ConfigOption {
	return func(c *config) {
		c.tick = tick
	}
}

// WithMaxThreads sets the size of the worker pool.
func WithMaxThreads(threads int) ConfigOption {
	return func(c *config) {
		c.maxThreads = threads
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}
