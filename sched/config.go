package sched

import (
	"runtime"
	"time"

	"github.com/synek317/rpm-timer/logger"
)

type Config struct {
	// PerMinute is the target number of items dispatched per minute,
	// averaged over the whole run
	// default: 60
	PerMinute float64

	// Tick is the cadence at which the loop re-evaluates how many items
	// are due. Shorter ticks improve responsiveness at a higher CPU cost
	// and do not change the long-run rate
	// default: 100 milliseconds
	Tick time.Duration

	// MaxThreads is the number of worker slots; at most this many batches
	// are ever processed concurrently
	// default: runtime.NumCPU()
	MaxThreads int

	// Logger provides logging functionality for debugging
	// and monitoring the dispatch loop
	// default: logger.Noop
	Logger logger.Logger
}

func defaultConfig() Config {
	return Config{
		PerMinute:  60,
		Tick:       100 * time.Millisecond,
		MaxThreads: runtime.NumCPU(),
		Logger:     &logger.Noop{},
	}
}

func applyConfig(inConfig Config) Config {
	outConfig := defaultConfig()
	if inConfig.PerMinute > 0 {
		outConfig.PerMinute = inConfig.PerMinute
	}
	if inConfig.Tick > 0 {
		outConfig.Tick = inConfig.Tick
	}
	if inConfig.MaxThreads > 0 {
		outConfig.MaxThreads = inConfig.MaxThreads
	}
	if inConfig.Logger != nil {
		outConfig.Logger = inConfig.Logger
	}

	return outConfig
}
