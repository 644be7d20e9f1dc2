package errors

import (
	"errors"
	"fmt"
)

const (
	OPTION_RPM_LIMIT   = "rpm_limit"
	OPTION_TICK        = "tick"
	OPTION_MAX_THREADS = "max_threads"
)

// ConfigError reports a throttler configuration value that was rejected
// at construction time. The throttler never clamps or silently corrects
// an invalid value; it refuses to build instead.
type ConfigError struct {
	Option string
	Value  any
	Reason string
}

var _ error = &ConfigError{}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"invalid rpm-timer configuration: option '%s' = '%v': %s",
		e.Option, e.Value, e.Reason,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ConfigError{}) returns false:
// ok := errors.Is(fmt.Errorf("wrap: %w", &ConfigError{...}), &ConfigError{})
// ^ would be false
func (e *ConfigError) Is(other error) bool {
	var err *ConfigError
	return errors.As(other, &err) && err != nil
}

// BatchError reports a batch whose processing function panicked on a
// worker slot. The slot itself is reclaimed; the panic value and stack
// are preserved so the failure surfaces from the run instead of
// crashing the worker goroutine.
type BatchError struct {
	BatchSize int
	Panic     any
	Stack     []byte
}

var _ error = &BatchError{}

func (e *BatchError) Error() string {
	return fmt.Sprintf(
		"processing function panicked on a batch of %d items: %v",
		e.BatchSize, e.Panic,
	)
}

func (e *BatchError) Is(other error) bool {
	var err *BatchError
	return errors.As(other, &err) && err != nil
}
