package logger

// Logger provides a standardized logging interface for the rpm-timer library.
// It defines methods for different log levels (Debug, Info, Warn, Error) so that
// users can plug in their preferred logging implementation (e.g., glog, logrus,
// zap, standard log) or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the library for:
// - Per-tick dispatch decisions (due counts, batch sizes)
// - Worker slot exhaustion and backlog catch-up
// - Batch processing failures and panics
// - Retry attempt tracking
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	timer, err := rpm_timer.New[string](rpm_timer.WithLogger(myLogger))
//
//	// Disable logging entirely (the default)
//	timer, err := rpm_timer.New[string](rpm_timer.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
