package retry

// Retry provides a standardized interface for retrying failed operations.
// The throttler core deliberately never retries a batch on its own: retry
// policy belongs to the caller's processing function. This package makes
// that policy cheap to express, typically by wrapping the batch function
// with Batch before handing it to a Run* call.
//
// Usage Example:
//
//	r := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := timer.RunSlice(requests, retry.Batch(3, r, func(batch []string) error {
//	    return sendHttpRequests(batch)
//	}))
//
// The RetriableFn function receives the current attempt number (0-based) and
// returns an error and an ExitStrategy. The ExitStrategy determines whether
// to continue retrying (Continue) or stop immediately (StopNow), regardless
// of remaining attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false

// Batch wraps a batch processing function so that a failing batch is
// re-attempted up to attempts times before the failure is handed back to
// the throttler. Note the retries run on the worker slot that owns the
// batch, so a long backoff keeps that slot busy.
func Batch[T any](attempts int, r Retry, fn func([]T) error) func([]T) error {
	return func(batch []T) error {
		return r.Do(attempts, "retry.Batch", func(attempt int) (error, ExitStrategy) {
			return fn(batch), Continue
		})
	}
}
