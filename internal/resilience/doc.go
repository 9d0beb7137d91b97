// Package resilience holds the fault tolerance used around sales backend
// calls.
//
//   - circuitbreaker: stops calling a backend that keeps failing (sony/gobreaker)
//   - retry: exponential backoff with jitter for idempotent requests
//
//	cb := circuitbreaker.New(circuitbreaker.BackendAPIConfig())
//	err := retry.WithBackoff(ctx, retry.BackendAPIConfig(), func() error {
//	    return cb.Run(func() error { return call(ctx) })
//	})
package resilience
