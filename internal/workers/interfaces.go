// Package workers provides the background jobs of the solar-quote service
// and a Workers aggregate that runs them together until the process stops.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is done. A non-nil error aborts every other worker
// started by the same [Workers].
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// TokenProvider issues CRM bearer tokens. It is satisfied by the quote
// service.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}
