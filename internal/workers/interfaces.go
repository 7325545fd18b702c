// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines. Stop
// waits for in-flight work to finish or for ctx to expire.
type Worker interface {
	Run()
	Stop(ctx context.Context) error
}
