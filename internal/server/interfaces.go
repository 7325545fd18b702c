package server

// Server defines the lifecycle contract of the gateway process.
//
// [RunServer] blocks until a termination signal arrives or the listener
// fails, and returns only after shutdown has finished.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error
}
