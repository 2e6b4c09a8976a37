package server

// Server defines the lifecycle contract of the process runner.
//
// RunServer blocks until a stop signal arrives and every component has been
// shut down.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
