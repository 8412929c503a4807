package server

// Server defines the lifecycle of a transport server.
//
// RunServer blocks until a stop signal arrives or the listener fails. Only
// the latter is reported as an error.
type Server interface {
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
