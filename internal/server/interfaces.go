package server

// Server is the lifecycle contract for the shop's transport server.
//
// Implementations block in [RunServer] until a stop signal arrives and
// release listeners and in-flight connections in [Shutdown].
type Server interface {
	// RunServer starts serving API requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server, draining in-flight requests.
	Shutdown()
}
