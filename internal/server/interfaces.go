package server

// Server is the lifecycle contract shared by the transport servers this
// package manages. RunServer blocks for the life of the listener; Shutdown
// asks it to drain in-flight requests and stop.
type Server interface {
	RunServer()
	Shutdown()
}
