package server

// Server is the lifecycle contract of the transport server.
//
// RunServer blocks until shutdown is requested (by signal or by calling
// Shutdown); Shutdown drains in-flight requests and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
