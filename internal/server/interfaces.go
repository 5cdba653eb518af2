package server

// Server is the lifecycle contract of the transport servers in this package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Shutdown stops the server and frees its resources.
	Shutdown()
}
