// Package server runs the transport servers of the application.
//
// It handles startup, signal handling and graceful shutdown of the HTTP
// server and the optional gRPC health server.
package server
