// Package http implements the REST transport of the vault tasks server.
//
// It wires routes, request handlers and middleware. Authentication, the
// capability and owner checks, request tracing, access logging, response
// compression and the integrity check run here before a request reaches the
// service layer.
package http
