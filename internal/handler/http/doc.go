// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
//
// Authorization is enforced twice: the auth middleware rejects anonymous
// requests with a uniform "Access unauthorized." response before any
// handler runs, and the service layer re-checks the explicit actor id on
// every mutating call.
package http
