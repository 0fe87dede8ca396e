// Package api contains the HTTP transport layer: request/response models,
// handlers, and the mapping from service failures to HTTP status codes.
// Handlers validate input shape before invoking the service layer and
// never expose internal error details to clients.
package api
