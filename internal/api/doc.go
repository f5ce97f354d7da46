// Package api provides the HTTP handlers for the users and orders
// resources, the request/response models they exchange, and the mapping
// from internal errors to HTTP status codes.
package api
