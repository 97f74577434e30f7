// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler:
//
//   - Auth: API key validation protecting the endpoints.
//   - RayID: generates a unique request id for every incoming request and
//     injects it into the context and response headers for tracing.
//
// These components are registered globally in the main application setup.
package middleware
