// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - CORS: Adds the Access-Control-Allow-* headers to every response,
//     including error responses, so a page served from here may call a backend
//     on another origin.
//   - AccessLog: Writes one structured log line per request with status and
//     duration.
//
// They are registered globally in the start command, in the order RayID, CORS,
// AccessLog.
package middleware
