// Package logger provides a structured logging facility based on Zap.
//
// It builds the process logger from the log section of the configuration and
// integrates with the Fiber web framework.
//
// # Context Awareness
//
// Every request gets a RayID from the rayid middleware. WithRayID extracts it
// from the Fiber context and attaches it to the log entry, so all lines written
// while serving one file can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default, for a terminal) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
