// Package server runs the HTTP server that fronts the static file feature.
//
// It owns the Fiber application and its listening socket, and everything
// around them: binding, the banner, the optional browser launch, error
// mapping and graceful shutdown.
//
// # Configuration
//
// The Config struct defines the listen host and port, the backend URL shown
// to the operator, whether to open a browser, and connection timeouts.
//
// # Lifecycle
//
//	srv := server.New(cfg.Server, log, server.WithRoot(store.Root()))
//	srv.App().Use(...)           // middleware and features
//	err := srv.Run(ctx)          // blocks until ctx is cancelled
//
// Run returns a *BindError when the socket cannot be opened. After Run
// returns the port is free again.
package server
