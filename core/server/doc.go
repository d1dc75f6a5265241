// Package server implements the static HTTP server for the simulation site.
//
// It wraps a Fiber application that serves a configured directory at the site
// root, with index.html resolution and directory listings.
//
// # Lifecycle
//
// Binding and serving are separate steps. Listen acquires the TCP socket and
// closes the Ready channel, then Serve accepts connections until Shutdown is
// called. Anything that must wait for the server to be reachable (such as the
// browser opener) waits on Ready instead of sleeping.
//
// # Configuration
//
// The Config struct defines the bind host, the HTTP port, the served
// directory, and the graceful shutdown timeout.
//
// # Usage
//
//	srv := server.New(cfg.Server, log)
//	if err := srv.Listen(); err != nil {
//		log.Fatal("Failed to bind server socket", zap.Error(err))
//	}
//	go srv.Serve()
//	// ...
//	srv.Shutdown()
package server
