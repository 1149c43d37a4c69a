// Package server holds the HTTP server configuration and launch helpers.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure and the port resolution contract used by
// the bootstrap sequence.
//
// # Port Resolution
//
// Container platforms inject the listen port through the PORT environment
// variable. ResolvePort gives that variable precedence over the configured
// fallback and rejects values that are not valid TCP ports, so a broken
// deployment fails at startup instead of binding nothing.
//
// The environment is passed in as a lookup function, which keeps resolution a
// pure computation over an injected mapping.
//
// # Usage
//
//	port, err := server.ResolvePort(os.Getenv, cfg.Server.Port)
//	if err != nil {
//	    logg.Fatal("Invalid server port", zap.Error(err))
//	}
//	app.Listen(cfg.Server.Addr(port))
package server
