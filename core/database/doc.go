// Package database handles database connections for the embedded vector index.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) that
// configures SQLite or MySQL connections based on the application's
// configuration.
//
// # Connect
//
// The generic Connect function establishes a connection for the configured
// driver. SQLite is the default and backs the embedded vector index with a
// single local file; MySQL is available for deployments that already run one.
// The connection is optional at startup, the service degrades to
// retrieval-free generation when it is unavailable.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional vector index unavailable", zap.Error(err))
//	}
package database
