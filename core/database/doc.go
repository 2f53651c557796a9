// Package database handles database connections for the catalog hub.
//
// It provides a thin wrapper around GORM that configures a MySQL connection
// from the application's configuration. A sqlite driver is also supported so
// that stores and the sync reconciler can be tested against an in-memory
// database without a running MySQL instance.
//
// # Connect
//
// The Connect function establishes a connection, applies pool settings, and
// verifies it with a ping before returning:
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
