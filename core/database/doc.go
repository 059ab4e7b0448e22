// Package database handles database connections and schema inspection for the hero store.
//
// It provides a wrapper around GORM to configure either an embedded SQLite file
// (the default) or a MySQL server, based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings the
// database under the configured timeout. SQLite connections are limited to a single
// pooled connection.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns back the health check that verifies the
// heroes table carries every column of the hero model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "heroes", []string{"id", "is_favorite"})
package database
