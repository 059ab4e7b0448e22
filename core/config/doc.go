// Package config provides configuration management for the hero catalog.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key and the publisher kept from the remote catalog
//   - Source: base URL and timeout of the remote superhero API
//   - Database: driver (sqlite, mysql) and connection details of the hero store
//   - Storage: S3/MinIO credentials and bucket used for favorites backups
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
