// Package models holds the hero catalog data types shared by the service, the
// handlers, the backup feature and the CLI.
package models
