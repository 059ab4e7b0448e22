// Package backup exports and restores favorite heroes through object storage.
//
// A backup is a JSON Document stored under backups/ in the configured bucket, named
// favorites-<UTC timestamp>-<uuid>.json. Export prunes the oldest backups beyond
// storage.backup_retention. Restore marks every hero of a backup favorite, going
// through the heroes service so the catalog and the store stay consistent.
package backup
