package backup

import (
	"time"

	"hero-catalog/feature/heroes/models"
)

// Prefix is the object key prefix of every favorites backup.
const Prefix = "backups/"

// Document is the JSON payload stored for one backup.
type Document struct {
	Version   int           `json:"version"`
	CreatedAt time.Time     `json:"created_at"`
	Heroes    []models.Hero `json:"heroes"`
}

// Info describes a stored backup.
type Info struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// ExportReport summarizes an export.
type ExportReport struct {
	Name      string   `json:"name"`
	Count     int      `json:"count"`
	Pruned    []string `json:"pruned,omitempty"`
	Bucket    string   `json:"bucket"`
	CreatedAt string   `json:"created_at"`
}

// RestoreReport summarizes a restore.
type RestoreReport struct {
	Name     string `json:"name"`
	Restored int    `json:"restored"`
	Pending  int    `json:"pending"`
}
