package checks

import (
	"fmt"

	"hero-catalog/core/database"
	"hero-catalog/feature/heroes/models"

	"gorm.io/gorm"
)

// SchemaReport is the result of the hero store schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "fixed"
}

// CheckSchema compares the heroes table with the Hero model. With fix set, missing
// columns are created through AutoMigrate.
func CheckSchema(db *gorm.DB, fix bool) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	table := models.Hero{}.TableName()
	missing, err := database.MissingColumns(db, table, models.Columns())
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}

	report := &SchemaReport{Table: table, MissingColumns: missing, Status: "ok"}
	if len(missing) == 0 {
		report.MissingColumns = []string{}
		return report, nil
	}

	report.Status = "missing"
	if !fix {
		return report, nil
	}

	if err := db.AutoMigrate(&models.Hero{}); err != nil {
		return report, fmt.Errorf("failed to migrate %s: %w", table, err)
	}
	report.Status = "fixed"
	return report, nil
}
