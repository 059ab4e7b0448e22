package models

import (
	"fmt"
	"strings"
	"time"
)

// Hero is one hero as known to the catalog and the row persisted in the heroes table.
// Only IsFavorite is ever mutated after construction; every other field is replaced
// wholesale on refresh.
type Hero struct {
	ID           int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name         string `gorm:"column:name;type:varchar(255)" json:"name"`
	Description  string `gorm:"column:description;type:varchar(512)" json:"description"`
	ImageURL     string `gorm:"column:image_url;type:varchar(512)" json:"image_url"`
	ComicsCount  int    `gorm:"column:comics_count" json:"comics_count"`
	Intelligence *int   `gorm:"column:intelligence" json:"intelligence,omitempty"`
	Strength     *int   `gorm:"column:strength" json:"strength,omitempty"`
	IsFavorite   bool   `gorm:"column:is_favorite;index" json:"is_favorite"`
}

// TableName overrides the table name.
func (Hero) TableName() string {
	return "heroes"
}

// Columns lists the columns of the heroes table, used by the schema health check.
func Columns() []string {
	return []string{"id", "name", "description", "image_url", "comics_count", "intelligence", "strength", "is_favorite"}
}

// Toggled returns a copy of h with IsFavorite flipped and every other field unchanged.
func (h Hero) Toggled() Hero {
	h.IsFavorite = !h.IsFavorite
	return h
}

// Clone returns a deep copy; the stat pointers are not shared with h.
func (h Hero) Clone() Hero {
	if h.Intelligence != nil {
		v := *h.Intelligence
		h.Intelligence = &v
	}
	if h.Strength != nil {
		v := *h.Strength
		h.Strength = &v
	}
	return h
}

// StatsDescription renders the description text embedding both stats.
func StatsDescription(intelligence, strength int) string {
	return fmt.Sprintf("Intelligence: %d, Strength: %d", intelligence, strength)
}

// Biography is the extended biographical data shown on the detail view.
type Biography struct {
	FullName        string   `json:"full_name"`
	AlterEgos       string   `json:"alter_egos"`
	Aliases         []string `json:"aliases"`
	PlaceOfBirth    string   `json:"place_of_birth"`
	FirstAppearance string   `json:"first_appearance"`
	Publisher       string   `json:"publisher"`
	Alignment       string   `json:"alignment"`
}

// Text renders the biography the way the detail view displays it.
func (b Biography) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Full Name: %s\n", b.FullName)
	fmt.Fprintf(&sb, "Alter Egos: %s\n", b.AlterEgos)
	fmt.Fprintf(&sb, "Aliases: %s\n", strings.Join(b.Aliases, ", "))
	fmt.Fprintf(&sb, "Place of Birth: %s\n", b.PlaceOfBirth)
	fmt.Fprintf(&sb, "First Appearance: %s\n", b.FirstAppearance)
	fmt.Fprintf(&sb, "Publisher: %s\n", b.Publisher)
	fmt.Fprintf(&sb, "Alignment: %s", b.Alignment)
	return sb.String()
}

// HeroDetail is the detail view of a single hero.
type HeroDetail struct {
	Hero Hero `json:"hero"`
	// Biography is nil when the lookup failed; BiographyError then holds the display message.
	Biography      *Biography `json:"biography,omitempty"`
	BiographyError string     `json:"biography_error,omitempty"`
	ShareSubject   string     `json:"share_subject"`
	ShareText      string     `json:"share_text"`
}

// ToggleResult reports the outcome of a favorite toggle.
type ToggleResult struct {
	Hero Hero `json:"hero"`
	// Persisted is false when the store write failed; the change stays queued for retry.
	Persisted bool   `json:"persisted"`
	SaveError string `json:"save_error,omitempty"`
}

// RefreshReport summarizes a catalog refresh.
type RefreshReport struct {
	Fetched       int       `json:"fetched"`
	Kept          int       `json:"kept"`
	Favorites     int       `json:"favorites"`
	LookupErrors  []string  `json:"lookup_errors,omitempty"`
	PendingSaves  int       `json:"pending_saves"`
	RefreshedAt   time.Time `json:"refreshed_at"`
	ExecutionTime string    `json:"execution_time"`
}

// RestoreResult reports how many favorites a restore wrote to the store.
type RestoreResult struct {
	Restored int `json:"restored"`
	// Pending counts favorites kept in memory because the store write failed.
	Pending int `json:"pending"`
}
