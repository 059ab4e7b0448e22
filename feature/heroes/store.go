package heroes

import (
	"context"
	"errors"
	"fmt"

	"hero-catalog/feature/heroes/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists heroes keyed by id.
type Store interface {
	GetByID(ctx context.Context, id int) (*models.Hero, error)
	GetByIDs(ctx context.Context, ids []int) (map[int]models.Hero, error)
	GetAll(ctx context.Context) ([]models.Hero, error)
	GetFavorites(ctx context.Context) ([]models.Hero, error)
	Upsert(ctx context.Context, hero models.Hero) error
}

var _ Store = (*Repository)(nil)

// Repository is the gorm backed Store.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate creates or updates the heroes table.
func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&models.Hero{})
}

// GetByID returns ErrHeroNotFound when no row has the id.
func (r *Repository) GetByID(ctx context.Context, id int) (*models.Hero, error) {
	var hero models.Hero
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&hero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHeroNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get hero %d: %w", id, err)
	}
	return &hero, nil
}

// GetByIDs loads every stored hero among ids in one query.
func (r *Repository) GetByIDs(ctx context.Context, ids []int) (map[int]models.Hero, error) {
	out := make(map[int]models.Hero, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []models.Hero
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get heroes: %w", err)
	}
	for _, h := range rows {
		out[h.ID] = h
	}
	return out, nil
}

// GetAll returns every stored hero ordered by id.
func (r *Repository) GetAll(ctx context.Context) ([]models.Hero, error) {
	var rows []models.Hero
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list heroes: %w", err)
	}
	return rows, nil
}

// GetFavorites returns the stored heroes flagged favorite, ordered by id.
func (r *Repository) GetFavorites(ctx context.Context) ([]models.Hero, error) {
	var rows []models.Hero
	if err := r.db.WithContext(ctx).Where("is_favorite = ?", true).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return rows, nil
}

// Upsert inserts hero or replaces the row with the same id.
func (r *Repository) Upsert(ctx context.Context, hero models.Hero) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&hero).Error
	if err != nil {
		return fmt.Errorf("failed to save hero %d: %w", hero.ID, err)
	}
	return nil
}
