package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"hero-catalog/core/config"
	"hero-catalog/core/database"
	"hero-catalog/core/logger"
	"hero-catalog/core/storage"
	"hero-catalog/core/superhero"
	"hero-catalog/feature/backup"
	"hero-catalog/feature/health"
	"hero-catalog/feature/heroes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application wires the shared components used by the server and the CLI commands.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	source  superhero.Client
	storage storage.Client

	heroes *heroes.Feature
	backup *backup.Feature
	health *health.Feature
}

// bootstrap loads configuration and connects every backend. Object storage is
// optional: without it the backup feature stays disabled.
func bootstrap() (*application, func(), error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection required: %w", err)
	}

	repo := heroes.NewRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate hero store: %w", err)
	}

	source, err := superhero.NewClient(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create source client: %w", err)
	}

	var objects storage.Client
	if client, err := storage.NewClient(cfg.Storage); err != nil {
		logg.Warn("Object storage unavailable, backups disabled", zap.Error(err))
	} else {
		objects = client
	}

	a := &application{
		cfg:     cfg,
		logger:  logg,
		db:      db,
		source:  source,
		storage: objects,
	}
	a.heroes = heroes.NewFeature(source, repo, cfg.Server.PublisherOrDefault(), logg)
	a.backup = backup.NewFeature(objects, cfg.Storage, a.heroes.Service(), logg)
	a.health = health.NewFeature(db, objects, cfg.Storage, source, cfg.Server.PublisherOrDefault(), logg)

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = logg.Sync()
	}
	return a, cleanup, nil
}

// warmCatalog loads the catalog for commands that work on a single hero. A failed
// fetch is not fatal: the service falls back to the store.
func (a *application) warmCatalog(ctx context.Context) {
	if _, err := a.heroes.Service().Refresh(ctx); err != nil {
		a.logger.Warn("Catalog refresh failed, using stored heroes only", zap.Error(err))
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *application) backupService() (*backup.Service, error) {
	if !a.backup.IsEnabled() {
		return nil, fmt.Errorf("object storage is not configured")
	}
	return a.backup.Service(), nil
}
