package backup

import (
	"hero-catalog/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new backup feature. A nil client disables it.
func NewFeature(client storage.Client, cfg storage.Config, favorites Favorites, logger *zap.Logger) *Feature {
	f := &Feature{}
	if client != nil {
		f.service = NewService(client, cfg, favorites, logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "backup"
}

// IsEnabled reports whether object storage is configured.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service, or nil when the feature is disabled.
func (f *Feature) Service() *Service {
	return f.service
}
