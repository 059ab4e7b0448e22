package heroes

import (
	"hero-catalog/core/superhero"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new heroes feature.
func NewFeature(source superhero.Client, store Store, publisher string, logger *zap.Logger) *Feature {
	svc := NewService(source, store, publisher, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "heroes"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service, shared with the backup feature.
func (f *Feature) Service() *Service {
	return f.service
}
