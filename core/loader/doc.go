// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its routes in Load:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order; LoadAll loads the enabled ones.
// The heroes, backup and health features are registered by the start command.
package loader
