package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ServiceName is attached to every entry so catalog logs can be told apart from
	// the storage and database services sharing a collector.
	ServiceName = "hero-catalog"

	// RayIDKey is the fiber Locals key and log field carrying the request id.
	RayIDKey = "ray_id"
)

// New builds the catalog logger. The debug level switches to zap's development
// preset; any other level is parsed and applied on top of the production preset.
func New(cfg *Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	switch cfg.Level {
	case "debug":
		zc = zap.NewDevelopmentConfig()
	case "":
	default:
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	zc.Encoding = "json"
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"
	zc.InitialFields = map[string]any{"service": ServiceName}

	return zc.Build()
}

// WithRayID tags l with the request id stored by the rayid middleware, if any.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals(RayIDKey).(string); ok && rid != "" {
		return l.With(zap.String(RayIDKey, rid))
	}
	return l
}
