package health

import (
	"hero-catalog/core/logger"
	"hero-catalog/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/schema", h.HandleSchema)
	group.Get("/storage", h.HandleStorage)
	group.Get("/source", h.HandleSource)
}

// HandleHealth runs all checks.
// @Summary Run All Health Checks
// @Description Checks the hero store schema, the backup bucket and the remote catalog.
// @Tags health
// @Produce json
// @Success 200 {object} health.Report "Healthy"
// @Failure 503 {object} health.Report "Unhealthy"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report := h.service.CheckAll(c.Context())
	if !report.Healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleSchema checks and optionally fixes the heroes table.
// @Summary Check Schema
// @Tags health
// @Produce json
// @Param fix query boolean false "Create missing columns"
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckSchema(fix)
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status == "fixed" {
		l.Info("Schema fixed", zap.Strings("columns", report.MissingColumns))
	}
	return c.JSON(report)
}

// HandleStorage checks and optionally creates the backup bucket.
// @Summary Check Storage
// @Tags health
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/storage [get]
func (h *Handler) HandleStorage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckStorage(c.Context(), fix)
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleSource probes the remote catalog.
// @Summary Check Source
// @Tags health
// @Produce json
// @Success 200 {object} checks.SourceReport "Source Report"
// @Failure 503 {object} checks.SourceReport "Source unreachable"
// @Router /health/source [get]
func (h *Handler) HandleSource(c *fiber.Ctx) error {
	report := h.service.CheckSource(c.Context())
	if !report.Reachable {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
