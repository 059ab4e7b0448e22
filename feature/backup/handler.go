package backup

import (
	"errors"

	"hero-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for favorites backups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backups")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleExport)
	group.Post("/restore", h.HandleRestore)
}

// HandleList lists stored backups.
// @Summary List Backups
// @Tags backups
// @Produce json
// @Success 200 {array} backup.Info "Backups, newest first"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Listing backups failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if list == nil {
		list = []Info{}
	}
	return c.JSON(list)
}

// HandleExport writes the favorites to a new backup.
// @Summary Export Favorites
// @Tags backups
// @Produce json
// @Success 201 {object} backup.ExportReport "Export Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Export(c.Context())
	if err != nil {
		l.Error("Backup export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

// HandleRestore restores favorites from a backup.
// @Summary Restore Favorites
// @Tags backups
// @Produce json
// @Param name query string true "Backup object name"
// @Success 200 {object} backup.RestoreReport "Restore Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backups/restore [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	report, err := h.service.Restore(c.Context(), name)
	if errors.Is(err, ErrBackupNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Backup restore failed", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
