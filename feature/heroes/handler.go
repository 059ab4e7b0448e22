package heroes

import (
	"errors"

	"hero-catalog/core/logger"
	"hero-catalog/core/superhero"
	"hero-catalog/core/utils"
	"hero-catalog/feature/heroes/pipeline"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for heroes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the heroes routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/heroes")
	group.Get("/", h.HandleList)
	group.Post("/refresh", h.HandleRefresh)
	group.Get("/favorites", h.HandleFavorites)
	group.Post("/pending/retry", h.HandleRetryPending)
	group.Get("/:id", h.HandleDetail)
	group.Post("/:id/favorite", h.HandleToggleFavorite)
}

// HandleList returns the catalog, optionally filtered and sorted.
// @Summary List Heroes
// @Description Returns the hero catalog. The name filter is applied first, then at most one sort.
// @Tags heroes
// @Produce json
// @Param q query string false "Case-insensitive name substring"
// @Param sort query string false "Sort field" Enums(name, intelligence, strength)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {array} models.Hero "Heroes"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Catalog could not be loaded"
// @Router /heroes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts, err := pipeline.ParseOptions(c.Query("q"), c.Query("sort"), c.Query("order"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	list, err := h.service.List(c.Context(), opts)
	if err != nil {
		l.Error("Listing heroes failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(list)
}

// HandleRefresh reloads the catalog from the remote source.
// @Summary Refresh Catalog
// @Description Fetches the remote catalog and reconciles favorites with the store. On failure the previous catalog is kept.
// @Tags heroes
// @Produce json
// @Success 200 {object} models.RefreshReport "Refresh Report"
// @Failure 502 {object} map[string]string "Remote source failed"
// @Router /heroes/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering catalog refresh")

	report, err := h.service.Refresh(c.Context())
	if err != nil {
		l.Error("Catalog refresh failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleFavorites returns the favorite heroes.
// @Summary List Favorites
// @Tags heroes
// @Produce json
// @Success 200 {array} models.Hero "Favorites"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /heroes/favorites [get]
func (h *Handler) HandleFavorites(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.Favorites(c.Context())
	if err != nil {
		l.Error("Listing favorites failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(list)
}

// HandleDetail returns a hero together with its biography.
// @Summary Get Hero Detail
// @Description A biography failure is reported in biography_error and does not fail the request.
// @Tags heroes
// @Produce json
// @Param id path int true "Hero ID"
// @Success 200 {object} models.HeroDetail "Hero Detail"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /heroes/{id} [get]
func (h *Handler) HandleDetail(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	detail, err := h.service.Detail(c.Context(), id)
	if err != nil {
		return h.writeError(c, l, err)
	}

	return c.JSON(detail)
}

// HandleToggleFavorite flips the favorite flag of a hero.
// @Summary Toggle Favorite
// @Description A failed save still returns 200 with persisted=false; the change is retried on the next refresh.
// @Tags heroes
// @Produce json
// @Param id path int true "Hero ID"
// @Success 200 {object} models.ToggleResult "Toggle Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /heroes/{id}/favorite [post]
func (h *Handler) HandleToggleFavorite(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := utils.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.ToggleFavorite(c.Context(), id)
	if err != nil {
		return h.writeError(c, l, err)
	}

	l.Info("Favorite toggled",
		zap.Int("id", id),
		zap.Bool("is_favorite", result.Hero.IsFavorite),
		zap.Bool("persisted", result.Persisted),
	)
	return c.JSON(result)
}

// HandleRetryPending writes queued favorite changes to the store.
// @Summary Retry Pending Saves
// @Tags heroes
// @Produce json
// @Success 200 {object} map[string]int "Remaining pending saves"
// @Router /heroes/pending/retry [post]
func (h *Handler) HandleRetryPending(c *fiber.Ctx) error {
	remaining := h.service.RetryPendingSaves(c.Context())
	return c.JSON(fiber.Map{"pending": remaining})
}

func (h *Handler) writeError(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, ErrHeroNotFound), errors.Is(err, superhero.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Hero request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
