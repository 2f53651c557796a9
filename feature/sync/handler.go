package sync

import (
	"context"
	"errors"

	"icoltex-hub/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog syncs.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Get("/status", h.HandleStatus)
	group.Post("/clients", h.runHandler("clients", h.service.SyncClients))
	group.Post("/products", h.runHandler("products", h.service.SyncProducts))
	group.Post("/categories", h.runHandler("categories", h.service.SyncCategories))
	group.Post("/classes", h.runHandler("classes", h.service.SyncClasses))
}

// HandleStatus reports whether the upstream API is configured, without
// testing credentials.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	configured := h.service.Configured()
	message := "Icoltex API configured. POST /sync/{clients,products,categories,classes} to run a sync."
	if !configured {
		message = "Missing ICOLTEX_BASE_URL, ICOLTEX_USER, or ICOLTEX_PASSWORD."
	}
	return c.JSON(fiber.Map{
		"configured": configured,
		"message":    message,
	})
}

// runHandler builds the handler for one entity's sync endpoint. All four
// endpoints share behavior: 503 when unconfigured, 500 on fatal fetch
// failure, 200 with the complete run result otherwise.
func (h *Handler) runHandler(label string, run func(ctx context.Context) (*RunResult, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(h.logger, c)

		if !h.service.Configured() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "icoltex api not configured",
				"message": "Set ICOLTEX_BASE_URL, ICOLTEX_USER, and ICOLTEX_PASSWORD.",
			})
		}

		result, err := run(c.Context())
		if err != nil {
			l.Error("Sync failed", zap.String("entity", label), zap.Error(err))
			status := fiber.StatusInternalServerError
			if errors.Is(err, ErrNotConfigured) {
				status = fiber.StatusServiceUnavailable
			}
			return c.Status(status).JSON(fiber.Map{
				"error":   "sync failed",
				"message": err.Error(),
			})
		}

		l.Info("Sync completed",
			zap.String("entity", label),
			zap.Int("created", result.Created),
			zap.Int("updated", result.Updated))

		return c.JSON(fiber.Map{
			"message":      label + " sync completed",
			"totalFetched": result.TotalFetched,
			"created":      result.Created,
			"updated":      result.Updated,
			"skipped":      result.Skipped,
			"errors":       result.Errors,
			"details":      result.Details,
		})
	}
}
