package gallery

import (
	"errors"

	"icoltex-hub/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product-line galleries.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the gallery routes. Lines are addressed by query
// parameters, not path segments: category and class names carry spaces and
// accents.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/galleries")
	group.Get("/", h.HandleList)
	group.Get("/line", h.HandleGet)
	group.Put("/line", h.HandleUpsert)
	group.Delete("/line", h.HandleDelete)
	group.Post("/images", h.HandleUploadImage)
}

type upsertRequest struct {
	Category     string   `json:"category"`
	ProductClass string   `json:"productClass"`
	ImageURLs    []string `json:"imageUrls"`
}

// HandleList returns all galleries.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	galleries, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List galleries failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(galleries)
}

// HandleGet returns one product line's gallery.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	category, class := c.Query("category"), c.Query("class")
	if category == "" || class == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category and class are required"})
	}

	gallery, err := h.service.Get(c.Context(), category, class)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Get gallery failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if gallery == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "gallery not found"})
	}
	return c.JSON(gallery)
}

// HandleUpsert replaces a product line's image list.
func (h *Handler) HandleUpsert(c *fiber.Ctx) error {
	var req upsertRequest
	if err := c.BodyParser(&req); err != nil || req.Category == "" || req.ProductClass == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category and productClass are required"})
	}

	gallery, err := h.service.Upsert(c.Context(), req.Category, req.ProductClass, req.ImageURLs)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Upsert gallery failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(gallery)
}

// HandleDelete removes a product line's gallery.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	category, class := c.Query("category"), c.Query("class")
	if category == "" || class == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category and class are required"})
	}

	if err := h.service.Delete(c.Context(), category, class); err != nil {
		logger.WithRayID(h.logger, c).Error("Delete gallery failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "gallery deleted"})
}

// HandleUploadImage accepts a multipart image and returns its public URL.
func (h *Handler) HandleUploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "multipart field 'image' is required"})
	}

	src, err := file.Open()
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Open upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer src.Close()

	url, err := h.service.UploadImage(c.Context(), src, file.Size, file.Header.Get(fiber.HeaderContentType))
	if err != nil {
		if errors.Is(err, ErrUnsupportedImage) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.logger, c).Error("Upload image failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"url": url})
}
