package catalog

import (
	"icoltex-hub/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog reads.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/clients", h.HandleListClients)
	app.Get("/clients/:documentNumber", h.HandleGetClient)
	app.Get("/products", h.HandleListProducts)
	app.Get("/products/:code", h.HandleGetProduct)
	app.Get("/categories", h.HandleListCategories)
	app.Get("/classes", h.HandleListClasses)
}

// HandleListClients returns all clients. Supports ?q= search and ?active=true.
func (h *Handler) HandleListClients(c *fiber.Ctx) error {
	clients, err := h.service.ListClients(c.Context(), c.Query("q"), c.QueryBool("active"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List clients failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(clients)
}

// HandleGetClient returns one client by document number.
func (h *Handler) HandleGetClient(c *fiber.Ctx) error {
	client, err := h.service.GetClient(c.Context(), c.Params("documentNumber"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Get client failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if client == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "client not found"})
	}
	return c.JSON(client)
}

// HandleListProducts returns products. Supports ?q=, ?category=, ?class=,
// ?active=true.
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context(), c.Query("q"), c.Query("category"), c.Query("class"), c.QueryBool("active"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List products failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

// HandleGetProduct returns one product by code.
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Context(), c.Params("code"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Get product failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(product)
}

// HandleListCategories returns taxonomy categories.
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	entries, err := h.service.ListCategories(c.Context(), c.QueryBool("active"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List categories failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}

// HandleListClasses returns taxonomy classes.
func (h *Handler) HandleListClasses(c *fiber.Ctx) error {
	entries, err := h.service.ListClasses(c.Context(), c.QueryBool("active"))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("List classes failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(entries)
}
