package gallery

import (
	"icoltex-hub/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the gallery feature.
func NewFeature(db *gorm.DB, objects storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, objects, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "gallery"
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

// Service exposes the gallery service for startup bucket provisioning.
func (f *Feature) Service() *Service {
	return f.service
}
