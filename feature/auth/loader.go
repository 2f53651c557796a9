package auth

import (
	"icoltex-hub/core/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates the auth feature with an SMTP mailer.
func NewFeature(db *gorm.DB, authCfg config.AuthConfig, mailCfg config.MailConfig, logger *zap.Logger) *Feature {
	svc := NewService(db, NewSMTPMailer(mailCfg), authCfg, logger)
	return &Feature{handler: NewHandler(svc, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "auth"
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
