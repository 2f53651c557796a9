package auth

import (
	"errors"

	"icoltex-hub/core/logger"
	mwauth "icoltex-hub/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for authentication.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/auth")
	group.Post("/register/request", h.HandleRequestRegister)
	group.Post("/register/verify", h.HandleVerifyRegister)
	group.Post("/login/request", h.HandleRequestLogin)
	group.Post("/login/verify", h.HandleVerifyLogin)
	group.Post("/admin/login", h.HandleAdminLogin)
	group.Post("/logout", h.HandleLogout)
}

type emailRequest struct {
	Email string `json:"email"`
}

type verifyRegisterRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type verifyLoginRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRequestRegister mails a registration code to a new email address.
func (h *Handler) HandleRequestRegister(c *fiber.Ctx) error {
	var req emailRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return badRequest(c, "email is required")
	}

	if err := h.service.RequestRegister(c.Context(), req.Email); err != nil {
		return h.fail(c, "Register request failed", err)
	}
	return c.JSON(fiber.Map{"message": "verification code sent"})
}

// HandleVerifyRegister creates the account on a valid code and starts a
// session.
func (h *Handler) HandleVerifyRegister(c *fiber.Ctx) error {
	var req verifyRegisterRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Code == "" || req.Password == "" {
		return badRequest(c, "email, code, and password are required")
	}

	session, err := h.service.VerifyRegister(c.Context(), req.Email, req.Code, req.Name, req.Password)
	if err != nil {
		return h.fail(c, "Register verify failed", err)
	}
	return h.sessionResponse(c, session)
}

// HandleRequestLogin mails a login code to an existing account.
func (h *Handler) HandleRequestLogin(c *fiber.Ctx) error {
	var req emailRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return badRequest(c, "email is required")
	}

	if err := h.service.RequestLogin(c.Context(), req.Email); err != nil {
		return h.fail(c, "Login request failed", err)
	}
	return c.JSON(fiber.Map{"message": "verification code sent"})
}

// HandleVerifyLogin starts a session on a valid login code.
func (h *Handler) HandleVerifyLogin(c *fiber.Ctx) error {
	var req verifyLoginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Code == "" {
		return badRequest(c, "email and code are required")
	}

	session, err := h.service.VerifyLogin(c.Context(), req.Email, req.Code)
	if err != nil {
		return h.fail(c, "Login verify failed", err)
	}
	return h.sessionResponse(c, session)
}

// HandleAdminLogin starts an admin session from email and password.
func (h *Handler) HandleAdminLogin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	session, err := h.service.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, "Admin login failed", err)
	}
	return h.sessionResponse(c, session)
}

// HandleLogout clears the session cookie.
func (h *Handler) HandleLogout(c *fiber.Ctx) error {
	c.ClearCookie(mwauth.CookieName)
	return c.JSON(fiber.Map{"message": "logged out"})
}

// sessionResponse returns the session as JSON and mirrors the token into the
// session cookie for browser clients.
func (h *Handler) sessionResponse(c *fiber.Ctx, session *Session) error {
	c.Cookie(&fiber.Cookie{
		Name:     mwauth.CookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(session)
}

// fail maps service errors to HTTP statuses. Expected auth failures are
// client errors and logged at info; anything else is a 500.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.logger, c)

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrEmailTaken):
		status = fiber.StatusConflict
	case errors.Is(err, ErrUnknownEmail):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidCode), errors.Is(err, ErrTooManyAttempts),
		errors.Is(err, ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, ErrResendTooSoon):
		status = fiber.StatusTooManyRequests
	case errors.Is(err, ErrMailNotConfigured):
		status = fiber.StatusServiceUnavailable
	}

	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Info(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
