package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{Secret: testSecret, Role: role}))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": c.Locals("auth_subject")})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Missing Token", func(t *testing.T) {
		app := setupApp("")
		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid Bearer Token", func(t *testing.T) {
		app := setupApp("")
		token, err := NewToken(testSecret, "42", RoleAdmin, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Valid Cookie Token", func(t *testing.T) {
		app := setupApp("")
		token, err := NewToken(testSecret, "42", RoleUser, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Expired Token", func(t *testing.T) {
		app := setupApp("")
		token, err := NewToken(testSecret, "42", RoleAdmin, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Role Mismatch", func(t *testing.T) {
		app := setupApp(RoleAdmin)
		token, err := NewToken(testSecret, "42", RoleUser, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
