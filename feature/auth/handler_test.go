package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"icoltex-hub/core/database"
	mwauth "icoltex-hub/core/middleware/auth"
	"icoltex-hub/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupAuthApp(t *testing.T) (*fiber.App, *fakeMailer) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Admin{}, &models.AuthOTP{}))

	mailer := &fakeMailer{}
	app := fiber.New()
	NewHandler(NewService(db, mailer, testAuthConfig(), zap.NewNop()), zap.NewNop()).RegisterRoutes(app)
	return app, mailer
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler(t *testing.T) {
	t.Run("Register Flow", func(t *testing.T) {
		app, mailer := setupAuthApp(t)

		resp := postJSON(t, app, "/auth/register/request", fiber.Map{"email": "ana@example.com"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, mailer.lastCode)

		resp = postJSON(t, app, "/auth/register/verify", fiber.Map{
			"email":    "ana@example.com",
			"code":     mailer.lastCode,
			"name":     "Ana",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var session Session
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, mwauth.RoleUser, session.Role)

		var cookie string
		for _, c := range resp.Cookies() {
			if c.Name == mwauth.CookieName {
				cookie = c.Value
			}
		}
		assert.Equal(t, session.Token, cookie, "session is mirrored into the cookie")
	})

	t.Run("Missing Fields", func(t *testing.T) {
		app, _ := setupAuthApp(t)

		resp := postJSON(t, app, "/auth/register/request", fiber.Map{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = postJSON(t, app, "/auth/register/verify", fiber.Map{"email": "ana@example.com"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Wrong Code Is Unauthorized", func(t *testing.T) {
		app, _ := setupAuthApp(t)

		postJSON(t, app, "/auth/register/request", fiber.Map{"email": "ana@example.com"})
		resp := postJSON(t, app, "/auth/register/verify", fiber.Map{
			"email":    "ana@example.com",
			"code":     "000000",
			"password": "hunter22",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown Login Email Is Not Found", func(t *testing.T) {
		app, _ := setupAuthApp(t)

		resp := postJSON(t, app, "/auth/login/request", fiber.Map{"email": "nadie@example.com"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Admin Login Rejects Bad Password", func(t *testing.T) {
		app, _ := setupAuthApp(t)

		resp := postJSON(t, app, "/auth/admin/login", fiber.Map{
			"email":    "admin@icoltex.com",
			"password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Logout Clears Cookie", func(t *testing.T) {
		app, _ := setupAuthApp(t)

		resp := postJSON(t, app, "/auth/logout", fiber.Map{})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
