package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"icoltex-hub/core/database"
	"icoltex-hub/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// unconfiguredFetcher simulates missing upstream credentials.
type unconfiguredFetcher struct{}

func (unconfiguredFetcher) Configured() bool { return false }

func (unconfiguredFetcher) FetchRaw(context.Context, EntityType) ([]RawItem, error) {
	return nil, ErrNotConfigured
}

func setupSyncApp(t *testing.T, fetcher Fetcher) *fiber.App {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Client{}, &models.Product{},
		&models.ProductCategory{}, &models.ProductClass{},
	))

	app := fiber.New()
	NewHandler(NewService(fetcher, db, zap.NewNop()), zap.NewNop()).RegisterRoutes(app)
	return app
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandleStatus(t *testing.T) {
	t.Run("Configured", func(t *testing.T) {
		app := setupSyncApp(t, &fakeFetcher{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sync/status", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeJSON(t, resp)
		assert.Equal(t, true, body["configured"])
	})

	t.Run("Not Configured", func(t *testing.T) {
		app := setupSyncApp(t, unconfiguredFetcher{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sync/status", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "status itself always answers")

		body := decodeJSON(t, resp)
		assert.Equal(t, false, body["configured"])
	})
}

func TestHandleSync(t *testing.T) {
	t.Run("Completed Run Reports Counts", func(t *testing.T) {
		app := setupSyncApp(t, &fakeFetcher{items: map[EntityType][]RawItem{
			EntityClients: {
				{"CardCode": "C001"},
				{"Razón Social": "Sin Identificador"},
			},
		}})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync/clients", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeJSON(t, resp)
		assert.EqualValues(t, 2, body["totalFetched"])
		assert.EqualValues(t, 1, body["created"])
		assert.EqualValues(t, 1, body["skipped"])
		assert.EqualValues(t, 0, body["errors"])
	})

	t.Run("Unconfigured Is Unavailable", func(t *testing.T) {
		app := setupSyncApp(t, unconfiguredFetcher{})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync/products", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Fetch Failure Is Server Error", func(t *testing.T) {
		app := setupSyncApp(t, &fakeFetcher{err: &FetchError{Status: 502, Reason: "bad gateway"}})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sync/categories", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeJSON(t, resp)
		assert.Equal(t, "sync failed", body["error"])
	})
}
