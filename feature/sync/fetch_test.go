package sync

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"icoltex-hub/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFetcher(baseURL string) *WebhookFetcher {
	return NewWebhookFetcher(config.IcoltexConfig{
		BaseURL:  baseURL,
		User:     "sync",
		Password: "secret",
	}, zap.NewNop())
}

func TestWebhookFetcherFetchRaw(t *testing.T) {
	t.Run("Bare Array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/clientes_icoltex", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "sync", user)
			assert.Equal(t, "secret", pass)
			w.Write([]byte(`[{"CardCode":"C001"},{"CardCode":"C002"}]`))
		}))
		defer srv.Close()

		items, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "C001", GetString(items[0], "CardCode"))
	})

	t.Run("Array With Non Object Elements", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"CardCode":"C001"}, "stray", 42]`))
		}))
		defer srv.Close()

		items, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Object Wrapping Known Key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"clientes":[{"CardCode":"C001"}],"total":1}`))
		}))
		defer srv.Close()

		items, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Object Wrapping Unknown Key", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"payload":[{"ItemCode":"TX1"}]}`))
		}))
		defer srv.Close()

		items, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityProducts)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Object Without Arrays Yields Nothing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		items, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("NDJSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{\"ItemCode\":\"TX1\"}\nnot json\n{\"ItemCode\":\"TX2\"}\n"))
		}))
		defer srv.Close()

		items, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityProducts)
		require.NoError(t, err)
		require.Len(t, items, 2, "bad lines are skipped, not fatal")
		assert.Equal(t, "TX2", GetString(items[1], "ItemCode"))
	})

	t.Run("Empty Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		items, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Upstream Failure Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream exploded", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, http.StatusBadGateway, fetchErr.Status)
	})

	t.Run("Unparseable Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>definitely not json</html>"))
		}))
		defer srv.Close()

		_, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, 0, fetchErr.Status)
	})

	t.Run("Scalar Body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"ok"`))
		}))
		defer srv.Close()

		_, err := newTestFetcher(srv.URL).FetchRaw(context.Background(), EntityClients)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
	})

	t.Run("Not Configured", func(t *testing.T) {
		fetcher := NewWebhookFetcher(config.IcoltexConfig{}, zap.NewNop())
		assert.False(t, fetcher.Configured())

		_, err := fetcher.FetchRaw(context.Background(), EntityClients)
		assert.True(t, errors.Is(err, ErrNotConfigured))
	})

	t.Run("Unknown Entity", func(t *testing.T) {
		_, err := newTestFetcher("http://localhost:1").FetchRaw(context.Background(), EntityType("widgets"))
		assert.Error(t, err)
	})
}
