package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"icoltex-hub/core/config"

	"go.uber.org/zap"
)

// EntityType identifies one syncable catalog entity.
type EntityType string

const (
	EntityClients    EntityType = "clients"
	EntityProducts   EntityType = "products"
	EntityCategories EntityType = "categories"
	EntityClasses    EntityType = "classes"
)

// Upstream webhook endpoint per entity type.
var endpointPaths = map[EntityType]string{
	EntityClients:    "/clientes_icoltex",
	EntityProducts:   "/items_icoltex",
	EntityCategories: "/categorias_icoltex",
	EntityClasses:    "/clases_icoltex",
}

// ErrNotConfigured is returned when the upstream URL or credentials are
// missing. It is fatal for the whole run, before any fetch attempt.
var ErrNotConfigured = errors.New("icoltex api not configured: missing base URL, user, or password")

// FetchError is a fatal upstream failure: non-2xx status or a body that is
// neither valid JSON nor NDJSON.
type FetchError struct {
	Status int
	Reason string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("icoltex api error %d: %s", e.Status, e.Reason)
	}
	return "icoltex api error: " + e.Reason
}

// Fetcher retrieves raw records for one entity type from the upstream API.
type Fetcher interface {
	// Configured reports whether the upstream can be reached at all.
	Configured() bool
	// FetchRaw returns the raw top-level items for the entity type. The
	// returned count is the run's totalFetched, before unwrapping.
	FetchRaw(ctx context.Context, entity EntityType) ([]RawItem, error)
}

// WebhookFetcher fetches from the Icoltex webhook over HTTP with Basic Auth.
// Credentials are resolved once at construction, never from the process
// environment at call time.
type WebhookFetcher struct {
	cfg    config.IcoltexConfig
	client *http.Client
	logger *zap.Logger
}

// NewWebhookFetcher creates a fetcher for the configured upstream.
func NewWebhookFetcher(cfg config.IcoltexConfig, logger *zap.Logger) *WebhookFetcher {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	return &WebhookFetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// Configured reports whether URL and credentials are present.
func (f *WebhookFetcher) Configured() bool {
	return f.cfg.Configured()
}

// FetchRaw retrieves and decodes one entity feed. Accepted body formats: a
// bare JSON array, an object wrapping an array under a known (or any) key,
// or NDJSON with one object per line. An empty body yields an empty slice.
func (f *WebhookFetcher) FetchRaw(ctx context.Context, entity EntityType) ([]RawItem, error) {
	if !f.Configured() {
		return nil, ErrNotConfigured
	}

	path, ok := endpointPaths[entity]
	if !ok {
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
	url := strings.TrimSuffix(f.cfg.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(f.cfg.User, f.cfg.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Reason: "reading response body: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Status: resp.StatusCode, Reason: truncate(string(body), 200)}
	}

	return f.decodeBody(entity, strings.TrimSpace(string(body)))
}

// Keys the upstream is known to wrap its record arrays under, checked before
// falling back to any array-valued key.
var responseArrayKeys = []string{"clientes", "data", "Clientes", "Data", "items", "result", "results", "value", "records", "rows"}

func (f *WebhookFetcher) decodeBody(entity EntityType, body string) ([]RawItem, error) {
	if body == "" {
		f.logger.Warn("Empty upstream response", zap.String("entity", string(entity)))
		return []RawItem{}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return f.decodeNDJSON(entity, body)
	}

	switch v := decoded.(type) {
	case []any:
		items := objectItems(v)
		f.logger.Info("Upstream response decoded",
			zap.String("entity", string(entity)),
			zap.String("format", "array"),
			zap.Int("items", len(items)))
		return items, nil
	case map[string]any:
		// Known wrapper keys first, then any array-valued key.
		for _, key := range responseArrayKeys {
			if arr, ok := v[key].([]any); ok {
				return f.wrappedItems(entity, key, arr), nil
			}
		}
		for key, val := range v {
			if arr, ok := val.([]any); ok {
				return f.wrappedItems(entity, key, arr), nil
			}
		}
		f.logger.Warn("Upstream object carries no array",
			zap.String("entity", string(entity)),
			zap.Strings("keys", RawItem(v).Keys()))
		return []RawItem{}, nil
	default:
		return nil, &FetchError{Reason: "response is not a JSON array or object"}
	}
}

func (f *WebhookFetcher) wrappedItems(entity EntityType, key string, arr []any) []RawItem {
	items := objectItems(arr)
	f.logger.Info("Upstream response decoded",
		zap.String("entity", string(entity)),
		zap.String("format", "object"),
		zap.String("key", key),
		zap.Int("items", len(items)))
	return items
}

// decodeNDJSON parses one JSON object per line, skipping invalid lines. If
// no line parses, the body is simply not JSON and the fetch fails.
func (f *WebhookFetcher) decodeNDJSON(entity EntityType, body string) ([]RawItem, error) {
	var items []RawItem
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			continue
		}
		items = append(items, RawItem(obj))
	}
	if len(items) == 0 {
		return nil, &FetchError{Reason: "response is neither valid JSON nor NDJSON: " + truncate(body, 200)}
	}
	f.logger.Info("Upstream response decoded",
		zap.String("entity", string(entity)),
		zap.String("format", "ndjson"),
		zap.Int("items", len(items)))
	return items, nil
}

func objectItems(arr []any) []RawItem {
	items := make([]RawItem, 0, len(arr))
	for _, el := range arr {
		if obj, ok := el.(map[string]any); ok {
			items = append(items, RawItem(obj))
		}
	}
	return items
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
