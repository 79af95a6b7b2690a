package compute

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/internal/http"
	"github.com/fivetwenty-io/cloudres/pkg/completion"
	"github.com/fivetwenty-io/cloudres/pkg/logging"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
)

// ErrMalformedResponse is returned when a response lacks its envelope key.
var ErrMalformedResponse = errors.New("malformed response")

// Client is the service-level API. Its Get is strict: a missing entity is an
// error, unlike Manager.Get.
type Client struct {
	httpClient *http.Client
	logger     logging.Logger
	cache      completion.Cache
	managers   map[string]*Manager
}

// New creates a compute client.
func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	endpoint := strings.TrimSpace(config.Endpoint)
	if endpoint == "" {
		return nil, constants.ErrNoAPIEndpoint
	}

	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	logger := config.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	cache := config.CompletionCache
	if cache == nil {
		cache = completion.NewNoOpCache()
	}

	opts := []http.Option{
		http.WithLogger(logger),
		http.WithDebug(config.Debug),
		http.WithErrorParser(parseError),
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		opts = append(opts, http.WithRetryConfig(
			valueOr(config.RetryMax, constants.DefaultRetryMax),
			valueOr(config.RetryWaitMin, constants.DefaultRetryWaitMin),
			valueOr(config.RetryWaitMax, constants.DefaultRetryWaitMax),
		))
	}

	var tokens http.TokenManager
	if config.AccessToken != "" {
		tokens = http.StaticToken(config.AccessToken)
	}

	client := &Client{
		httpClient: http.NewClient(endpoint, tokens, opts...),
		logger:     logger,
		cache:      cache,
		managers:   make(map[string]*Manager),
	}

	for _, collection := range Collections() {
		client.managers[collection.Variant.Name] = newManager(client, collection)
	}

	return client, nil
}

// Servers returns the servers manager.
func (c *Client) Servers() *Manager {
	return c.managers[ServerVariant.Name]
}

// Flavors returns the flavors manager.
func (c *Client) Flavors() *Manager {
	return c.managers[FlavorVariant.Name]
}

// Manager returns the manager for a collection by its plural name, e.g.
// "servers".
func (c *Client) Manager(plural string) (*Manager, error) {
	for _, manager := range c.managers {
		if manager.collection.Plural == plural {
			return manager, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", constants.ErrUnknownCollection, plural)
}

// Endpoint returns the normalized API endpoint.
func (c *Client) Endpoint() string {
	return c.httpClient.BaseURL()
}

// CompletionCache returns the cache resource identifiers are written to.
func (c *Client) CompletionCache() completion.Cache {
	return c.cache
}

// Get fetches the entity of variant's collection with the given id. A 404 is
// returned as an *APIError.
func (c *Client) Get(ctx context.Context, variant resource.Variant, id interface{}) (*resource.Resource, error) {
	manager, ok := c.managers[variant.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownCollection, variant.Name)
	}

	return manager.fetch(ctx, id)
}

// getter adapts Client.Get to resource.Getter for one variant.
type getter struct {
	client  *Client
	variant resource.Variant
}

func (g *getter) Get(ctx context.Context, id interface{}) (*resource.Resource, error) {
	return g.client.Get(ctx, g.variant, id)
}

// decodeEnvelope decodes body[key] into target. Numbers are kept as
// json.Number so ids round-trip unchanged.
func decodeEnvelope(body []byte, key string, target interface{}) error {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	raw, ok := envelope[key]
	if !ok {
		return fmt.Errorf("%w: missing %q", ErrMalformedResponse, key)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	err = decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", key, err)
	}

	return nil
}

func idPath(base string, id interface{}) string {
	return base + "/" + url.PathEscape(fmt.Sprint(id))
}

func valueOr[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}

	return value
}
