// Package osm adapts OpenStreetMap Nominatim (geocoding) and Overpass (points of interest)
// to the free places provider.
package osm

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"justchoose/config"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/entity"
	"justchoose/internal/domain/service"
	"justchoose/internal/infra/metrics"
	"justchoose/internal/infra/ratelimit"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxErrorBody bounds how much of an error response is kept for logging.
const maxErrorBody = 512

// Params holds dependencies for Client, injected by Fx
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Limiter    *ratelimit.Limiter
	HTTPClient *http.Client `optional:"true"`
}

// Client talks to Nominatim and Overpass. Both services share one limiter
// so that every outbound request honours the minimum interval.
type Client struct {
	cfg        config.OSMConfig
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	logger     *slog.Logger
}

var _ service.PlaceProvider = (*Client)(nil)

// New creates the OpenStreetMap provider
func New(params Params) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: params.Config.Places.SearchTimeout}
	}

	return &Client{
		cfg:        params.Config.Places.OSM,
		httpClient: httpClient,
		limiter:    params.Limiter,
		logger:     params.Logger.With(slog.String("provider", entity.ProviderOpenStreetMap.String())),
	}
}

// Kind implements service.PlaceProvider
func (c *Client) Kind() entity.ProviderKind {
	return entity.ProviderOpenStreetMap
}

// Suggest is refused: the Nominatim usage policy forbids autocomplete-style querying.
func (c *Client) Suggest(context.Context, string) ([]entity.LocationSuggestion, error) {
	return nil, domainerrors.ErrProviderCapability.WithDetails("autocomplete is not available with OpenStreetMap")
}

// do waits for the limiter, then sends req and checks the status code.
// The caller must close the returned body.
func (c *Client) do(ctx context.Context, operation string, req *http.Request) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveProviderCall(entity.ProviderOpenStreetMap, operation, metrics.OutcomeError)

		return nil, domainerrors.ErrProviderUnavailable.WithDetails(err.Error())
	}

	if resp.StatusCode == http.StatusOK {
		metrics.ObserveProviderCall(entity.ProviderOpenStreetMap, operation, metrics.OutcomeOK)

		return resp.Body, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	c.logger.Warn("OpenStreetMap request failed",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		metrics.ObserveProviderCall(entity.ProviderOpenStreetMap, operation, metrics.OutcomeQuota)

		return nil, domainerrors.ErrProviderQuota.WithDetails(operation)
	case resp.StatusCode >= http.StatusInternalServerError:
		metrics.ObserveProviderCall(entity.ProviderOpenStreetMap, operation, metrics.OutcomeError)

		return nil, domainerrors.ErrProviderUnavailable.WithDetails(operation)
	default:
		metrics.ObserveProviderCall(entity.ProviderOpenStreetMap, operation, metrics.OutcomeError)

		return nil, errors.Errorf("openstreetmap %s: unexpected status %d", operation, resp.StatusCode)
	}
}
