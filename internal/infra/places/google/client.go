// Package google adapts the Google Maps Places and Geocoding APIs to the premium places provider.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"justchoose/config"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/entity"
	"justchoose/internal/domain/service"
	"justchoose/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"googlemaps.github.io/maps"
)

const (
	// maxRadiusMeters is the largest radius Nearby Search accepts.
	maxRadiusMeters = 40000

	// maxSuggestions caps the autocomplete list built from geocode matches.
	maxSuggestions = 5
)

// Params holds dependencies for Client, injected by Fx
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// Client is the premium provider backed by googlemaps.github.io/maps.
type Client struct {
	maps    *maps.Client
	region  string
	timeout func(context.Context) (context.Context, context.CancelFunc)
	logger  *slog.Logger
}

var (
	_ service.PlaceProvider = (*Client)(nil)
	_ service.PlaceDetailer = (*Client)(nil)
)

// New creates the Google provider. It returns a nil provider without error when no API key
// is configured, which leaves the premium provider unavailable.
func New(params Params) (service.PlaceProvider, error) {
	cfg := params.Config.Places
	if cfg == nil || cfg.GoogleAPIKey == "" {
		params.Logger.Info("Google API key not configured, premium provider disabled")

		return nil, nil
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.GoogleAPIKey)}
	if params.HTTPClient != nil {
		opts = append(opts, maps.WithHTTPClient(params.HTTPClient))
	}

	client, err := newClient(cfg, params.Logger, opts...)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func newClient(cfg *config.PlacesConfig, logger *slog.Logger, opts ...maps.ClientOption) (*Client, error) {
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create google maps client")
	}

	timeout := cfg.SearchTimeout

	return &Client{
		maps:   client,
		region: cfg.Region,
		timeout: func(ctx context.Context) (context.Context, context.CancelFunc) {
			if timeout <= 0 {
				return context.WithCancel(ctx)
			}

			return context.WithTimeout(ctx, timeout)
		},
		logger: logger.With(slog.String("provider", entity.ProviderGoogle.String())),
	}, nil
}

// Kind implements service.PlaceProvider
func (c *Client) Kind() entity.ProviderKind {
	return entity.ProviderGoogle
}

// classify maps a Maps API error onto the provider error taxonomy.
func (c *Client) classify(operation string, err error) error {
	msg := err.Error()
	c.logger.Warn("Google Maps request failed", slog.String("operation", operation), slog.String("error", msg))

	switch {
	case strings.Contains(msg, "OVER_QUERY_LIMIT"), strings.Contains(msg, "OVER_DAILY_LIMIT"),
		strings.Contains(msg, "REQUEST_DENIED"):
		metrics.ObserveProviderCall(entity.ProviderGoogle, operation, metrics.OutcomeQuota)

		return domainerrors.ErrProviderQuota.WithDetails(msg)
	case strings.Contains(msg, "NOT_FOUND"):
		metrics.ObserveProviderCall(entity.ProviderGoogle, operation, metrics.OutcomeNotFound)

		return domainerrors.ErrNotFound.WithDetails(msg)
	case errors.Is(err, context.DeadlineExceeded), strings.Contains(msg, "UNKNOWN_ERROR"):
		metrics.ObserveProviderCall(entity.ProviderGoogle, operation, metrics.OutcomeError)

		return domainerrors.ErrProviderUnavailable.WithDetails(msg)
	default:
		metrics.ObserveProviderCall(entity.ProviderGoogle, operation, metrics.OutcomeError)

		return errors.Wrapf(err, "google %s", operation)
	}
}
