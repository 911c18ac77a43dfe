package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"justchoose/config"
	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	"justchoose/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Autocomplete input shorter than this is answered without calling a provider.
const minAutocompleteLength = 3

// searchService implements the SearchUsecase interface.
type searchService struct {
	gateway usecase.ProviderGateway
	cache   *resultCache
	logger  *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Gateway usecase.ProviderGateway
	Cache   repository.CacheRepository
	Clock   service.Clock
	Config  *config.Config
	Logger  *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	var ttl time.Duration
	if params.Config.Cache != nil {
		ttl = params.Config.Cache.TTL
	}

	return &searchService{
		gateway: params.Gateway,
		cache:   newResultCache(params.Cache, params.Clock, ttl, params.Logger),
		logger:  params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Execute validates the query before any I/O, then serves it from the cache or the caller's provider.
func (srv *searchService) Execute(ctx context.Context, caller *entity.Caller, input *usecase.SearchInput) (*entity.SearchResult, error) {
	query, err := buildSearchQuery(input)
	if err != nil {
		return nil, err
	}

	kind, provider, err := srv.provider(ctx, caller)
	if err != nil {
		return nil, err
	}

	key := searchCacheKey(kind, query)

	var places []entity.Place
	if srv.cache.get(ctx, cacheKindSearch, key, &places) {
		srv.log(ctx).Debug("Search served from cache", slog.String("key", key))

		return newSearchResult(kind, places, true), nil
	}

	center, err := srv.center(ctx, provider, query)
	if err != nil {
		return nil, err
	}

	places, err = provider.Search(ctx, query, center)
	if err != nil {
		return nil, srv.translateProviderError(ctx, kind, "search", err)
	}
	if places == nil {
		places = []entity.Place{}
	}

	srv.cache.put(ctx, key, places)

	srv.log(ctx).Info("Search completed",
		slog.String("provider", kind.String()),
		slog.Int("results", len(places)),
	)

	return newSearchResult(kind, places, false), nil
}

// Geocode resolves text to coordinates with the caller's provider.
func (srv *searchService) Geocode(ctx context.Context, caller *entity.Caller, text string) (*usecase.GeocodeOutput, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("locationText is required")
	}

	kind, provider, err := srv.provider(ctx, caller)
	if err != nil {
		return nil, err
	}

	output := &usecase.GeocodeOutput{
		Provider:    kind,
		Attribution: kind.Attribution(),
	}

	key := geocodeCacheKey(kind, text, geocodeModeResolve)

	var cached entity.GeocodeResult
	if srv.cache.get(ctx, cacheKindGeocode, key, &cached) {
		output.Result = &cached

		return output, nil
	}

	result, err := srv.resolve(ctx, provider, text)
	if err != nil {
		return nil, err
	}

	srv.cache.put(ctx, key, result)
	output.Result = result

	return output, nil
}

// Autocomplete suggests locations. Short input returns an empty list without a provider call.
func (srv *searchService) Autocomplete(ctx context.Context, caller *entity.Caller, text string) (*usecase.AutocompleteOutput, error) {
	kind, provider, err := srv.provider(ctx, caller)
	if err != nil {
		return nil, err
	}

	output := &usecase.AutocompleteOutput{
		Provider:    kind,
		Suggestions: []entity.LocationSuggestion{},
	}

	if utf8.RuneCountInString(entity.NormalizeText(text)) < minAutocompleteLength {
		return output, nil
	}

	key := geocodeCacheKey(kind, text, geocodeModeAutocomplete)

	var cached []entity.LocationSuggestion
	if srv.cache.get(ctx, cacheKindGeocode, key, &cached) {
		if cached != nil {
			output.Suggestions = cached
		}

		return output, nil
	}

	suggestions, err := provider.Suggest(ctx, text)
	if err != nil {
		return nil, srv.translateProviderError(ctx, kind, "autocomplete", err)
	}
	if suggestions != nil {
		output.Suggestions = suggestions
	}

	srv.cache.put(ctx, key, output.Suggestions)

	return output, nil
}

func (srv *searchService) provider(ctx context.Context, caller *entity.Caller) (entity.ProviderKind, service.PlaceProvider, error) {
	kind := srv.gateway.Choose(ctx, caller)

	provider, err := srv.gateway.Provider(kind)
	if err != nil {
		return kind, nil, srv.translateProviderError(ctx, kind, "select", err)
	}

	return kind, provider, nil
}

// center returns the search origin, resolving the location text when no coordinates were given.
func (srv *searchService) center(ctx context.Context, provider service.PlaceProvider, query *entity.SearchQuery) (entity.Coordinates, error) {
	if query.HasCoordinates() {
		return *query.Coordinates, nil
	}

	resolved, err := srv.resolve(ctx, provider, query.LocationText)
	if err != nil {
		return entity.Coordinates{}, err
	}

	return resolved.Coordinates, nil
}

func (srv *searchService) resolve(ctx context.Context, provider service.PlaceProvider, text string) (*entity.GeocodeResult, error) {
	result, err := provider.Geocode(ctx, text)
	if errors.Is(err, domainerrors.ErrLocationNotFound) {
		srv.log(ctx).Info("Location not found", slog.String("locationText", text))

		return nil, domainerrors.ErrLocationNotFound.
			WithDetails(strings.TrimSpace(text)).
			WithSuggestions(locationHints(text))
	}
	if err != nil {
		return nil, srv.translateProviderError(ctx, provider.Kind(), "geocode", err)
	}

	return result, nil
}

// translateProviderError keeps classified provider errors and turns anything else into SearchFailed.
func (srv *searchService) translateProviderError(ctx context.Context, kind entity.ProviderKind, operation string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	srv.log(ctx).Error("Places provider failed",
		slog.String("provider", kind.String()),
		slog.String("operation", operation),
		slog.Any("error", err),
	)

	return domainerrors.ErrSearchFailed
}

func newSearchResult(kind entity.ProviderKind, places []entity.Place, cached bool) *entity.SearchResult {
	return &entity.SearchResult{
		Places:      places,
		Provider:    kind,
		Attribution: kind.Attribution(),
		Limitations: kind.Limitations(),
		Cached:      cached,
	}
}

// buildSearchQuery validates input. Lat and Lng only count when both are present.
func buildSearchQuery(input *usecase.SearchInput) (*entity.SearchQuery, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search input is required")
	}

	if input.RadiusMiles < entity.MinRadiusMiles || input.RadiusMiles > entity.MaxRadiusMiles {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radiusMiles must be between 1 and 25")
	}

	query := &entity.SearchQuery{
		LocationText: strings.TrimSpace(input.LocationText),
		RadiusMiles:  input.RadiusMiles,
		Cuisine:      input.Cuisine,
	}

	if input.Lat != nil && input.Lng != nil {
		lat, lng := *input.Lat, *input.Lng
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("lat/lng out of range")
		}
		query.Coordinates = &entity.Coordinates{Lat: lat, Lng: lng}
	}

	if query.Coordinates == nil && query.LocationText == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("either locationText or both lat and lng are required")
	}

	tiers := input.PriceRanges
	if len(tiers) == 0 && input.Price != nil {
		tiers = []int{*input.Price}
	}
	for _, t := range tiers {
		if t < entity.MinPriceTier || t > entity.MaxPriceTier {
			return nil, domainerrors.ErrValidationFailed.WithDetails("price tiers must be between 1 and 4")
		}
	}
	query.PriceTiers = tiers

	return query, nil
}
