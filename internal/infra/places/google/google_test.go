package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"justchoose/config"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.PlacesConfig{Region: "us", SearchTimeout: 5 * time.Second}
	client, err := newClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)),
		maps.WithAPIKey("test-key"),
		maps.WithBaseURL(srv.URL),
		maps.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return client
}

func TestNew_DisabledWithoutKey(t *testing.T) {
	client, err := New(Params{
		Config: &config.Config{Places: &config.PlacesConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/nearbysearch/json", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "restaurant", q.Get("type"))
		assert.Equal(t, "thai", q.Get("keyword"))
		assert.Equal(t, "16093", q.Get("radius"))
		assert.Equal(t, "0", q.Get("minprice"))
		assert.Equal(t, "1", q.Get("maxprice"))
		assert.Equal(t, "test-key", q.Get("key"))

		_, _ = io.WriteString(w, `{"status":"OK","results":[
			{"place_id":"ChIJ1","name":"Thai Palace","rating":4.5,"user_ratings_total":120,"price_level":2,
			 "vicinity":"12 Main St","photos":[{"photo_reference":"ref-1"}],
			 "geometry":{"location":{"lat":39.1,"lng":-94.58}}},
			{"place_id":"ChIJ2","name":"New Spot","geometry":{"location":{"lat":39.2,"lng":-94.5}}}
		]}`)
	})

	places, err := client.Search(context.Background(),
		&entity.SearchQuery{RadiusMiles: 10, Cuisine: "Thai", PriceTiers: []int{2, 1}},
		entity.Coordinates{Lat: 39.1, Lng: -94.58})
	require.NoError(t, err)
	require.Len(t, places, 2)

	first := places[0]
	assert.Equal(t, "ChIJ1", first.ID)
	assert.InDelta(t, 4.5, *first.Rating, 1e-6)
	assert.Equal(t, 120, *first.RatingCount)
	assert.Equal(t, 2, *first.PriceTier)
	assert.Equal(t, "12 Main St", *first.Vicinity)
	assert.Equal(t, "ref-1", *first.PhotoReference)

	unrated := places[1]
	assert.Nil(t, unrated.Rating, "unrated place must not show zero stars")
	assert.Nil(t, unrated.RatingCount)
	assert.Nil(t, unrated.PriceTier)
	assert.Nil(t, unrated.PhotoReference)
}

func TestBuildNearbyRequest(t *testing.T) {
	t.Run("any cuisine and no tiers", func(t *testing.T) {
		req := buildNearbyRequest(&entity.SearchQuery{RadiusMiles: 1, Cuisine: "any"}, entity.Coordinates{})
		assert.Empty(t, req.Keyword)
		assert.Empty(t, req.MinPrice)
		assert.Empty(t, req.MaxPrice)
	})

	t.Run("radius clamped to api maximum", func(t *testing.T) {
		req := buildNearbyRequest(&entity.SearchQuery{RadiusMiles: 25}, entity.Coordinates{})
		assert.Equal(t, uint(maxRadiusMeters), req.Radius)
	})

	t.Run("non contiguous tiers use min and max", func(t *testing.T) {
		req := buildNearbyRequest(&entity.SearchQuery{RadiusMiles: 1, PriceTiers: []int{4, 1}}, entity.Coordinates{})
		assert.Equal(t, maps.PriceLevel("0"), req.MinPrice)
		assert.Equal(t, maps.PriceLevel("3"), req.MaxPrice)
	})
}

func TestClient_QuotaError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"OVER_QUERY_LIMIT","error_message":"You have exceeded your daily request quota"}`)
	})

	_, err := client.Search(context.Background(), &entity.SearchQuery{RadiusMiles: 5}, entity.Coordinates{Lat: 1, Lng: 1})
	assert.True(t, errors.Is(err, domainerrors.ErrProviderQuota), "got %v", err)
}

func TestClient_Geocode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		assert.Equal(t, "Denver, CO", r.URL.Query().Get("address"))
		assert.Equal(t, "us", r.URL.Query().Get("region"))

		_, _ = io.WriteString(w, `{"status":"OK","results":[
			{"place_id":"ChIJden","formatted_address":"Denver, CO, USA","types":["locality"],
			 "geometry":{"location":{"lat":39.7392,"lng":-104.9903}}}
		]}`)
	})

	result, err := client.Geocode(context.Background(), "Denver, CO")
	require.NoError(t, err)
	assert.Equal(t, "ChIJden", result.PlaceID)
	assert.Equal(t, "Denver, CO, USA", result.FormattedAddress)
	assert.InDelta(t, 39.7392, result.Lat, 1e-9)
}

func TestClient_Geocode_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	_, err := client.Geocode(context.Background(), "Springfield")
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestClient_NotFoundStatus(t *testing.T) {
	notFoundServer := func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"NOT_FOUND","error_message":"Referenced location was not found"}`)
	}

	t.Run("geocode reports an unresolvable location", func(t *testing.T) {
		client := newTestClient(t, notFoundServer)

		_, err := client.Geocode(context.Background(), "Kansas City")
		require.True(t, errors.Is(err, domainerrors.ErrLocationNotFound), "got %v", err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Kansas City", appErr.Details())
	})

	t.Run("place details stay a plain not found", func(t *testing.T) {
		client := newTestClient(t, notFoundServer)

		_, err := client.PlaceDetails(context.Background(), "ChIJgone")
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound), "got %v", err)
		assert.False(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	})
}

func TestClient_Suggest_CapsAtFive(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"OK","results":[
			{"place_id":"1","formatted_address":"A"},{"place_id":"2","formatted_address":"B"},
			{"place_id":"3","formatted_address":"C"},{"place_id":"4","formatted_address":"D"},
			{"place_id":"5","formatted_address":"E"},{"place_id":"6","formatted_address":"F"}
		]}`)
	})

	suggestions, err := client.Suggest(context.Background(), "Spring")
	require.NoError(t, err)
	require.Len(t, suggestions, maxSuggestions)
	assert.Equal(t, "A", suggestions[0].Description)
	assert.Equal(t, "1", suggestions[0].PlaceID)
}

func TestClient_PlaceDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/details/json", r.URL.Path)
		assert.Equal(t, "ChIJ1", r.URL.Query().Get("placeid"))

		_, _ = io.WriteString(w, `{"status":"OK","result":{"place_id":"ChIJ1","name":"Thai Palace",
			"formatted_address":"12 Main St, Kansas City, MO","rating":4.6,"price_level":2}}`)
	})

	place, err := client.PlaceDetails(context.Background(), "ChIJ1")
	require.NoError(t, err)
	assert.Equal(t, "Thai Palace", place.Name)
	assert.Equal(t, "12 Main St, Kansas City, MO", *place.FormattedAddress)
	assert.Equal(t, 2, *place.PriceTier)
}
