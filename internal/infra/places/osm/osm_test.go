package osm

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"justchoose/config"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/entity"
	"justchoose/internal/infra/ratelimit"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserAgent = "JustChooseAlready/1.0 (test)"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Places: &config.PlacesConfig{
		SearchTimeout: 5 * time.Second,
		OSM: config.OSMConfig{
			NominatimURL: srv.URL + "/search",
			OverpassURL:  srv.URL + "/api/interpreter",
			UserAgent:    testUserAgent,
			MaxResults:   20,
			CountryCodes: "us",
		},
	}}

	return New(Params{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Limiter:    ratelimit.New(0),
		HTTPClient: srv.Client(),
	})
}

func TestClient_Geocode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, testUserAgent, r.Header.Get("User-Agent"))

		q := r.URL.Query()
		assert.Equal(t, "Kansas City, MO", q.Get("q"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "1", q.Get("limit"))
		assert.Equal(t, "us", q.Get("countrycodes"))

		_, _ = io.WriteString(w, `[{"place_id":282548765,"lat":"39.0997","lon":"-94.5786","display_name":"Kansas City, Jackson County, Missouri, United States"}]`)
	})

	result, err := client.Geocode(context.Background(), "Kansas City, MO")
	require.NoError(t, err)
	assert.InDelta(t, 39.0997, result.Lat, 1e-9)
	assert.InDelta(t, -94.5786, result.Lng, 1e-9)
	assert.Equal(t, "osm_282548765", result.PlaceID)
	assert.Contains(t, result.FormattedAddress, "Missouri")
}

func TestClient_Geocode_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	_, err := client.Geocode(context.Background(), "Nowhereville")
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, want: domainerrors.ErrProviderQuota},
		{name: "server error", status: http.StatusBadGateway, want: domainerrors.ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Geocode(context.Background(), "Denver")
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestClient_Search(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/interpreter", r.URL.Path)
		require.NoError(t, r.ParseForm())
		query = r.PostForm.Get("data")

		_, _ = io.WriteString(w, `{"elements":[
			{"type":"node","id":2,"lat":39.2,"lon":-94.5,"tags":{"amenity":"restaurant","name":"Far Diner"}},
			{"type":"node","id":1,"lat":39.1,"lon":-94.58,"tags":{"amenity":"restaurant","name":"Near Cafe",
				"addr:housenumber":"12","addr:street":"Main St","addr:city":"Kansas City","addr:state":"MO","addr:postcode":"64105"}},
			{"type":"way","id":7,"center":{"lat":39.15,"lon":-94.55},"tags":{"amenity":"restaurant"}},
			{"type":"node","id":9,"lat":39.1,"lon":-94.58,"tags":{"amenity":"bench"}}
		]}`)
	})

	places, err := client.Search(context.Background(), &entity.SearchQuery{RadiusMiles: 5, Cuisine: "Thai"},
		entity.Coordinates{Lat: 39.1, Lng: -94.58})
	require.NoError(t, err)

	assert.Contains(t, query, `node["amenity"="restaurant"]["cuisine"~"thai",i](around:8047,`)
	assert.Contains(t, query, "out center tags;")

	require.Len(t, places, 3)
	assert.Equal(t, "osm_node_1", places[0].ID)
	assert.Equal(t, "Near Cafe", places[0].Name)
	require.NotNil(t, places[0].FormattedAddress)
	assert.Equal(t, "12 Main St Kansas City MO 64105", *places[0].FormattedAddress)
	assert.Equal(t, "Main St", *places[0].Vicinity)
	assert.Nil(t, places[0].Rating)
	assert.Nil(t, places[0].PriceTier)
	assert.Nil(t, places[0].PhotoReference)

	assert.Equal(t, "osm_way_7", places[1].ID)
	assert.Equal(t, entity.UnnamedPlace, places[1].Name)
	assert.Nil(t, places[1].FormattedAddress, "missing address is unknown, not a placeholder")
	assert.Nil(t, places[1].Vicinity)

	assert.Equal(t, "osm_node_2", places[2].ID)
}

func TestClient_Search_CapsResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		var b strings.Builder
		b.WriteString(`{"elements":[`)
		for i := range 30 {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`{"type":"node","id":` + strconv.Itoa(i) + `,"lat":39.1,"lon":-94.5,"tags":{"amenity":"restaurant"}}`)
		}
		b.WriteString(`]}`)
		_, _ = io.WriteString(w, b.String())
	})

	places, err := client.Search(context.Background(), &entity.SearchQuery{RadiusMiles: 1}, entity.Coordinates{Lat: 39.1, Lng: -94.5})
	require.NoError(t, err)
	assert.Len(t, places, 20)
}

func TestClient_Suggest_Unsupported(t *testing.T) {
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Fatal("autocomplete must not reach the network")
	})

	_, err := client.Suggest(context.Background(), "Kansas")
	assert.True(t, errors.Is(err, domainerrors.ErrProviderCapability))
}

func TestBuildOverpassQuery_NoCuisine(t *testing.T) {
	q := buildOverpassQuery(entity.Coordinates{Lat: 1.5, Lng: 2.5}, 1609, "")

	assert.NotContains(t, q, "cuisine")
	assert.Contains(t, q, `way["amenity"="restaurant"](around:1609,1.500000,2.500000);`)
	assert.Contains(t, q, `relation["amenity"="restaurant"]`)
}

func TestSanitizeCuisine(t *testing.T) {
	assert.Equal(t, "thai", sanitizeCuisine(`Thai"];out;`))
	assert.Equal(t, "ice cream", sanitizeCuisine("Ice Cream"))
	assert.Equal(t, "", sanitizeCuisine(".*"))
}
