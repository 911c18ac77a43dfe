package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "justchoose/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestCount reads justchoose_http_requests_total for one label set from the default registry.
func requestCount(t *testing.T, method, path, status string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "justchoose_http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["method"] == method && labels["path"] == path && labels["status"] == status {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func TestMetrics_RecordsRenderedStatusPerRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.Default()).HandleHTTPError
	e.Use(Metrics)
	e.GET("/api/spins/:id/replay", func(c echo.Context) error {
		return domainerrors.ErrNotFound
	})

	before := requestCount(t, http.MethodGet, "/api/spins/:id/replay", "404")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/spins/abc/replay", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Equal(t, before+1, requestCount(t, http.MethodGet, "/api/spins/:id/replay", "404"))
	assert.Zero(t, requestCount(t, http.MethodGet, "/api/spins/abc/replay", "404"))
}
