package metrics

import (
	"testing"
	"time"

	"justchoose/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveProviderCall(t *testing.T) {
	counter := providerCallsTotal.WithLabelValues("openstreetmap", "geocode", OutcomeQuota)
	before := testutil.ToFloat64(counter)

	ObserveProviderCall(entity.ProviderOpenStreetMap, "geocode", OutcomeQuota)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestObserveCacheLookup(t *testing.T) {
	hits := cacheLookupsTotal.WithLabelValues("search", "hit")
	misses := cacheLookupsTotal.WithLabelValues("search", "miss")
	hitsBefore, missesBefore := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	ObserveCacheLookup("search", true)
	ObserveCacheLookup("search", false)
	ObserveCacheLookup("search", false)

	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(hits))
	assert.Equal(t, missesBefore+2, testutil.ToFloat64(misses))
}

func TestObserveHTTPRequestAndSpin(t *testing.T) {
	requests := httpRequestsTotal.WithLabelValues("POST", "/api/spins", "200")
	before := testutil.ToFloat64(requests)

	spins := spinsTotal.WithLabelValues("server", "true")
	spinsBefore := testutil.ToFloat64(spins)
	writes := spinWritesTotal.WithLabelValues("direct", OutcomeError)
	writesBefore := testutil.ToFloat64(writes)

	ObserveHTTPRequest("POST", "/api/spins", "200", 15*time.Millisecond)
	ObserveSpin("server", true)
	ObserveSpinWrite("direct", OutcomeError)
	SetDBPool(4, 1)

	assert.Equal(t, before+1, testutil.ToFloat64(requests))
	assert.Equal(t, spinsBefore+1, testutil.ToFloat64(spins))
	assert.Equal(t, writesBefore+1, testutil.ToFloat64(writes))
	assert.Equal(t, 4.0, testutil.ToFloat64(dbOpenConnections))
	assert.Equal(t, 1.0, testutil.ToFloat64(dbInUseConnections))
}
