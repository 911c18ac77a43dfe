package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"justchoose/config"
	"justchoose/internal/domain/entity"

	"github.com/google/uuid"
)

const testAdminEmail = "admin@example.com"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Admin: &config.AdminConfig{Emails: []string{testAdminEmail}},
		Cache: &config.CacheConfig{Backend: "memory", TTL: 24 * time.Hour},
		Spin:  &config.SpinConfig{HistoryLimit: 50, MinExtraTurns: 5, MaxExtraTurns: 8},
	}
	cfg.HTTP.PublicBaseURL = "https://justchoose.test/"

	return cfg
}

// stubClock is a settable clock for expiry tests.
type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *stubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newCaller() *entity.Caller {
	return &entity.Caller{UserID: uuid.New(), Email: "diner@example.com"}
}

func samplePlaces(n int) []entity.Place {
	places := make([]entity.Place, n)
	for i := range places {
		places[i] = entity.Place{
			ID:   "place-" + string(rune('a'+i)),
			Name: "Restaurant " + string(rune('A'+i)),
		}
	}

	return places
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
