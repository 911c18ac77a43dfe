package context

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestScope(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := WithRequestScope(context.Background(), base, "req-7")

	assert.Equal(t, "req-7", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))

	GetLoggerOrDefault(ctx, base).Info("spin recorded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-7", entry[LogKeyRequestID])
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}

func TestGetRequestID(t *testing.T) {
	newContext := func(ctx context.Context) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

		return echo.New().NewContext(req, httptest.NewRecorder())
	}

	t.Run("echo store wins", func(t *testing.T) {
		c := newContext(WithRequestID(context.Background(), "from-ctx"))
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to the request context", func(t *testing.T) {
		c := newContext(WithRequestID(context.Background(), "from-ctx"))

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("empty without a request id", func(t *testing.T) {
		assert.Empty(t, GetRequestID(newContext(context.Background())))
	})
}
