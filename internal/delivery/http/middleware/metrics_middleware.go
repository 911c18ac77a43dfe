package middleware

import (
	"strconv"
	"time"

	"justchoose/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that matched no route so paths cannot explode label cardinality.
const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route template.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start))

		return err
	}
}
