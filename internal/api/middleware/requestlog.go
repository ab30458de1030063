package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that writes one structured log
// line per API request. Each request carries an id for correlating the
// line with the pipeline's own log output: the X-EBAY headers never
// leave the trading client, so the request id is the only join key
// between an API call and its submission. The id comes from the
// X-Request-ID header when the caller supplies one and is generated
// otherwise; either way it is echoed back on the response. Probe and
// scrape endpoints are not logged.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			if _, skip := probePaths[c.Request().URL.Path]; skip {
				return next(c)
			}

			start := time.Now()

			err := next(c)

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			log.Info("request", attrs...)

			return err
		}
	}
}
