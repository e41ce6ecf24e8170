package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response so the logged
				// status is the one the client sees.
				c.Error(err)
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"ip", c.RealIP(),
			}
			if m, ok := MatchFrom(c); ok {
				attrs = append(attrs, "route", m.Route.Name)
			}
			if err != nil {
				attrs = append(attrs, "err", err.Error())
				log.Error("http", attrs...)
				return nil
			}
			log.Info("http", attrs...)
			return nil
		}
	}
}
