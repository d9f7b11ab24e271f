package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per request.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler pick the status before we read it
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			evt := log.Info()
			switch {
			case res.Status >= 500:
				evt = log.Error().Err(err)
			case res.Status >= 400:
				evt = log.Warn()
			}

			if p := Principal(c); p != nil {
				evt = evt.Str("role", string(p.Role))
			}
			evt.
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}
