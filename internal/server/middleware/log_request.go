package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// LogRequestConfig configures request logging.
type LogRequestConfig struct {
	Logger  Logger
	Enabled func(c echo.Context) bool
	// KeyAndValues appends request-scoped fields to every log line.
	KeyAndValues func(c echo.Context) []interface{}
}

// LogRequest logs one line per request with method, path, status, latency
// and the request id.
func LogRequest(config LogRequestConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("Logger is required to use LogRequest")
	}
	if config.Enabled == nil {
		config.Enabled = func(echo.Context) bool { return true }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !config.Enabled(c) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			args := []interface{}{
				"method", req.Method,
				"uri", req.RequestURI,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"request_id", GetRequestID(c),
			}
			if config.KeyAndValues != nil {
				args = append(args, config.KeyAndValues(c)...)
			}

			if c.Response().Status >= 500 {
				config.Logger.Errorw("http request", args...)
			} else {
				config.Logger.Infow("http request", args...)
			}
			return err
		}
	}
}
