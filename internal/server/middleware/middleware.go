package middleware

import "github.com/labstack/echo/v4"

// Skipper decides per-request whether a middleware should run.
type Skipper func(c echo.Context) bool

// DefaultSkipper skips nothing.
func DefaultSkipper(echo.Context) bool {
	return false
}

// Logger is the minimal leveled sink the middlewares need; the ct-go
// logger satisfies it.
type Logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}
