package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGenerated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(XRequestID))
}

func TestRequestIDFromHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(XRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", seen)
	assert.Equal(t, "req-123", rec.Header().Get(XRequestID))
}

func TestRequestIDFromCorrelationHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(XCorrelationID, "corr-456")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		assert.Equal(t, "corr-456", GetRequestIDFromContext(c.Request().Context()))
		return nil
	})

	require.NoError(t, handler(c))
}

func TestInjectRequestID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	InjectRequestID(c, "req-789")
	assert.Equal(t, "req-789", GetRequestIDFromEchoContext(c))
	assert.Equal(t, "req-789", GetRequestIDFromContext(c.Request().Context()))
}
