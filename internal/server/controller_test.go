package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/patriotcart/savings-api/internal/affiliate"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/server/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	products   []models.LiveProduct
	err        error
	lastParams affiliate.SearchParams
}

func (s *stubSearcher) FetchLiveProducts(_ context.Context, params affiliate.SearchParams) ([]models.LiveProduct, error) {
	s.lastParams = params
	return s.products, s.err
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = middleware.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealth(t *testing.T) {
	h := NewController(nil, nil, nil, nil)
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	require.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestLiveProducts(t *testing.T) {
	searcher := &stubSearcher{
		products: []models.LiveProduct{
			{Name: "Flag", Store: "Amazon", Tag: models.TagAmericanMade},
		},
	}
	h := NewController(nil, nil, nil, searcher)
	c, rec := newTestContext(t, http.MethodGet,
		"/api/v1/products/live?query=flag&tag=AM&store=Amazon&limit=5", "")

	require.NoError(t, h.LiveProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, affiliate.SearchParams{
		Query:         "flag",
		Tag:           models.TagAmericanMade,
		Store:         "Amazon",
		LimitPerStore: 5,
	}, searcher.lastParams)

	var body struct {
		Products []models.LiveProduct `json:"products"`
		Count    int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Products, 1)
	assert.Equal(t, "Flag", body.Products[0].Name)
}

func TestLiveProductsUnknownTag(t *testing.T) {
	h := NewController(nil, nil, nil, &stubSearcher{})
	c, _ := newTestContext(t, http.MethodGet, "/api/v1/products/live?tag=XX", "")

	err := h.LiveProducts(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestLiveProductsSearcherError(t *testing.T) {
	searcher := &stubSearcher{err: models.ErrInvalidArgument}
	h := NewController(nil, nil, nil, searcher)
	c, _ := newTestContext(t, http.MethodGet, "/api/v1/products/live?limit=-1", "")

	err := h.LiveProducts(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: models.ErrNotFound, code: http.StatusNotFound},
		{name: "invalid argument", err: models.ErrInvalidArgument, code: http.StatusBadRequest},
		{name: "unknown", err: assert.AnError, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *echo.HTTPError
			require.ErrorAs(t, toHTTPError(tt.err), &httpErr)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestCreateProductValidation(t *testing.T) {
	h := NewController(nil, nil, nil, nil)

	// missing name never reaches the usecase
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/products", `{"price": 10}`)
	err := h.CreateProduct(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	// malformed URL rejected
	c, _ = newTestContext(t, http.MethodPost, "/api/v1/products",
		`{"name": "Widget", "image_url": "not a url"}`)
	err = h.CreateProduct(c)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
