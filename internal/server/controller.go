package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/patriotcart/savings-api/internal/affiliate"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/usecase"
)

// userIDHeader carries the caller identity; authentication itself happens
// upstream at the gateway.
const userIDHeader = "X-User-ID"

type Controller interface {
	Health(c echo.Context) error

	ListProducts(c echo.Context) error
	SearchProducts(c echo.Context) error
	LiveProducts(c echo.Context) error
	GetProduct(c echo.Context) error
	CreateProduct(c echo.Context) error
	UpdateProduct(c echo.Context) error
	DeleteProduct(c echo.Context) error

	AffiliateRedirect(c echo.Context) error
	TrackPurchase(c echo.Context) error

	ListSavings(c echo.Context) error
	GetSavings(c echo.Context) error
	CreateSavings(c echo.Context) error
	UpdateSavings(c echo.Context) error
	DeleteSavings(c echo.Context) error
	TotalSavings(c echo.Context) error
	ExportSavings(c echo.Context) error

	TrackEvent(c echo.Context) error
	AnalyticsSummary(c echo.Context) error
}

type controller struct {
	products  usecase.ProductUsecase
	savings   usecase.SavingsUsecase
	analytics usecase.AnalyticsUsecase
	live      affiliate.Searcher
}

func NewController(
	products usecase.ProductUsecase,
	savings usecase.SavingsUsecase,
	analytics usecase.AnalyticsUsecase,
	live affiliate.Searcher,
) Controller {
	return &controller{
		products:  products,
		savings:   savings,
		analytics: analytics,
		live:      live,
	}
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "savings-api",
	})
}

func userID(c echo.Context) string {
	return c.Request().Header.Get(userIDHeader)
}

// toHTTPError maps domain errors onto HTTP statuses; anything unrecognized
// stays a 500 so the error handler does not leak internals.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

type pagingQuery struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

func (q pagingQuery) paging() usecase.Paging {
	return usecase.Paging{Page: q.Page, Size: q.Size}
}
