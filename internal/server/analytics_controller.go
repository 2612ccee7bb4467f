package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/usecase"
)

// AffiliateRedirect sends the user to the product's affiliate link and
// records the click.
func (h *controller) AffiliateRedirect(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.products.Get(ctx, c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	if product.AffiliateURL == "" {
		return echo.NewHTTPError(http.StatusNotFound, "this product does not have an affiliate link")
	}

	if err := h.analytics.Track(ctx, usecase.TrackEventParams{
		UserID:    userID(c),
		EventType: models.EventStoreClick,
		ProductID: product.ID.Hex(),
		Metadata: map[string]any{
			"store":    product.Store,
			"category": product.Category,
			"tag":      product.Tag,
			"price":    product.Price,
		},
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}); err != nil {
		return toHTTPError(err)
	}

	return c.Redirect(http.StatusFound, product.AffiliateURL)
}

type trackEventRequest struct {
	EventType string         `json:"event_type" validate:"required"`
	ProductID string         `json:"product_id"`
	Metadata  map[string]any `json:"metadata"`
}

func (h *controller) TrackEvent(c echo.Context) error {
	var req trackEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.analytics.Track(c.Request().Context(), usecase.TrackEventParams{
		UserID:    userID(c),
		EventType: models.EventType(req.EventType),
		ProductID: req.ProductID,
		Metadata:  req.Metadata,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"detail": "event tracked successfully",
	})
}

func (h *controller) AnalyticsSummary(c echo.Context) error {
	summary, err := h.analytics.Summary(c.Request().Context(), userID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
