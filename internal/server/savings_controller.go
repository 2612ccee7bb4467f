package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/usecase"
)

type savingsPageResponse struct {
	Savings       []models.SavingsEntry `json:"savings"`
	Page          int                   `json:"page"`
	Size          int                   `json:"size"`
	TotalPages    int64                 `json:"total_pages"`
	TotalElements int64                 `json:"total_elements"`
}

func (h *controller) ListSavings(c echo.Context) error {
	var query pagingQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	result, err := h.savings.List(c.Request().Context(), query.paging())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, savingsPageResponse{
		Savings:       result.Items,
		Page:          result.Page,
		Size:          result.Size,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
	})
}

func (h *controller) GetSavings(c echo.Context) error {
	entry, err := h.savings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

type savingsRequest struct {
	ProductID      string  `json:"product_id" validate:"required"`
	RegularPrice   float64 `json:"regular_price" validate:"required,gt=0"`
	AffiliatePrice float64 `json:"affiliate_price" validate:"required,gt=0"`
}

func (h *controller) CreateSavings(c echo.Context) error {
	var req savingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.savings.Create(c.Request().Context(), usecase.CreateSavingsParams{
		ProductID:      req.ProductID,
		RegularPrice:   req.RegularPrice,
		AffiliatePrice: req.AffiliatePrice,
		UserID:         userID(c),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *controller) UpdateSavings(c echo.Context) error {
	var req savingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.savings.Update(c.Request().Context(), c.Param("id"), usecase.CreateSavingsParams{
		ProductID:      req.ProductID,
		RegularPrice:   req.RegularPrice,
		AffiliatePrice: req.AffiliatePrice,
		UserID:         userID(c),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *controller) DeleteSavings(c echo.Context) error {
	id := c.Param("id")
	if err := h.savings.Delete(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"detail": "savings entry " + id + " deleted successfully",
	})
}

func (h *controller) TotalSavings(c echo.Context) error {
	total, err := h.savings.Total(c.Request().Context(), userID(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]float64{
		"total_savings": total,
	})
}

func (h *controller) ExportSavings(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="savings.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	return h.savings.ExportCSV(c.Request().Context(), userID(c), c.Response())
}

type trackPurchaseRequest struct {
	RegularPrice   float64 `json:"regular_price" validate:"required,gt=0"`
	AffiliatePrice float64 `json:"affiliate_price" validate:"required,gt=0"`
	OrderID        string  `json:"order_id"`
}

// TrackPurchase records a confirmed affiliate purchase: it creates the
// savings entry and emits a savings_add analytics event.
func (h *controller) TrackPurchase(c echo.Context) error {
	var req trackPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.savings.TrackPurchase(c.Request().Context(), usecase.TrackPurchaseParams{
		ProductID:      c.Param("id"),
		UserID:         userID(c),
		RegularPrice:   req.RegularPrice,
		AffiliatePrice: req.AffiliatePrice,
		OrderID:        req.OrderID,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"detail":         "purchase tracked successfully",
		"savings_id":     entry.ID.Hex(),
		"savings_amount": entry.Savings,
	})
}
