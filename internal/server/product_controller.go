package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/patriotcart/savings-api/internal/affiliate"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/usecase"
)

type productPageResponse struct {
	Products      []models.Product `json:"products"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	TotalPages    int64            `json:"total_pages"`
	TotalElements int64            `json:"total_elements"`
}

func newProductPageResponse(result *usecase.PagedResult[models.Product]) productPageResponse {
	return productPageResponse{
		Products:      result.Items,
		Page:          result.Page,
		Size:          result.Size,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
	}
}

func (h *controller) ListProducts(c echo.Context) error {
	var query pagingQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	result, err := h.products.List(c.Request().Context(), query.paging())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, newProductPageResponse(result))
}

type searchProductsQuery struct {
	pagingQuery
	Name  string `query:"name"`
	Store string `query:"store"`
	Tag   string `query:"tag"`
}

func (h *controller) SearchProducts(c echo.Context) error {
	var query searchProductsQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if query.Tag != "" && !models.Tag(query.Tag).IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown tag "+query.Tag)
	}

	filter := models.ProductFilter{
		Name:  query.Name,
		Store: query.Store,
		Tag:   models.Tag(query.Tag),
	}
	result, err := h.products.Search(c.Request().Context(), filter, query.paging())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, newProductPageResponse(result))
}

type liveProductsQuery struct {
	Query string `query:"query"`
	Tag   string `query:"tag"`
	Store string `query:"store"`
	Limit int    `query:"limit"`
}

// LiveProducts serves the live affiliate feed; this endpoint is the only
// consumer of the aggregation subsystem.
func (h *controller) LiveProducts(c echo.Context) error {
	var query liveProductsQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if query.Tag != "" && !models.Tag(query.Tag).IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown tag "+query.Tag)
	}

	products, err := h.live.FetchLiveProducts(c.Request().Context(), affiliate.SearchParams{
		Query:         query.Query,
		Tag:           models.Tag(query.Tag),
		Store:         query.Store,
		LimitPerStore: query.Limit,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

func (h *controller) GetProduct(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, product)
}

type productRequest struct {
	Name         string  `json:"name" validate:"required"`
	Brand        string  `json:"brand"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" validate:"gte=0"`
	Store        string  `json:"store"`
	Category     string  `json:"category"`
	AffiliateURL string  `json:"affiliate_url" validate:"omitempty,url"`
	ImageURL     string  `json:"image_url" validate:"omitempty,url"`
	Tag          string  `json:"tag"`
}

func (r productRequest) toModel(actor string) *models.Product {
	return &models.Product{
		Name:         r.Name,
		Brand:        r.Brand,
		Description:  r.Description,
		Price:        r.Price,
		Store:        r.Store,
		Category:     r.Category,
		AffiliateURL: r.AffiliateURL,
		ImageURL:     r.ImageURL,
		Tag:          models.Tag(r.Tag),
		CreatedBy:    actor,
		UpdatedBy:    actor,
	}
}

func (h *controller) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product := req.toModel(userID(c))
	if err := h.products.Create(c.Request().Context(), product); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *controller) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.products.Update(c.Request().Context(), c.Param("id"), req.toModel(userID(c)))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *controller) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"detail": "product " + id + " deleted successfully",
	})
}
