package usecase

import (
	"context"
	"fmt"

	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/repo/mongodb"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Paging normalizes 1-based page/size query params into limit/skip.
type Paging struct {
	Page int
	Size int
}

func (p Paging) normalize() (limit, skip int64, page, size int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	size = p.Size
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return int64(size), int64(page-1) * int64(size), page, size
}

// PagedResult carries one page of items plus the bookkeeping the frontend
// renders pagination controls from.
type PagedResult[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalPages    int64
	TotalElements int64
}

func newPagedResult[T any](items []T, total int64, page, size int) *PagedResult[T] {
	totalPages := total / int64(size)
	if total%int64(size) != 0 {
		totalPages++
	}
	if items == nil {
		items = []T{}
	}
	return &PagedResult[T]{
		Items:         items,
		Page:          page,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: total,
	}
}

type ProductUsecase interface {
	List(ctx context.Context, paging Paging) (*PagedResult[models.Product], error)
	Search(ctx context.Context, filter models.ProductFilter, paging Paging) (*PagedResult[models.Product], error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type productUsecase struct {
	repo mongodb.ProductRepository
}

func NewProductUsecase(repo mongodb.ProductRepository) ProductUsecase {
	return &productUsecase{repo: repo}
}

func (uc *productUsecase) List(ctx context.Context, paging Paging) (*PagedResult[models.Product], error) {
	limit, skip, page, size := paging.normalize()
	products, total, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return newPagedResult(products, total, page, size), nil
}

func (uc *productUsecase) Search(ctx context.Context, filter models.ProductFilter, paging Paging) (*PagedResult[models.Product], error) {
	limit, skip, page, size := paging.normalize()
	products, total, err := uc.repo.Search(ctx, filter, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return newPagedResult(products, total, page, size), nil
}

func (uc *productUsecase) Get(ctx context.Context, id string) (*models.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *productUsecase) Create(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return fmt.Errorf("%w: product name is required", models.ErrInvalidArgument)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", models.ErrInvalidArgument)
	}
	if product.Tag != "" && !product.Tag.IsValid() {
		return fmt.Errorf("%w: unknown tag %q", models.ErrInvalidArgument, product.Tag)
	}
	return uc.repo.Create(ctx, product)
}

func (uc *productUsecase) Update(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", models.ErrInvalidArgument)
	}
	if product.Tag != "" && !product.Tag.IsValid() {
		return nil, fmt.Errorf("%w: unknown tag %q", models.ErrInvalidArgument, product.Tag)
	}
	return uc.repo.Update(ctx, id, product)
}

func (uc *productUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
