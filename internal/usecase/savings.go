package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/patriotcart/savings-api/internal/models"
	"github.com/patriotcart/savings-api/internal/repo/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateSavingsParams carries a new savings entry. Savings is derived from
// the price delta when left at zero.
type CreateSavingsParams struct {
	ProductID      string
	RegularPrice   float64
	AffiliatePrice float64
	UserID         string
}

// TrackPurchaseParams records a confirmed purchase through an affiliate
// link.
type TrackPurchaseParams struct {
	ProductID      string
	UserID         string
	RegularPrice   float64
	AffiliatePrice float64
	OrderID        string
}

type SavingsUsecase interface {
	Create(ctx context.Context, params CreateSavingsParams) (*models.SavingsEntry, error)
	Get(ctx context.Context, id string) (*models.SavingsEntry, error)
	Update(ctx context.Context, id string, params CreateSavingsParams) (*models.SavingsEntry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, paging Paging) (*PagedResult[models.SavingsEntry], error)
	Total(ctx context.Context, userID string) (float64, error)
	ExportCSV(ctx context.Context, userID string, w io.Writer) error
	TrackPurchase(ctx context.Context, params TrackPurchaseParams) (*models.SavingsEntry, error)
}

type savingsUsecase struct {
	repo        mongodb.SavingsRepository
	productRepo mongodb.ProductRepository
	analytics   AnalyticsUsecase
}

func NewSavingsUsecase(
	repo mongodb.SavingsRepository,
	productRepo mongodb.ProductRepository,
	analytics AnalyticsUsecase,
) SavingsUsecase {
	return &savingsUsecase{
		repo:        repo,
		productRepo: productRepo,
		analytics:   analytics,
	}
}

func validatePrices(regular, affiliate float64) error {
	if regular <= 0 || affiliate <= 0 {
		return fmt.Errorf("%w: regular price and affiliate price are required", models.ErrInvalidArgument)
	}
	if affiliate > regular {
		return fmt.Errorf("%w: affiliate price cannot be greater than regular price", models.ErrInvalidArgument)
	}
	return nil
}

func (uc *savingsUsecase) Create(ctx context.Context, params CreateSavingsParams) (*models.SavingsEntry, error) {
	if err := validatePrices(params.RegularPrice, params.AffiliatePrice); err != nil {
		return nil, err
	}

	productOID, err := primitive.ObjectIDFromHex(params.ProductID)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if _, err := uc.productRepo.GetByID(ctx, params.ProductID); err != nil {
		return nil, err
	}

	entry := &models.SavingsEntry{
		ProductID:      productOID,
		RegularPrice:   params.RegularPrice,
		AffiliatePrice: params.AffiliatePrice,
		Savings:        params.RegularPrice - params.AffiliatePrice,
		CreatedBy:      params.UserID,
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *savingsUsecase) Get(ctx context.Context, id string) (*models.SavingsEntry, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *savingsUsecase) Update(ctx context.Context, id string, params CreateSavingsParams) (*models.SavingsEntry, error) {
	if err := validatePrices(params.RegularPrice, params.AffiliatePrice); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := &models.SavingsEntry{
		ProductID:      current.ProductID,
		RegularPrice:   params.RegularPrice,
		AffiliatePrice: params.AffiliatePrice,
		Savings:        params.RegularPrice - params.AffiliatePrice,
		UpdatedBy:      params.UserID,
	}
	if params.ProductID != "" {
		oid, err := primitive.ObjectIDFromHex(params.ProductID)
		if err != nil {
			return nil, models.ErrNotFound
		}
		entry.ProductID = oid
	}
	return uc.repo.Update(ctx, id, entry)
}

func (uc *savingsUsecase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *savingsUsecase) List(ctx context.Context, paging Paging) (*PagedResult[models.SavingsEntry], error) {
	limit, skip, page, size := paging.normalize()
	entries, total, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("list savings entries: %w", err)
	}
	return newPagedResult(entries, total, page, size), nil
}

func (uc *savingsUsecase) Total(ctx context.Context, userID string) (float64, error) {
	return uc.repo.TotalByUser(ctx, userID)
}

// ExportCSV streams the user's savings history as a CSV document. Product
// names are resolved per entry; a missing product degrades to its raw id so
// one deleted product never breaks the export.
func (uc *savingsUsecase) ExportCSV(ctx context.Context, userID string, w io.Writer) error {
	entries, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("export savings: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Product", "Regular Price", "Affiliate Price", "Savings", "Date Saved"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, entry := range entries {
		name := entry.ProductID.Hex()
		product, err := uc.productRepo.GetByID(ctx, entry.ProductID.Hex())
		if err == nil {
			name = product.Name
		} else {
			log.Warnw(ctx, "product missing for savings export",
				"product_id", entry.ProductID.Hex(), "error", err)
		}

		record := []string{
			name,
			strconv.FormatFloat(entry.RegularPrice, 'f', 2, 64),
			strconv.FormatFloat(entry.AffiliatePrice, 'f', 2, 64),
			strconv.FormatFloat(entry.Savings, 'f', 2, 64),
			entry.DateSaved.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (uc *savingsUsecase) TrackPurchase(ctx context.Context, params TrackPurchaseParams) (*models.SavingsEntry, error) {
	entry, err := uc.Create(ctx, CreateSavingsParams{
		ProductID:      params.ProductID,
		RegularPrice:   params.RegularPrice,
		AffiliatePrice: params.AffiliatePrice,
		UserID:         params.UserID,
	})
	if err != nil {
		return nil, err
	}

	trackErr := uc.analytics.Track(ctx, TrackEventParams{
		UserID:    params.UserID,
		EventType: models.EventSavingsAdd,
		ProductID: params.ProductID,
		Metadata: map[string]any{
			"order_id":        params.OrderID,
			"savings":         entry.Savings,
			"regular_price":   params.RegularPrice,
			"affiliate_price": params.AffiliatePrice,
		},
	})
	if trackErr != nil {
		// the savings entry is already recorded, analytics is best-effort
		log.Errorw(ctx, "track purchase event", "error", trackErr)
	}
	return entry, nil
}
