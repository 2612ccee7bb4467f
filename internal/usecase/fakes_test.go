package usecase

import (
	"context"

	"github.com/patriotcart/savings-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductRepo struct {
	products map[string]*models.Product
	created  []*models.Product
	err      error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*models.Product)}
}

func (f *fakeProductRepo) add(product *models.Product) string {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	f.products[product.ID.Hex()] = product
	return product.ID.Hex()
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	if f.err != nil {
		return f.err
	}
	f.add(product)
	f.created = append(f.created, product)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	product, ok := f.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id string, product *models.Product) (*models.Product, error) {
	if _, ok := f.products[id]; !ok {
		return nil, models.ErrNotFound
	}
	f.products[id] = product
	return product, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, limit, skip int64) ([]models.Product, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(f.products)), nil
}

func (f *fakeProductRepo) Search(_ context.Context, _ models.ProductFilter, limit, skip int64) ([]models.Product, int64, error) {
	return f.List(context.Background(), limit, skip)
}

type fakeSavingsRepo struct {
	entries map[string]*models.SavingsEntry
	byUser  []models.SavingsEntry
	total   float64
	err     error
}

func newFakeSavingsRepo() *fakeSavingsRepo {
	return &fakeSavingsRepo{entries: make(map[string]*models.SavingsEntry)}
}

func (f *fakeSavingsRepo) Create(_ context.Context, entry *models.SavingsEntry) error {
	if f.err != nil {
		return f.err
	}
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	f.entries[entry.ID.Hex()] = entry
	return nil
}

func (f *fakeSavingsRepo) GetByID(_ context.Context, id string) (*models.SavingsEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return entry, nil
}

func (f *fakeSavingsRepo) Update(_ context.Context, id string, entry *models.SavingsEntry) (*models.SavingsEntry, error) {
	if _, ok := f.entries[id]; !ok {
		return nil, models.ErrNotFound
	}
	f.entries[id] = entry
	return entry, nil
}

func (f *fakeSavingsRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeSavingsRepo) List(_ context.Context, limit, skip int64) ([]models.SavingsEntry, int64, error) {
	out := make([]models.SavingsEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, *e)
	}
	return out, int64(len(f.entries)), nil
}

func (f *fakeSavingsRepo) ListByUser(_ context.Context, _ string) ([]models.SavingsEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser, nil
}

func (f *fakeSavingsRepo) TotalByUser(_ context.Context, _ string) (float64, error) {
	return f.total, f.err
}

type fakeAnalyticsRepo struct {
	inserted []*models.AnalyticsEvent
	counts   []models.EventTypeCount
	recent   []models.AnalyticsEvent
	total    int64
	err      error
}

func (f *fakeAnalyticsRepo) Insert(_ context.Context, event *models.AnalyticsEvent) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, event)
	return nil
}

func (f *fakeAnalyticsRepo) CountByUser(_ context.Context, _ string) (int64, error) {
	return f.total, f.err
}

func (f *fakeAnalyticsRepo) CountsByType(_ context.Context, _ string) ([]models.EventTypeCount, error) {
	return f.counts, f.err
}

func (f *fakeAnalyticsRepo) RecentByUser(_ context.Context, _ string, _ int64) ([]models.AnalyticsEvent, error) {
	return f.recent, f.err
}

type fakePublisher struct {
	published []*models.AnalyticsEvent
}

func (f *fakePublisher) Publish(_ context.Context, event *models.AnalyticsEvent) {
	f.published = append(f.published, event)
}

func (f *fakePublisher) Close() error { return nil }
