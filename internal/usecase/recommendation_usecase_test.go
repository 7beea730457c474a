package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type fakeProductRepo struct {
	mu sync.Mutex

	products   map[string]*domain.Product
	related    map[string]map[domain.RelationType][]domain.Product
	byCategory map[string][]domain.Product
	all        []domain.Product

	relatedErr   error
	relatedCalls int
	allCalls     int
	created      *domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:   make(map[string]*domain.Product),
		related:    make(map[string]map[domain.RelationType][]domain.Product),
		byCategory: make(map[string][]domain.Product),
	}
}

func (f *fakeProductRepo) GetByShopifyID(_ context.Context, shopifyID string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if product, ok := f.products[shopifyID]; ok {
		return product, nil
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) GetProducts(_ context.Context, limit int) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls++
	if len(f.all) > limit {
		return f.all[:limit], nil
	}
	return f.all, nil
}

func (f *fakeProductRepo) GetByCategory(_ context.Context, category string, limit int) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	products := f.byCategory[category]
	if len(products) > limit {
		return products[:limit], nil
	}
	return products, nil
}

func (f *fakeProductRepo) GetRelatedByShopifyID(_ context.Context, shopifyID string, relType domain.RelationType) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.relatedCalls++
	if f.relatedErr != nil {
		return nil, f.relatedErr
	}
	return f.related[shopifyID][relType], nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	created := *product
	created.ID = int64(len(f.products) + 1000)
	f.created = &created
	f.products[created.ShopifyID] = &created
	return &created, nil
}

func (f *fakeProductRepo) Update(context.Context, int64, *ProductUpdate) (*domain.Product, error) {
	panic("not used")
}

func (f *fakeProductRepo) Upsert(context.Context, *domain.Product) (*UpsertProductRes, error) {
	panic("not used")
}

func (f *fakeProductRepo) relatedCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.relatedCalls
}

type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeUserRepo) GetByShopifyID(_ context.Context, shopifyID string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if user, ok := f.users[shopifyID]; ok {
		return user, nil
	}
	return nil, e.ErrUserNotFound
}

type fakeCacheRepo struct {
	mu       sync.Mutex
	product  *domain.Product
	getCalls int
}

func (f *fakeCacheRepo) GetProduct(_ context.Context, _ string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	return f.product, nil
}

func (f *fakeCacheRepo) SetProducts(_ context.Context, _ []domain.Product) error { return nil }

func (f *fakeCacheRepo) DeleteProducts(_ context.Context, _ []string) error { return nil }

type fakeCatalog struct {
	product *CatalogProduct
	err     error
	calls   int
}

func (f *fakeCatalog) GetProductByID(_ context.Context, _ string) (*CatalogProduct, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

func (f *fakeCatalog) GetProducts(context.Context, int, int) (*CatalogPage, error) {
	panic("not used")
}

func product(id int64, shopifyID string, price int64) domain.Product {
	return domain.Product{
		ID:        id,
		ShopifyID: shopifyID,
		Title:     "product " + shopifyID,
		Price:     price,
		Category:  "widgets",
	}
}

func newEngine(products *fakeProductRepo, users *fakeUserRepo, cache *fakeCacheRepo, catalog *fakeCatalog) *RecommendationUseCase {
	if users == nil {
		users = &fakeUserRepo{users: map[string]*domain.User{}}
	}
	if cache == nil {
		cache = &fakeCacheRepo{}
	}
	if catalog == nil {
		catalog = &fakeCatalog{err: e.ErrCatalogProductNotFound}
	}
	return NewRecommendationUC(products, users, cache, catalog, "demo-shop", logger.NewSlogLogger())
}

func TestGetRecommendations_PurchaseHistory(t *testing.T) {
	products := newFakeProductRepo()
	products.related["p1"] = map[domain.RelationType][]domain.Product{
		domain.Both: {product(1, "a", 500), product(2, "b", 15000)},
	}

	users := &fakeUserRepo{users: map[string]*domain.User{
		"u1": {
			ShopifyID:       "u1",
			PurchaseHistory: []domain.HistoryEntry{{ProductID: "p1"}},
			BrowsedProducts: []domain.HistoryEntry{{ProductID: "ignored"}},
		},
	}}

	uc := newEngine(products, users, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("u1", "", domain.Both, 3, ""))
	require.NoError(t, err)

	items := res.Data.Recommendations
	require.Len(t, items, 2)
	require.Equal(t, "success", res.Status)

	require.Equal(t, "a", items[0].ID)
	require.Equal(t, domain.CrossSell, items[0].Type)
	require.Equal(t, "Based on your purchase history", items[0].Reason)

	require.Equal(t, "b", items[1].ID)
	require.Equal(t, domain.UpSell, items[1].Type)
	require.Equal(t, "Based on your purchase history", items[1].Reason)
}

func TestGetRecommendations_BrowsedFallback(t *testing.T) {
	products := newFakeProductRepo()
	products.related["seen"] = map[domain.RelationType][]domain.Product{
		domain.Both: {product(1, "a", 700)},
	}

	users := &fakeUserRepo{users: map[string]*domain.User{
		"u1": {
			ShopifyID:       "u1",
			BrowsedProducts: []domain.HistoryEntry{{ProductID: "seen"}},
		},
	}}

	uc := newEngine(products, users, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("u1", "", domain.Both, 3, ""))
	require.NoError(t, err)

	items := res.Data.Recommendations
	require.Len(t, items, 1)
	require.Equal(t, "Based on products you viewed", items[0].Reason)
}

func TestGetRecommendations_HistoryWindow(t *testing.T) {
	products := newFakeProductRepo()

	history := make([]domain.HistoryEntry, 0, 12)
	for i := 0; i < 12; i++ {
		history = append(history, domain.HistoryEntry{ProductID: fmt.Sprintf("p%d", i)})
	}

	users := &fakeUserRepo{users: map[string]*domain.User{
		"buyer":   {ShopifyID: "buyer", PurchaseHistory: history},
		"browser": {ShopifyID: "browser", BrowsedProducts: history[:7]},
	}}

	uc := newEngine(products, users, nil, nil)

	_, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("buyer", "", domain.Both, 3, ""))
	require.NoError(t, err)
	require.Equal(t, 10, products.relatedCallCount())

	products.mu.Lock()
	products.relatedCalls = 0
	products.mu.Unlock()

	_, err = uc.GetRecommendations(context.Background(), NewRecommendationReq("browser", "", domain.Both, 3, ""))
	require.NoError(t, err)
	require.Equal(t, 5, products.relatedCallCount())
}

func TestGetRecommendations_UnknownUserFallsThrough(t *testing.T) {
	products := newFakeProductRepo()
	products.all = []domain.Product{product(1, "a", 500)}

	uc := newEngine(products, &fakeUserRepo{users: map[string]*domain.User{}}, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("ghost", "", domain.Both, 3, ""))
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 1)
	require.Equal(t, "Popular item", res.Data.Recommendations[0].Reason)
}

func TestGetRecommendations_UserRepoErrorPropagates(t *testing.T) {
	products := newFakeProductRepo()
	uc := newEngine(products, &fakeUserRepo{err: fmt.Errorf("connection refused")}, nil, nil)

	_, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("u1", "", domain.Both, 3, ""))
	require.Error(t, err)
}

func TestGetRecommendations_RelatedErrorPropagatesFromUserStrategy(t *testing.T) {
	products := newFakeProductRepo()
	products.relatedErr = fmt.Errorf("db down")

	users := &fakeUserRepo{users: map[string]*domain.User{
		"u1": {ShopifyID: "u1", PurchaseHistory: []domain.HistoryEntry{{ProductID: "p1"}}},
	}}

	uc := newEngine(products, users, nil, nil)

	_, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("u1", "", domain.Both, 3, ""))
	require.Error(t, err)
}

func TestGetRecommendations_CascadeStopsWhenFull(t *testing.T) {
	products := newFakeProductRepo()
	products.related["p1"] = map[domain.RelationType][]domain.Product{
		domain.Both: {product(1, "a", 500), product(2, "b", 600), product(3, "c", 700)},
	}
	products.all = []domain.Product{product(9, "z", 100)}

	users := &fakeUserRepo{users: map[string]*domain.User{
		"u1": {ShopifyID: "u1", PurchaseHistory: []domain.HistoryEntry{{ProductID: "p1"}}},
	}}
	cache := &fakeCacheRepo{}

	uc := newEngine(products, users, cache, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("u1", "prod-x", domain.Both, 3, ""))
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 3)

	// На лимите каскад не трогает ни товарную, ни общую стратегию.
	require.Zero(t, cache.getCalls)
	require.Zero(t, products.allCalls)
}

func TestGetRecommendations_Deduplicates(t *testing.T) {
	products := newFakeProductRepo()
	same := product(1, "a", 500)
	products.related["p1"] = map[domain.RelationType][]domain.Product{domain.Both: {same}}
	products.related["p2"] = map[domain.RelationType][]domain.Product{domain.Both: {same}}

	users := &fakeUserRepo{users: map[string]*domain.User{
		"u1": {ShopifyID: "u1", PurchaseHistory: []domain.HistoryEntry{{ProductID: "p1"}, {ProductID: "p2"}}},
	}}

	uc := newEngine(products, users, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("u1", "", domain.Both, 5, ""))
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 1)
}

func TestGetRecommendations_EmptyEverything(t *testing.T) {
	uc := newEngine(newFakeProductRepo(), nil, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("", "", domain.Both, 3, ""))
	require.NoError(t, err)
	require.NotNil(t, res.Data.Recommendations)
	require.Empty(t, res.Data.Recommendations)
	require.Equal(t, "success", res.Status)
}

func TestGetCrossSell_CategoryPriceBand(t *testing.T) {
	products := newFakeProductRepo()
	source := product(1, "src", 10000)
	products.products["src"] = &source
	products.byCategory["widgets"] = []domain.Product{
		product(2, "low", 6900),  // 69% — ниже коридора
		product(3, "edge", 7000), // ровно 70%
		product(4, "top", 13000), // ровно 130%
		product(5, "high", 20000),
		product(6, "max", 30000),
	}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetCrossSellRecommendations(context.Background(), "src", 3)
	require.NoError(t, err)

	items := res.Data.Recommendations
	require.Len(t, items, 2)
	require.Equal(t, "edge", items[0].ID)
	require.Equal(t, "top", items[1].ID)
	for _, item := range items {
		require.Equal(t, domain.CrossSell, item.Type)
		require.Equal(t, "Frequently bought together", item.Reason)
	}
}

func TestGetCrossSell_ExcludesSource(t *testing.T) {
	products := newFakeProductRepo()
	source := product(1, "src", 10000)
	products.products["src"] = &source
	products.byCategory["widgets"] = []domain.Product{source, product(2, "other", 10000)}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetCrossSellRecommendations(context.Background(), "src", 3)
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 1)
	require.Equal(t, "other", res.Data.Recommendations[0].ID)
}

func TestGetUpSell_AscendingFromCategory(t *testing.T) {
	products := newFakeProductRepo()
	source := product(1, "src", 10000)
	products.products["src"] = &source
	products.byCategory["widgets"] = []domain.Product{
		product(2, "low", 6900),
		product(3, "near", 7000), // ниже порога 120%
		product(4, "min", 13000),
		product(5, "mid", 20000),
		product(6, "big", 30000),
	}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetUpSellRecommendations(context.Background(), "src", "", 3)
	require.NoError(t, err)

	items := res.Data.Recommendations
	require.Len(t, items, 3)
	require.Equal(t, "min", items[0].ID)
	require.Equal(t, "mid", items[1].ID)
	require.Equal(t, "big", items[2].ID)
	for _, item := range items {
		require.Equal(t, domain.UpSell, item.Type)
		require.Equal(t, "Upgrade option", item.Reason)
	}
}

func TestGetUpSell_ThresholdBoundary(t *testing.T) {
	products := newFakeProductRepo()
	source := product(1, "src", 10000)
	products.products["src"] = &source
	products.byCategory["widgets"] = []domain.Product{
		product(2, "at", 12000),    // ровно 120% — апгрейд
		product(3, "under", 11900), // 119% — нет
	}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetUpSellRecommendations(context.Background(), "src", "", 3)
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 1)
	require.Equal(t, "at", res.Data.Recommendations[0].ID)
}

func TestGetUpSell_PriceRangeFilter(t *testing.T) {
	products := newFakeProductRepo()
	source := product(1, "src", 5000)
	products.products["src"] = &source
	products.related["src"] = map[domain.RelationType][]domain.Product{
		domain.UpSell: {product(2, "a", 15000), product(3, "b", 25000), product(4, "c", 40000)},
	}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetUpSellRecommendations(context.Background(), "src", "100-300", 3)
	require.NoError(t, err)

	items := res.Data.Recommendations
	require.Len(t, items, 2)
	require.Equal(t, "a", items[0].ID)
	require.Equal(t, "b", items[1].ID)
}

func TestGetUpSell_MalformedPriceRangeIgnored(t *testing.T) {
	products := newFakeProductRepo()
	source := product(1, "src", 5000)
	products.products["src"] = &source
	products.related["src"] = map[domain.RelationType][]domain.Product{
		domain.UpSell: {product(2, "a", 15000), product(3, "b", 25000), product(4, "c", 40000)},
	}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetUpSellRecommendations(context.Background(), "src", "abc", 3)
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 3)
}

func TestGetRecommendations_PriceRangeSkippedForCrossSell(t *testing.T) {
	products := newFakeProductRepo()
	source := product(1, "src", 5000)
	products.products["src"] = &source
	products.related["src"] = map[domain.RelationType][]domain.Product{
		domain.CrossSell: {product(2, "a", 5000), product(3, "b", 5500), product(4, "c", 6000)},
	}

	uc := newEngine(products, nil, nil, nil)

	// Диапазон отсёк бы всех кандидатов, но для чистого cross-sell он не применяется.
	res, err := uc.GetRecommendations(context.Background(),
		NewRecommendationReq("", "src", domain.CrossSell, 3, "1000-2000"))
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 3)
}

func TestGeneral_PremiumSortedDescending(t *testing.T) {
	products := newFakeProductRepo()
	products.all = []domain.Product{
		product(1, "a", 15000),
		product(2, "b", 30000),
		product(3, "c", 20000),
		product(4, "d", 500),
	}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("", "", domain.UpSell, 3, ""))
	require.NoError(t, err)

	items := res.Data.Recommendations
	require.Len(t, items, 3)
	require.Equal(t, "b", items[0].ID)
	require.Equal(t, "c", items[1].ID)
	require.Equal(t, "a", items[2].ID)
	require.Equal(t, "Popular premium item", items[0].Reason)
}

func TestGeneral_BothClassifiesByTier(t *testing.T) {
	products := newFakeProductRepo()
	products.all = []domain.Product{product(1, "cheap", 500), product(2, "premium", 15000)}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("", "", domain.Both, 3, ""))
	require.NoError(t, err)

	items := res.Data.Recommendations
	require.Len(t, items, 2)

	byID := make(map[string]RecommendationItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	require.Equal(t, domain.CrossSell, byID["cheap"].Type)
	require.Equal(t, "Popular item", byID["cheap"].Reason)
	require.Equal(t, domain.UpSell, byID["premium"].Type)
	require.Equal(t, "Popular premium item", byID["premium"].Reason)
}

func TestGeneral_CrossSellShufflesCheapTier(t *testing.T) {
	products := newFakeProductRepo()
	products.all = []domain.Product{
		product(1, "a", 100),
		product(2, "b", 200),
		product(3, "c", 300),
		product(4, "d", 400),
	}

	uc := newEngine(products, nil, nil, nil)

	res, err := uc.GetRecommendations(context.Background(), NewRecommendationReq("", "", domain.CrossSell, 4, ""))
	require.NoError(t, err)

	// Порядок случайный: проверяем только состав.
	items := res.Data.Recommendations
	require.Len(t, items, 4)
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		seen[item.ID] = true
	}
	require.Equal(t, map[string]bool{"a": true, "b": true, "c": true, "d": true}, seen)
}

func TestResolveSource_LazyIngestFromCatalog(t *testing.T) {
	products := newFakeProductRepo()
	products.byCategory["Gadgets"] = []domain.Product{
		{ID: 7, ShopifyID: "55", Title: "gadget", Price: 5000, Category: "Gadgets"},
	}

	compareAt := "79.99"
	catalog := &fakeCatalog{product: &CatalogProduct{
		ID:       "99",
		Title:    "New Gadget",
		BodyHTML: "<p>shiny</p>",
		Variants: []CatalogVariant{
			{Price: "49.99", CompareAtPrice: &compareAt, InventoryQuantity: 7},
		},
		Images:      []CatalogImage{{Src: "https://cdn.example/img.png"}},
		ProductType: "Gadgets",
		Tags:        "new, sale",
		Vendor:      "ACME",
		Handle:      "new-gadget",
	}}

	uc := newEngine(products, nil, nil, catalog)

	res, err := uc.GetCrossSellRecommendations(context.Background(), "99", 3)
	require.NoError(t, err)
	require.Equal(t, 1, catalog.calls)

	created := products.created
	require.NotNil(t, created)
	require.Equal(t, "99", created.ShopifyID)
	require.Equal(t, int64(4999), created.Price)
	require.NotNil(t, created.CompareAtPrice)
	require.Equal(t, int64(7999), *created.CompareAtPrice)
	require.Equal(t, "https://demo-shop.myshopify.com/products/new-gadget", created.ProductURL)
	require.Equal(t, []string{"new", "sale"}, created.Tags)
	require.Equal(t, "Gadgets", created.Category)

	// Свежезагруженный товар сразу служит источником категорийного добора.
	require.Len(t, res.Data.Recommendations, 1)
	require.Equal(t, "55", res.Data.Recommendations[0].ID)
}

func TestProductBased_SourceUnresolvedReturnsEmpty(t *testing.T) {
	uc := newEngine(newFakeProductRepo(), nil, nil, nil)

	res, err := uc.GetCrossSellRecommendations(context.Background(), "missing", 3)
	require.NoError(t, err)
	require.Empty(t, res.Data.Recommendations)
}

func TestProductBased_CacheHitSkipsStorage(t *testing.T) {
	products := newFakeProductRepo()
	cached := product(1, "src", 10000)
	cache := &fakeCacheRepo{product: &cached}
	products.byCategory["widgets"] = []domain.Product{product(2, "other", 10000)}

	uc := newEngine(products, nil, cache, nil)

	res, err := uc.GetCrossSellRecommendations(context.Background(), "src", 3)
	require.NoError(t, err)
	require.Len(t, res.Data.Recommendations, 1)
}
