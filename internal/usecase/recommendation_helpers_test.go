package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/internal/domain"
)

func TestDedupeProducts(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "first"},
		{ID: 2},
		{ID: 1, Title: "duplicate"},
		{ID: 3},
		{ID: 2},
	}

	unique := dedupeProducts(products)

	require.Len(t, unique, 3)
	require.Equal(t, int64(1), unique[0].ID)
	require.Equal(t, "first", unique[0].Title)
	require.Equal(t, int64(2), unique[1].ID)
	require.Equal(t, int64(3), unique[2].ID)
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		in       string
		min, max int64
		ok       bool
	}{
		{"100-300", 10000, 30000, true},
		{" 50 - 70 ", 5000, 7000, true},
		{"0-1", 0, 100, true},
		{"100", 0, 0, false},
		{"abc", 0, 0, false},
		{"10-abc", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		minPrice, maxPrice, ok := parsePriceRange(tt.in)
		require.Equal(t, tt.ok, ok, "input %q", tt.in)
		require.Equal(t, tt.min, minPrice, "input %q", tt.in)
		require.Equal(t, tt.max, maxPrice, "input %q", tt.in)
	}
}

func TestFilterByPrice_BoundsInclusive(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Price: 4999},
		{ID: 2, Price: 5000},
		{ID: 3, Price: 7000},
		{ID: 4, Price: 7001},
	}

	filtered := filterByPrice(products, 5000, 7000)

	require.Len(t, filtered, 2)
	require.Equal(t, int64(2), filtered[0].ID)
	require.Equal(t, int64(3), filtered[1].ID)
}

func TestCatalogToProduct(t *testing.T) {
	compareAt := "79.99"
	raw := &CatalogProduct{
		ID:       "632910392",
		Title:    "IPod Nano",
		BodyHTML: "<p>compact player</p>",
		Variants: []CatalogVariant{
			{Price: "49.99", CompareAtPrice: &compareAt, InventoryQuantity: 12},
			{Price: "99.99"},
		},
		Images:      []CatalogImage{{Src: "https://cdn.example/first.png"}, {Src: "https://cdn.example/second.png"}},
		ProductType: "Electronics",
		Tags:        "audio, portable,sale",
		Vendor:      "Apple",
		Handle:      "ipod-nano",
	}

	product := catalogToProduct(raw, "demo-shop")

	require.Equal(t, "632910392", product.ShopifyID)
	require.Equal(t, "IPod Nano", product.Title)
	require.Equal(t, int64(4999), product.Price)
	require.NotNil(t, product.CompareAtPrice)
	require.Equal(t, int64(7999), *product.CompareAtPrice)
	require.Equal(t, int64(12), product.Inventory)
	require.Equal(t, "https://cdn.example/first.png", product.ImageURL)
	require.Equal(t, "https://demo-shop.myshopify.com/products/ipod-nano", product.ProductURL)
	require.Equal(t, "Electronics", product.Category)
	require.Equal(t, []string{"audio", "portable", "sale"}, product.Tags)
	require.Equal(t, "Apple", product.Vendor)
}

func TestCatalogToProduct_NoVariantsNoImages(t *testing.T) {
	product := catalogToProduct(&CatalogProduct{ID: "1", Title: "bare"}, "demo-shop")

	require.Zero(t, product.Price)
	require.Nil(t, product.CompareAtPrice)
	require.Empty(t, product.ImageURL)
	require.Nil(t, product.Tags)
}

func TestParseCatalogPrice(t *testing.T) {
	require.Equal(t, int64(1999), parseCatalogPrice("19.99"))
	require.Equal(t, int64(500), parseCatalogPrice("5"))
	require.Equal(t, int64(0), parseCatalogPrice(""))
	require.Equal(t, int64(0), parseCatalogPrice("not-a-price"))
}

func TestCatalogItem(t *testing.T) {
	raw := &CatalogProduct{
		ID:       "42",
		Title:    "Widget",
		Variants: []CatalogVariant{{Price: "10.00"}},
		Images:   []CatalogImage{{Src: "https://cdn.example/widget.png"}},
		Handle:   "widget",
	}

	item := catalogItem(raw, "demo-shop")

	require.Equal(t, "42", item.ID)
	require.Equal(t, int64(1000), item.Price)
	require.Equal(t, "https://cdn.example/widget.png", item.ImageURL)
	require.Equal(t, "https://demo-shop.myshopify.com/products/widget", item.ProductURL)
}
