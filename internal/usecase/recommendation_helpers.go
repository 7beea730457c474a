package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// dedupeProducts убирает дубликаты по внутреннему id, сохраняя первое вхождение
// и исходный порядок.
func dedupeProducts(products []domain.Product) []domain.Product {
	seen := make(map[int64]struct{}, len(products))
	unique := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if _, ok := seen[product.ID]; ok {
			continue
		}
		seen[product.ID] = struct{}{}
		unique = append(unique, product)
	}

	return unique
}

// parsePriceRange разбирает строку "min-max" в целых единицах валюты и
// возвращает границы в центах. Неразборчивый диапазон — не ошибка: ok=false,
// фильтр просто не применяется.
func parsePriceRange(s string) (int64, int64, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	minPrice, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, false
	}

	maxPrice, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, false
	}

	return minPrice * 100, maxPrice * 100, true
}

func filterByPrice(products []domain.Product, minPrice, maxPrice int64) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if product.Price >= minPrice && product.Price <= maxPrice {
			filtered = append(filtered, product)
		}
	}

	return filtered
}

// catalogToProduct преобразует сырую запись внешнего каталога во внутренний товар.
// Канонические цена и изображение берутся из первых variant/image; их отсутствие
// даёт цену 0 и пустой URL. Цена каталога — десятичная строка в мажорных
// единицах, хранится она в центах.
func catalogToProduct(raw *CatalogProduct, shopName string) *domain.Product {
	var (
		price          int64
		compareAtPrice *int64
		inventory      int64
	)
	if len(raw.Variants) > 0 {
		variant := raw.Variants[0]
		price = parseCatalogPrice(variant.Price)
		if variant.CompareAtPrice != nil {
			cmp := parseCatalogPrice(*variant.CompareAtPrice)
			compareAtPrice = &cmp
		}
		inventory = variant.InventoryQuantity
	}

	var imageURL string
	if len(raw.Images) > 0 {
		imageURL = raw.Images[0].Src
	}

	var tags []string
	if raw.Tags != "" {
		for _, tag := range strings.Split(raw.Tags, ",") {
			tags = append(tags, strings.TrimSpace(tag))
		}
	}

	return &domain.Product{
		ShopifyID:      raw.ID.String(),
		Title:          raw.Title,
		Description:    raw.BodyHTML,
		Price:          price,
		CompareAtPrice: compareAtPrice,
		ImageURL:       imageURL,
		ProductURL:     storefrontURL(shopName, raw.Handle),
		Category:       raw.ProductType,
		Tags:           tags,
		Vendor:         raw.Vendor,
		Inventory:      inventory,
	}
}

// parseCatalogPrice переводит десятичную строку мажорных единиц в центы.
// Пустая или некорректная строка трактуется как 0.
func parseCatalogPrice(s string) int64 {
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func storefrontURL(shopName, handle string) string {
	return fmt.Sprintf("https://%s.myshopify.com/products/%s", shopName, handle)
}

// catalogItem форматирует запись каталога для публичного API.
func catalogItem(raw *CatalogProduct, shopName string) CatalogItem {
	var price int64
	if len(raw.Variants) > 0 {
		price = parseCatalogPrice(raw.Variants[0].Price)
	}

	var imageURL string
	if len(raw.Images) > 0 {
		imageURL = raw.Images[0].Src
	}

	return CatalogItem{
		ID:         raw.ID.String(),
		Title:      raw.Title,
		Price:      price,
		ImageURL:   imageURL,
		ProductURL: storefrontURL(shopName, raw.Handle),
	}
}
