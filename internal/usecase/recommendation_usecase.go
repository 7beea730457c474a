package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

const (
	// Граница ценовых ярусов: от 10000 центов ($100) товар считается "премиальным".
	priceTierThreshold = 10000

	defaultLimit      = 3
	historyLimit      = 10 // покупки
	browsedLimit      = 5  // просмотры
	relatedFanOut     = 8  // лимит одновременных запросов связанных товаров
	categoryPoolSize  = 20
	generalPoolSize   = 30
	cacheBackfillTime = 500 * time.Millisecond
)

const (
	reasonPurchaseHistory = "Based on your purchase history"
	reasonBrowsedProducts = "Based on products you viewed"
	reasonCrossSell       = "Frequently bought together"
	reasonUpSell          = "Upgrade option"
	reasonAlsoBought      = "Customers also bought"
	reasonPopular         = "Popular item"
	reasonPopularPremium  = "Popular premium item"
)

// RecommendationUseCase реализует движок рекомендаций: каскад из трёх стратегий
// (по пользователю, по товару, по общей популярности) с дедупликацией и
// ограничением размера выдачи.
type RecommendationUseCase struct {
	productRepo ProductRepository
	userRepo    UserRepository
	cacheRepo   CacheRepository
	catalog     CatalogInfra
	shopName    string
	logger      logger.Logger
}

func NewRecommendationUC(
	productRepo ProductRepository,
	userRepo UserRepository,
	cacheRepo CacheRepository,
	catalog CatalogInfra,
	shopName string,
	logger logger.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		cacheRepo:   cacheRepo,
		catalog:     catalog,
		shopName:    shopName,
		logger:      logger,
	}
}

// GetRecommendations возвращает до req.Limit рекомендаций, заполняя список каскадом:
// сначала стратегия по пользователю, затем по товару, затем по популярности.
// Каждая следующая стратегия вызывается только на остаток и ничего не вытесняет.
// Пустой результат — нормальный исход, не ошибка.
func (r *RecommendationUseCase) GetRecommendations(ctx context.Context, req *RecommendationReq) (*RecommendationRes, error) {
	const op = "RecommendationUseCase.GetRecommendations"

	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	relType := req.Type
	if relType == "" {
		relType = domain.Both
	}

	items := make([]RecommendationItem, 0, limit)

	if req.UserID != "" {
		user, err := r.userRepo.GetByShopifyID(ctx, req.UserID)
		switch {
		case errors.Is(err, e.ErrUserNotFound):
			// неизвестный пользователь — пропускаем стратегию
		case err != nil:
			return nil, e.Wrap(op, err)
		default:
			userItems, err := r.userBased(ctx, user, relType, limit)
			if err != nil {
				return nil, e.Wrap(op, err)
			}
			items = append(items, userItems...)
		}
	}

	if req.ProductID != "" && len(items) < limit {
		items = append(items, r.productBased(ctx, req.ProductID, relType, limit-len(items), req.PriceRange)...)
	}

	if len(items) < limit {
		items = append(items, r.general(ctx, relType, limit-len(items))...)
	}

	return NewRecommendationRes(items), nil
}

// GetCrossSellRecommendations возвращает рекомендации строго типа cross-sell для товара.
func (r *RecommendationUseCase) GetCrossSellRecommendations(ctx context.Context, productID string, limit int) (*RecommendationRes, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	items := r.productBased(ctx, productID, domain.CrossSell, limit, "")

	return NewRecommendationRes(items), nil
}

// GetUpSellRecommendations возвращает рекомендации строго типа up-sell для товара,
// опционально отфильтрованные ценовым диапазоном "min-max" (целые единицы валюты).
func (r *RecommendationUseCase) GetUpSellRecommendations(ctx context.Context, productID, priceRange string, limit int) (*RecommendationRes, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	items := r.productBased(ctx, productID, domain.UpSell, limit, priceRange)

	return NewRecommendationRes(items), nil
}

// userBased строит рекомендации по истории пользователя.
// История покупок имеет приоритет; просмотры используются только если покупок нет.
func (r *RecommendationUseCase) userBased(ctx context.Context, user *domain.User, relType domain.RelationType, limit int) ([]RecommendationItem, error) {
	const op = "RecommendationUseCase.userBased"

	source := user.PurchaseHistory
	take := historyLimit
	reason := reasonPurchaseHistory
	if len(source) == 0 {
		source = user.BrowsedProducts
		take = browsedLimit
		reason = reasonBrowsedProducts
	}

	if len(source) == 0 {
		return nil, nil
	}

	if len(source) > take {
		source = source[:take]
	}

	ids := make([]string, 0, len(source))
	for _, entry := range source {
		ids = append(ids, entry.ProductID)
	}

	related, err := r.relatedForEach(ctx, ids, relType)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	unique := dedupeProducts(related)
	if len(unique) > limit {
		unique = unique[:limit]
	}

	items := make([]RecommendationItem, 0, len(unique))
	for _, product := range unique {
		itemType := relType
		if relType == domain.Both {
			itemType = domain.CrossSell
			if product.Price > priceTierThreshold {
				itemType = domain.UpSell
			}
		}

		items = append(items, r.formatItem(&product, itemType, reason))
	}

	return items, nil
}

// relatedForEach параллельно запрашивает связанные товары для каждого id истории.
// Результаты склеиваются в порядке входных записей; порядок внутри одной выборки
// определяется хранилищем.
func (r *RecommendationUseCase) relatedForEach(ctx context.Context, ids []string, relType domain.RelationType) ([]domain.Product, error) {
	results := make([][]domain.Product, len(ids))
	errCh := make(chan error, len(ids))
	sem := make(chan struct{}, relatedFanOut)

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			products, err := r.productRepo.GetRelatedByShopifyID(ctx, id, relType)
			if err != nil {
				errCh <- err
				return
			}

			results[i] = products
		}()
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	var flat []domain.Product
	for _, products := range results {
		flat = append(flat, products...)
	}

	return flat, nil
}

// productBased строит рекомендации от конкретного товара-источника.
// Собственные ошибки стратегия не поднимает: невозможность порекомендовать —
// штатный исход, возвращается пустой срез.
func (r *RecommendationUseCase) productBased(ctx context.Context, productID string, relType domain.RelationType, limit int, priceRange string) []RecommendationItem {
	const op = "RecommendationUseCase.productBased"

	source, err := r.resolveSourceProduct(ctx, productID)
	if err != nil {
		r.logger.Warnf("%s: product %s not found in storage or catalog: %v", op, productID, err)
		return nil
	}

	var candidates []domain.Product

	if relType == domain.CrossSell || relType == domain.Both {
		crossSell, err := r.productRepo.GetRelatedByShopifyID(ctx, productID, domain.CrossSell)
		if err != nil {
			r.logger.Warnf("%s: related lookup failed: %v", op, err)
			return nil
		}
		candidates = append(candidates, crossSell...)
	}

	if relType == domain.UpSell || relType == domain.Both {
		upSell, err := r.productRepo.GetRelatedByShopifyID(ctx, productID, domain.UpSell)
		if err != nil {
			r.logger.Warnf("%s: related lookup failed: %v", op, err)
			return nil
		}
		candidates = append(candidates, upSell...)
	}

	// Ценовой фильтр не применяется к чистому cross-sell.
	if priceRange != "" && relType != domain.CrossSell {
		if minPrice, maxPrice, ok := parsePriceRange(priceRange); ok {
			candidates = filterByPrice(candidates, minPrice, maxPrice)
		}
	}

	if len(candidates) < limit {
		candidates = append(candidates, r.categoryFallback(ctx, source, relType)...)
	}

	unique := dedupeProducts(candidates)
	if len(unique) > limit {
		unique = unique[:limit]
	}

	items := make([]RecommendationItem, 0, len(unique))
	for _, product := range unique {
		itemType := relType
		if relType == domain.Both {
			itemType = domain.CrossSell
			if product.Price > source.Price {
				itemType = domain.UpSell
			}
		}

		items = append(items, r.formatItem(&product, itemType, productReason(relType, &product, source)))
	}

	return items
}

// categoryFallback расширяет кандидатов товарами той же категории, когда графовых
// связей не хватает. Отбор зависит от типа: для cross-sell — ценовой коридор
// 70%–130% от источника, для up-sell — от 120% и дороже с сортировкой по
// возрастанию цены, для both — вся категория без фильтра.
func (r *RecommendationUseCase) categoryFallback(ctx context.Context, source *domain.Product, relType domain.RelationType) []domain.Product {
	const op = "RecommendationUseCase.categoryFallback"

	categoryProducts, err := r.productRepo.GetByCategory(ctx, source.Category, categoryPoolSize)
	if err != nil {
		r.logger.Warnf("%s: category lookup failed: %v", op, err)
		return nil
	}

	pool := make([]domain.Product, 0, len(categoryProducts))
	for _, product := range categoryProducts {
		if product.ShopifyID == source.ShopifyID {
			continue
		}
		pool = append(pool, product)
	}

	switch relType {
	case domain.CrossSell:
		// Границы включительно: price*10 ∈ [source*7, source*13].
		filtered := make([]domain.Product, 0, len(pool))
		for _, product := range pool {
			if product.Price*10 >= source.Price*7 && product.Price*10 <= source.Price*13 {
				filtered = append(filtered, product)
			}
		}
		return filtered
	case domain.UpSell:
		filtered := make([]domain.Product, 0, len(pool))
		for _, product := range pool {
			if product.Price*10 >= source.Price*12 {
				filtered = append(filtered, product)
			}
		}
		// Сначала самый дешёвый подходящий апгрейд.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
		return filtered
	default:
		return pool
	}
}

// resolveSourceProduct находит товар-источник: кэш, затем БД, затем ленивый
// догруз из внешнего каталога с сохранением в БД.
func (r *RecommendationUseCase) resolveSourceProduct(ctx context.Context, productID string) (*domain.Product, error) {
	const op = "RecommendationUseCase.resolveSourceProduct"

	if cached, err := r.cacheRepo.GetProduct(ctx, productID); err == nil && cached != nil {
		return cached, nil
	}

	product, err := r.productRepo.GetByShopifyID(ctx, productID)
	if err == nil {
		// Фоновое добавление в кэш, промах не критичен.
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), cacheBackfillTime)
			defer cancel()

			if err := r.cacheRepo.SetProducts(bgCtx, []domain.Product{*product}); err != nil {
				r.logger.Warnf("%s: failed to cache product in background: %v", op, err)
			}
		}()

		return product, nil
	}

	if !errors.Is(err, e.ErrProductNotFound) {
		return nil, e.Wrap(op, err)
	}

	raw, err := r.catalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Ленивый догруз. Гонка двух конкурентных запросов за одним отсутствующим
	// товаром не блокируется: проигравший insert перечитывает созданную запись.
	created, err := r.productRepo.Create(ctx, catalogToProduct(raw, r.shopName))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// general строит рекомендации по общей популярности, когда другие стратегии
// не дали достаточно результатов. Ошибки проглатываются.
func (r *RecommendationUseCase) general(ctx context.Context, relType domain.RelationType, limit int) []RecommendationItem {
	const op = "RecommendationUseCase.general"

	pool, err := r.productRepo.GetProducts(ctx, generalPoolSize)
	if err != nil {
		r.logger.Warnf("%s: products lookup failed: %v", op, err)
		return nil
	}

	var filtered []domain.Product

	if relType == domain.CrossSell || relType == domain.Both {
		lower := make([]domain.Product, 0, len(pool))
		for _, product := range pool {
			if product.Price < priceTierThreshold {
				lower = append(lower, product)
			}
		}
		// Порядок дешёвой части намеренно случайный.
		rand.Shuffle(len(lower), func(i, j int) {
			lower[i], lower[j] = lower[j], lower[i]
		})
		filtered = append(filtered, lower...)
	}

	if relType == domain.UpSell || relType == domain.Both {
		higher := make([]domain.Product, 0, len(pool))
		for _, product := range pool {
			if product.Price >= priceTierThreshold {
				higher = append(higher, product)
			}
		}
		sort.SliceStable(higher, func(i, j int) bool {
			return higher[i].Price > higher[j].Price
		})
		filtered = append(filtered, higher...)
	}

	// Последний резерв: добираем из всего пула, дубликаты уберёт дедупликация.
	if len(filtered) < limit {
		filtered = append(filtered, pool...)
	}

	unique := dedupeProducts(filtered)
	if len(unique) > limit {
		unique = unique[:limit]
	}

	items := make([]RecommendationItem, 0, len(unique))
	for _, product := range unique {
		itemType := relType
		if relType == domain.Both {
			itemType = domain.CrossSell
			if product.Price >= priceTierThreshold {
				itemType = domain.UpSell
			}
		}

		reason := reasonPopular
		if product.Price >= priceTierThreshold {
			reason = reasonPopularPremium
		}

		items = append(items, r.formatItem(&product, itemType, reason))
	}

	return items
}

func (r *RecommendationUseCase) formatItem(product *domain.Product, itemType domain.RelationType, reason string) RecommendationItem {
	return RecommendationItem{
		ID:         product.ShopifyID,
		Title:      product.Title,
		Price:      product.Price,
		ImageURL:   product.ImageURL,
		ProductURL: product.ProductURL,
		Type:       itemType,
		Reason:     reason,
	}
}

// productReason выбирает пояснение для товарной стратегии.
func productReason(relType domain.RelationType, product, source *domain.Product) string {
	switch relType {
	case domain.CrossSell:
		return reasonCrossSell
	case domain.UpSell:
		return reasonUpSell
	default:
		if product.Price > source.Price {
			return reasonUpSell
		}
		return reasonAlsoBought
	}
}
