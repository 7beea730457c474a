package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/recs-backend/internal/cfg"
	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/recs-backend/pkg/clients"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
	goredis "github.com/redis/go-redis/v9"
	"github.com/jimlawless/whereami"
)

// CacheRepo кэширует товары каталога по внешнему (Shopify) идентификатору.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает товар из кэша. Промах отдаётся как (nil, nil):
// кэш не является источником истины, отсутствие записи — не ошибка.
func (r *CacheRepo) GetProduct(ctx context.Context, shopifyID string) (*domain.Product, error) {
	key := r.productKey(shopifyID)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil // cache miss
		}
		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // повреждённая запись трактуется как промах
	}

	return r.conv.ToEntity(&model), nil
}

// SetProducts атомарно кэширует несколько товаров с заданным TTL.
// Игнорирует ошибки сериализации/записи, логируя их.
func (r *CacheRepo) SetProducts(ctx context.Context, products []domain.Product) error {
	models := r.conv.ToArrRedisModel(products)

	pipeline := r.client.Client.Pipeline()
	for _, model := range models {
		data, err := json.Marshal(model)
		if err != nil {
			r.logger.Warnf("Failed to marshal product for caching (Shopify ID: %s): %v",
				model.ShopifyID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		pipeline.Set(ctx, r.productKey(model.ShopifyID), data, r.cfg.ProductTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteProducts инвалидирует записи кэша по внешним идентификаторам.
func (r *CacheRepo) DeleteProducts(ctx context.Context, shopifyIDs []string) error {
	if len(shopifyIDs) == 0 {
		return nil
	}

	keys := make([]string, len(shopifyIDs))
	for i, id := range shopifyIDs {
		keys[i] = r.productKey(id)
	}

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// productKey возвращает Redis-ключ для одного товара.
func (r *CacheRepo) productKey(shopifyID string) string {
	return fmt.Sprintf("product:%s", shopifyID)
}
