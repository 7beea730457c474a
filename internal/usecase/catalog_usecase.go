package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogUseCase отвечает за интеграцию с внешним каталогом: проксирование
// списков товаров и синхронизацию каталога в локальное хранилище.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	catalog     CatalogInfra
	imagesInfra ImagesInfra
	shopName    string
	logger      logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	catalog CatalogInfra,
	imagesInfra ImagesInfra,
	shopName string,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		catalog:     catalog,
		imagesInfra: imagesInfra,
		shopName:    shopName,
		logger:      logger,
	}
}

// ListCatalogProducts возвращает страницу товаров внешнего каталога в формате API.
func (c *CatalogUseCase) ListCatalogProducts(ctx context.Context, req *ListCatalogProductsReq) (*ListCatalogProductsRes, error) {
	const op = "CatalogUseCase.ListCatalogProducts"

	page, err := c.catalog.GetProducts(ctx, req.Limit, req.Page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items := make([]CatalogItem, 0, len(page.Products))
	for i := range page.Products {
		items = append(items, catalogItem(&page.Products[i], c.shopName))
	}

	return &ListCatalogProductsRes{
		Products: items,
		Total:    page.Total,
	}, nil
}

// GetCatalogProduct возвращает один товар внешнего каталога в формате API.
func (c *CatalogUseCase) GetCatalogProduct(ctx context.Context, productID string) (*CatalogItem, error) {
	const op = "CatalogUseCase.GetCatalogProduct"

	raw, err := c.catalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	item := catalogItem(raw, c.shopName)
	return &item, nil
}

// SyncProducts выгружает товары из внешнего каталога и идемпотентно сохраняет
// их локально. Каждый товар обрабатывается в своей транзакции вместе с записью
// outbox-события; изображения зеркалируются в фоне после завершения обхода.
func (c *CatalogUseCase) SyncProducts(ctx context.Context, limit int) (*SyncProductsRes, error) {
	const op = "CatalogUseCase.SyncProducts"

	page, err := c.catalog.GetProducts(ctx, limit, 1)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		synced  int
		mirrors []MirrorImage
		stale   []string
	)
	for i := range page.Products {
		product := catalogToProduct(&page.Products[i], c.shopName)

		res, err := c.syncOne(ctx, product)
		if err != nil {
			c.logger.Warnf("%s: sync of product %s failed: %v", op, product.ShopifyID, err)
			continue
		}
		synced++

		if !res.Created {
			stale = append(stale, product.ShopifyID)
		}

		if product.ImageURL != "" {
			mirrors = append(mirrors, MirrorImage{
				ShopifyID: product.ShopifyID,
				ImageURL:  product.ImageURL,
			})
		}
	}

	// Инвалидация кэша обновлённых товаров.
	if len(stale) > 0 {
		if err := c.cacheRepo.DeleteProducts(ctx, stale); err != nil {
			c.logger.Warnf("%s: failed to invalidate cache: %v", op, err)
		}
	}

	c.imagesInfra.MirrorImages(mirrors)

	return &SyncProductsRes{Synced: synced}, nil
}

// syncOne сохраняет один товар и outbox-событие в общей транзакции.
func (c *CatalogUseCase) syncOne(ctx context.Context, product *domain.Product) (*UpsertProductRes, error) {
	const op = "CatalogUseCase.syncOne"

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	res, err := c.productRepo.Upsert(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	operation := "updated"
	if res.Created {
		operation = "created"
	}

	eventID := uuid.NewString()
	payload, err := json.Marshal(ProductSyncedPayload{
		EventID:   eventID,
		ProductID: res.Product.ID,
		ShopifyID: res.Product.ShopifyID,
		Operation: operation,
		Timestamp: time.Now().UnixNano(),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = c.outboxRepo.Create(ctx, NewOutboxEvent(eventID, EventProductSynced, res.Product.ID, payload)); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}
