package usecase

import (
	"context"
	"io"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/domain"
)

type ProductRepository interface {
	GetByShopifyID(ctx context.Context, shopifyID string) (*domain.Product, error)
	GetProducts(ctx context.Context, limit int) ([]domain.Product, error)
	GetByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error)
	GetRelatedByShopifyID(ctx context.Context, shopifyID string, relType domain.RelationType) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, upd *ProductUpdate) (*domain.Product, error)
	Upsert(ctx context.Context, product *domain.Product) (*UpsertProductRes, error)
}

type UserRepository interface {
	GetByShopifyID(ctx context.Context, shopifyID string) (*domain.User, error)
}

type RelationshipRepository interface {
	Create(ctx context.Context, rel *domain.ProductRelationship) (*domain.ProductRelationship, error)
}

type APIKeyRepository interface {
	Create(ctx context.Context, key *domain.APIKey) (*domain.APIKey, error)
	GetByKey(ctx context.Context, key string) (*domain.APIKey, error)
	List(ctx context.Context) ([]domain.APIKey, error)
}

type CacheRepository interface {
	GetProduct(ctx context.Context, shopifyID string) (*domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, shopifyIDs []string) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image, reader io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	ClaimPending(ctx context.Context, limit int) ([]*OutboxEvent, error)
	RequeueStale(ctx context.Context, olderThan time.Duration) (int64, error)
	MarkProcessed(ctx context.Context, id int64) error
}
