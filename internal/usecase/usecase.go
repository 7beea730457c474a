package usecase

import (
	"context"

	"github.com/DRSN-tech/recs-backend/internal/domain"
)

type RecommendationUC interface {
	GetRecommendations(ctx context.Context, req *RecommendationReq) (*RecommendationRes, error)
	GetCrossSellRecommendations(ctx context.Context, productID string, limit int) (*RecommendationRes, error)
	GetUpSellRecommendations(ctx context.Context, productID, priceRange string, limit int) (*RecommendationRes, error)
}

type CatalogUC interface {
	ListCatalogProducts(ctx context.Context, req *ListCatalogProductsReq) (*ListCatalogProductsRes, error)
	GetCatalogProduct(ctx context.Context, productID string) (*CatalogItem, error)
	SyncProducts(ctx context.Context, limit int) (*SyncProductsRes, error)
}

type APIKeyUC interface {
	CreateKey(ctx context.Context, req *CreateAPIKeyReq) (*domain.APIKey, error)
	ListKeys(ctx context.Context) ([]domain.APIKey, error)
	Authenticate(ctx context.Context, key string) error
}

type RelationshipUC interface {
	CreateRelationship(ctx context.Context, req *CreateRelationshipReq) (*domain.ProductRelationship, error)
}
