package usecase

import (
	"context"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

// RelationshipUseCase — кураторское создание связей "товар -> товар".
// Движок рекомендаций читает граф связей только через ProductRepository.
type RelationshipUseCase struct {
	productRepo      ProductRepository
	relationshipRepo RelationshipRepository
	logger           logger.Logger
}

func NewRelationshipUC(productRepo ProductRepository, relationshipRepo RelationshipRepository, logger logger.Logger) *RelationshipUseCase {
	return &RelationshipUseCase{
		productRepo:      productRepo,
		relationshipRepo: relationshipRepo,
		logger:           logger,
	}
}

// CreateRelationship создаёт направленное ребро между двумя известными товарами.
// Тип both для ребра недопустим: ребро всегда конкретного типа.
func (r *RelationshipUseCase) CreateRelationship(ctx context.Context, req *CreateRelationshipReq) (*domain.ProductRelationship, error) {
	const op = "RelationshipUseCase.CreateRelationship"

	if req.Type != domain.CrossSell && req.Type != domain.UpSell {
		return nil, e.Wrap(op, e.ErrInvalidRelationType)
	}

	source, err := r.productRepo.GetByShopifyID(ctx, req.SourceShopifyID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	related, err := r.productRepo.GetByShopifyID(ctx, req.RelatedShopifyID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rel, err := r.relationshipRepo.Create(ctx, domain.NewProductRelationship(source.ID, related.ID, req.Type, req.Strength))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return rel, nil
}
