package pgdb

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type RelationshipRepo struct {
	pool *pgxpool.Pool
	conv converter.RelationshipConverter
}

func NewRelationshipRepo(pool *pgxpool.Pool, conv converter.RelationshipConverter) *RelationshipRepo {
	return &RelationshipRepo{
		pool: pool,
		conv: conv,
	}
}

func (r *RelationshipRepo) Create(ctx context.Context, rel *domain.ProductRelationship) (*domain.ProductRelationship, error) {
	model := r.conv.ToModel(rel)
	query := `
		INSERT INTO product_relationships (
			source_product_id, related_product_id, relationship_type, strength
		) VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		model.SourceProductID, model.RelatedProductID, model.RelationshipType, model.Strength,
	).Scan(&model.ID, &model.CreatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: relationship %d -> %d (%s) already exists",
				whereami.WhereAmI(), rel.SourceProductID, rel.RelatedProductID, rel.Type)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}
