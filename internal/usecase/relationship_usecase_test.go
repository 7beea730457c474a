package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type fakeRelationshipRepo struct {
	created *domain.ProductRelationship
	err     error
}

func (f *fakeRelationshipRepo) Create(_ context.Context, rel *domain.ProductRelationship) (*domain.ProductRelationship, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *rel
	created.ID = 1
	f.created = &created
	return &created, nil
}

func TestCreateRelationship(t *testing.T) {
	products := newFakeProductRepo()
	source := product(10, "src", 1000)
	related := product(20, "rel", 2000)
	products.products["src"] = &source
	products.products["rel"] = &related

	repo := &fakeRelationshipRepo{}
	uc := NewRelationshipUC(products, repo, logger.NewSlogLogger())

	rel, err := uc.CreateRelationship(context.Background(), &CreateRelationshipReq{
		SourceShopifyID:  "src",
		RelatedShopifyID: "rel",
		Type:             domain.CrossSell,
		Strength:         5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), rel.SourceProductID)
	require.Equal(t, int64(20), rel.RelatedProductID)
	require.Equal(t, domain.CrossSell, rel.Type)
	require.Equal(t, int32(5), rel.Strength)
}

func TestCreateRelationship_RejectsBoth(t *testing.T) {
	uc := NewRelationshipUC(newFakeProductRepo(), &fakeRelationshipRepo{}, logger.NewSlogLogger())

	_, err := uc.CreateRelationship(context.Background(), &CreateRelationshipReq{
		SourceShopifyID:  "src",
		RelatedShopifyID: "rel",
		Type:             domain.Both,
	})
	require.ErrorIs(t, err, e.ErrInvalidRelationType)
}

func TestCreateRelationship_UnknownProduct(t *testing.T) {
	products := newFakeProductRepo()
	source := product(10, "src", 1000)
	products.products["src"] = &source

	uc := NewRelationshipUC(products, &fakeRelationshipRepo{}, logger.NewSlogLogger())

	_, err := uc.CreateRelationship(context.Background(), &CreateRelationshipReq{
		SourceShopifyID:  "src",
		RelatedShopifyID: "missing",
		Type:             domain.UpSell,
	})
	require.ErrorIs(t, err, e.ErrProductNotFound)
}
