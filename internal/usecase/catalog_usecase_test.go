package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type fakeCatalogPages struct {
	page *CatalogPage
	err  error

	limit, pageNum int
}

func (f *fakeCatalogPages) GetProductByID(_ context.Context, id string) (*CatalogProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.page.Products {
		if f.page.Products[i].ID.String() == id {
			return &f.page.Products[i], nil
		}
	}
	return nil, e.ErrCatalogProductNotFound
}

func (f *fakeCatalogPages) GetProducts(_ context.Context, limit, page int) (*CatalogPage, error) {
	f.limit, f.pageNum = limit, page
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func newCatalogUC(catalog CatalogInfra) *CatalogUseCase {
	return NewCatalogUC(nil, nil, nil, nil, catalog, nil, "demo-shop", logger.NewSlogLogger())
}

func TestListCatalogProducts(t *testing.T) {
	catalog := &fakeCatalogPages{page: &CatalogPage{
		Products: []CatalogProduct{
			{ID: "1", Title: "First", Variants: []CatalogVariant{{Price: "10.00"}}, Handle: "first"},
			{ID: "2", Title: "Second", Handle: "second"},
		},
		Total: 57,
	}}

	uc := newCatalogUC(catalog)

	res, err := uc.ListCatalogProducts(context.Background(), &ListCatalogProductsReq{Limit: 50, Page: 2})
	require.NoError(t, err)

	require.Equal(t, 50, catalog.limit)
	require.Equal(t, 2, catalog.pageNum)
	require.Equal(t, 57, res.Total)
	require.Len(t, res.Products, 2)
	require.Equal(t, "1", res.Products[0].ID)
	require.Equal(t, int64(1000), res.Products[0].Price)
	require.Equal(t, "https://demo-shop.myshopify.com/products/first", res.Products[0].ProductURL)
	require.Zero(t, res.Products[1].Price)
}

func TestGetCatalogProduct(t *testing.T) {
	catalog := &fakeCatalogPages{page: &CatalogPage{
		Products: []CatalogProduct{{ID: "42", Title: "Widget", Handle: "widget"}},
	}}

	uc := newCatalogUC(catalog)

	item, err := uc.GetCatalogProduct(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, "Widget", item.Title)

	_, err = uc.GetCatalogProduct(context.Background(), "99")
	require.ErrorIs(t, err, e.ErrCatalogProductNotFound)
}

func TestListCatalogProducts_CatalogDown(t *testing.T) {
	uc := newCatalogUC(&fakeCatalogPages{err: e.ErrCatalogUnavailable})

	_, err := uc.ListCatalogProducts(context.Background(), &ListCatalogProductsReq{Limit: 50, Page: 1})
	require.ErrorIs(t, err, e.ErrCatalogUnavailable)
}
