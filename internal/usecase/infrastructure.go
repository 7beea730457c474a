package usecase

import "context"

type CatalogInfra interface {
	GetProductByID(ctx context.Context, productID string) (*CatalogProduct, error)
	GetProducts(ctx context.Context, limit, page int) (*CatalogPage, error)
}

type ImagesInfra interface {
	MirrorImages(images []MirrorImage)
	WaitForMirror(ctx context.Context) error
}

type MessageProducer interface {
	Publish(ctx context.Context, req *PublishEventReq) error
}
