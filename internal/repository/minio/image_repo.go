package minio

import (
	"context"
	"io"

	"github.com/DRSN-tech/recs-backend/internal/cfg"
	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo реализует репозиторий изображений поверх MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает изображение в MinIO потоком и возвращает ключ объекта.
func (i *ImageRepo) Upload(ctx context.Context, image *domain.Image, reader io.Reader) (string, error) {
	size := int64(-1)
	if image.Size != nil {
		size = *image.Size
	}

	opts := minio.PutObjectOptions{}
	if image.ContentType != nil {
		opts.ContentType = *image.ContentType
	}

	info, err := i.mc.PutObject(ctx, i.cfg.BucketName, image.ObjectKey, reader, size, opts)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (i *ImageRepo) Delete(ctx context.Context, key string) error {
	if err := i.mc.RemoveObject(ctx, i.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
