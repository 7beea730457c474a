package minio

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/cfg"
	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/infrastructure"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure зеркалирует изображения товаров из внешнего каталога в MinIO.
// Зеркалирование идёт в фоне и не блокирует синхронизацию каталога.
type MinioInfrastructure struct {
	imageRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	httpClient  *http.Client
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(imageRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		imageRepo:   imageRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// MirrorImages запускает фоновое зеркалирование изображений с ограничением
// одновременных загрузок. Ошибки отдельных изображений только логируются:
// зеркало — кэш, источником истины остаётся URL каталога.
func (m *MinioInfrastructure) MirrorImages(images []usecase.MirrorImage) {
	if len(images) == 0 {
		return
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		sem := make(chan struct{}, m.cfg.MirrorConcurrency)
		var mirrorWg sync.WaitGroup
		for _, image := range images {
			if image.ImageURL == "" {
				continue
			}

			mirrorWg.Add(1)
			go func(image usecase.MirrorImage) {
				defer mirrorWg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				if err := m.mirrorOne(image); err != nil {
					m.logger.Warnf("failed to mirror image for product %s: %v", image.ShopifyID, err)
				}
			}(image)
		}

		mirrorWg.Wait()
	}()
}

// mirrorOne скачивает одно изображение и кладёт его в бакет.
func (m *MinioInfrastructure) mirrorOne(image usecase.MirrorImage) error {
	const op = "MinioInfrastructure.mirrorOne"

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, image.ImageURL, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: image source responded with status %d", op, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	ext, err := infrastructure.GetExtensionFromMIME(contentType)
	if err != nil {
		return fmt.Errorf("%s: invalid mime type %s: %w", op, contentType, err)
	}

	imageID := uuid.NewString()
	objKey := fmt.Sprintf("products/%s/%s.%s", image.ShopifyID, imageID, ext)

	size := resp.ContentLength
	newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, &size, &contentType)

	if _, err := m.imageRepo.Upload(ctx, newImage, resp.Body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// WaitForMirror ожидает завершения фоновых зеркалирований с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForMirror(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("image mirror timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
