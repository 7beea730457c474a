package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
	"github.com/google/uuid"
)

// APIKeyUseCase управляет ключами доступа к публичному API.
type APIKeyUseCase struct {
	apiKeyRepo APIKeyRepository
	logger     logger.Logger
}

func NewAPIKeyUC(apiKeyRepo APIKeyRepository, logger logger.Logger) *APIKeyUseCase {
	return &APIKeyUseCase{
		apiKeyRepo: apiKeyRepo,
		logger:     logger,
	}
}

// CreateKey выпускает новый ключ. Значение ключа генерируется сервером.
func (a *APIKeyUseCase) CreateKey(ctx context.Context, req *CreateAPIKeyReq) (*domain.APIKey, error) {
	const op = "APIKeyUseCase.CreateKey"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrAPIKeyNameRequired)
	}

	key, err := a.apiKeyRepo.Create(ctx, domain.NewAPIKey(uuid.NewString(), req.Name, req.Active))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return key, nil
}

func (a *APIKeyUseCase) ListKeys(ctx context.Context) ([]domain.APIKey, error) {
	const op = "APIKeyUseCase.ListKeys"

	keys, err := a.apiKeyRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return keys, nil
}

// Authenticate проверяет ключ: неизвестный даёт ErrInvalidAPIKey,
// деактивированный — ErrInactiveAPIKey.
func (a *APIKeyUseCase) Authenticate(ctx context.Context, key string) error {
	const op = "APIKeyUseCase.Authenticate"

	apiKey, err := a.apiKeyRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, e.ErrAPIKeyNotFound) {
			return e.ErrInvalidAPIKey
		}
		return e.Wrap(op, err)
	}

	if !apiKey.Active {
		return e.ErrInactiveAPIKey
	}

	return nil
}
