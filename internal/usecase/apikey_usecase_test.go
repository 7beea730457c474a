package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type fakeAPIKeyRepo struct {
	byKey map[string]*domain.APIKey
	err   error

	created *domain.APIKey
}

func (f *fakeAPIKeyRepo) Create(_ context.Context, key *domain.APIKey) (*domain.APIKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *key
	created.ID = 1
	f.created = &created
	return &created, nil
}

func (f *fakeAPIKeyRepo) GetByKey(_ context.Context, key string) (*domain.APIKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	if apiKey, ok := f.byKey[key]; ok {
		return apiKey, nil
	}
	return nil, e.ErrAPIKeyNotFound
}

func (f *fakeAPIKeyRepo) List(context.Context) ([]domain.APIKey, error) {
	if f.err != nil {
		return nil, f.err
	}
	keys := make([]domain.APIKey, 0, len(f.byKey))
	for _, key := range f.byKey {
		keys = append(keys, *key)
	}
	return keys, nil
}

func TestCreateKey(t *testing.T) {
	repo := &fakeAPIKeyRepo{}
	uc := NewAPIKeyUC(repo, logger.NewSlogLogger())

	key, err := uc.CreateKey(context.Background(), &CreateAPIKeyReq{Name: "frontend", Active: true})
	require.NoError(t, err)
	require.NotEmpty(t, key.Key)
	require.Equal(t, "frontend", key.Name)
	require.True(t, key.Active)
}

func TestCreateKey_NameRequired(t *testing.T) {
	uc := NewAPIKeyUC(&fakeAPIKeyRepo{}, logger.NewSlogLogger())

	_, err := uc.CreateKey(context.Background(), &CreateAPIKeyReq{Name: "   "})
	require.ErrorIs(t, err, e.ErrAPIKeyNameRequired)
}

func TestAuthenticate(t *testing.T) {
	repo := &fakeAPIKeyRepo{byKey: map[string]*domain.APIKey{
		"live-key": {ID: 1, Key: "live-key", Name: "frontend", Active: true},
		"dead-key": {ID: 2, Key: "dead-key", Name: "legacy", Active: false},
	}}
	uc := NewAPIKeyUC(repo, logger.NewSlogLogger())

	require.NoError(t, uc.Authenticate(context.Background(), "live-key"))
	require.ErrorIs(t, uc.Authenticate(context.Background(), "dead-key"), e.ErrInactiveAPIKey)
	require.ErrorIs(t, uc.Authenticate(context.Background(), "unknown"), e.ErrInvalidAPIKey)
}

func TestAuthenticate_RepoErrorIsNotAuthError(t *testing.T) {
	repo := &fakeAPIKeyRepo{err: fmt.Errorf("connection refused")}
	uc := NewAPIKeyUC(repo, logger.NewSlogLogger())

	err := uc.Authenticate(context.Background(), "any")
	require.Error(t, err)
	require.NotErrorIs(t, err, e.ErrInvalidAPIKey)
	require.NotErrorIs(t, err, e.ErrInactiveAPIKey)
}
