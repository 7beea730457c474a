package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type APIKeyRepo struct {
	pool *pgxpool.Pool
	conv converter.APIKeyConverter
}

func NewAPIKeyRepo(pool *pgxpool.Pool, conv converter.APIKeyConverter) *APIKeyRepo {
	return &APIKeyRepo{
		pool: pool,
		conv: conv,
	}
}

func (a *APIKeyRepo) Create(ctx context.Context, key *domain.APIKey) (*domain.APIKey, error) {
	model := a.conv.ToModel(key)
	query := `
		INSERT INTO api_keys (key, name, active)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := a.pool.QueryRow(ctx, query, model.Key, model.Name, model.Active).
		Scan(&model.ID); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: api key %q already exists", whereami.WhereAmI(), key.Name)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(model), nil
}

func (a *APIKeyRepo) GetByKey(ctx context.Context, key string) (*domain.APIKey, error) {
	query := `
		SELECT id, key, name, active
		FROM api_keys
		WHERE key = $1
	`

	var model converter.APIKeyModel
	err := a.pool.QueryRow(ctx, query, key).
		Scan(&model.ID, &model.Key, &model.Name, &model.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrAPIKeyNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(&model), nil
}

func (a *APIKeyRepo) List(ctx context.Context) ([]domain.APIKey, error) {
	query := `
		SELECT id, key, name, active
		FROM api_keys
		ORDER BY id
	`

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.APIKeyModel, 0)
	for rows.Next() {
		var model converter.APIKeyModel
		if err := rows.Scan(&model.ID, &model.Key, &model.Name, &model.Active); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToArrEntity(models), nil
}
