package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo — читающий репозиторий пользователей.
// Записи появляются внешней синхронизацией, сервис их не создаёт.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

func (u *UserRepo) GetByShopifyID(ctx context.Context, shopifyID string) (*domain.User, error) {
	query := `
		SELECT
			id, shopify_id, username, email, preferences,
			purchase_history, browsed_products, created_at, updated_at
		FROM users
		WHERE shopify_id = $1
	`

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query, shopifyID).Scan(
		&model.ID, &model.ShopifyID, &model.Username, &model.Email, &model.Preferences,
		&model.PurchaseHistory, &model.BrowsedProducts, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}
