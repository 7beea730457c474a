package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, shopify_id, title, description, price, compare_at_price,
	image_url, product_url, category, tags, vendor, inventory,
	created_at, updated_at
`

func (p *ProductRepo) GetByShopifyID(ctx context.Context, shopifyID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE shopify_id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, shopifyID).Scan(
		&model.ID, &model.ShopifyID, &model.Title, &model.Description,
		&model.Price, &model.CompareAtPrice, &model.ImageURL, &model.ProductURL,
		&model.Category, &model.Tags, &model.Vendor, &model.Inventory,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetProducts возвращает не более limit товаров в порядке добавления в каталог.
func (p *ProductRepo) GetProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) GetByCategory(ctx context.Context, category string, limit int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY id
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, category, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

// GetRelatedByShopifyID возвращает товары, связанные с источником рёбрами графа.
// relType=both снимает фильтр по типу ребра.
func (p *ProductRepo) GetRelatedByShopifyID(ctx context.Context, shopifyID string, relType domain.RelationType) ([]domain.Product, error) {
	query := `
		SELECT
			pr.id, pr.shopify_id, pr.title, pr.description, pr.price, pr.compare_at_price,
			pr.image_url, pr.product_url, pr.category, pr.tags, pr.vendor, pr.inventory,
			pr.created_at, pr.updated_at
		FROM product_relationships rel
		JOIN products pr ON pr.id = rel.related_product_id
		JOIN products src ON src.id = rel.source_product_id
		WHERE src.shopify_id = $1
		  AND ($2 = 'both' OR rel.relationship_type = $2)
		ORDER BY rel.id
		LIMIT 20
	`

	rows, err := p.pool.Query(ctx, query, shopifyID, string(relType))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.scanProducts(rows)
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			shopify_id, title, description, price, compare_at_price,
			image_url, product_url, category, tags, vendor, inventory
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns + `
	`

	err := p.pool.QueryRow(ctx, query,
		model.ShopifyID, model.Title, model.Description, model.Price, model.CompareAtPrice,
		model.ImageURL, model.ProductURL, model.Category, model.Tags, model.Vendor, model.Inventory,
	).Scan(
		&model.ID, &model.ShopifyID, &model.Title, &model.Description,
		&model.Price, &model.CompareAtPrice, &model.ImageURL, &model.ProductURL,
		&model.Category, &model.Tags, &model.Vendor, &model.Inventory,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			// Ленивая загрузка могла опередить: отдаём уже существующую запись.
			return p.GetByShopifyID(ctx, product.ShopifyID)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update частично обновляет товар: nil-поля не трогаются.
func (p *ProductRepo) Update(ctx context.Context, id int64, upd *usecase.ProductUpdate) (*domain.Product, error) {
	query := `
		UPDATE products SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			compare_at_price = COALESCE($5, compare_at_price),
			image_url = COALESCE($6, image_url),
			product_url = COALESCE($7, product_url),
			category = COALESCE($8, category),
			tags = COALESCE($9, tags),
			vendor = COALESCE($10, vendor),
			inventory = COALESCE($11, inventory),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id,
		upd.Title, upd.Description, upd.Price, upd.CompareAtPrice,
		upd.ImageURL, upd.ProductURL, upd.Category, upd.Tags,
		upd.Vendor, upd.Inventory,
	).Scan(
		&model.ID, &model.ShopifyID, &model.Title, &model.Description,
		&model.Price, &model.CompareAtPrice, &model.ImageURL, &model.ProductURL,
		&model.Category, &model.Tags, &model.Vendor, &model.Inventory,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Upsert идемпотентно создаёт или обновляет товар по shopify_id.
// Выполняется только внутри транзакции синхронизации каталога.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*usecase.UpsertProductRes, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			shopify_id, title, description, price, compare_at_price,
			image_url, product_url, category, tags, vendor, inventory
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (shopify_id)
		DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			compare_at_price = EXCLUDED.compare_at_price,
			image_url = EXCLUDED.image_url,
			product_url = EXCLUDED.product_url,
			category = EXCLUDED.category,
			tags = EXCLUDED.tags,
			vendor = EXCLUDED.vendor,
			inventory = EXCLUDED.inventory,
			updated_at = NOW()
		RETURNING ` + productColumns + `, (xmax = 0) AS inserted
	`

	var inserted bool
	err = tx.QueryRow(ctx, query,
		model.ShopifyID, model.Title, model.Description, model.Price, model.CompareAtPrice,
		model.ImageURL, model.ProductURL, model.Category, model.Tags, model.Vendor, model.Inventory,
	).Scan(
		&model.ID, &model.ShopifyID, &model.Title, &model.Description,
		&model.Price, &model.CompareAtPrice, &model.ImageURL, &model.ProductURL,
		&model.Category, &model.Tags, &model.Vendor, &model.Inventory,
		&model.CreatedAt, &model.UpdatedAt, &inserted,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return usecase.NewUpsertProductRes(p.conv.ToEntity(model), inserted), nil
}

func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.ShopifyID, &model.Title, &model.Description,
			&model.Price, &model.CompareAtPrice, &model.ImageURL, &model.ProductURL,
			&model.Category, &model.Tags, &model.Vendor, &model.Inventory,
			&model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}
