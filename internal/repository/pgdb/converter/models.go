package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID             int64      `db:"id"`
	ShopifyID      string     `db:"shopify_id"`
	Title          string     `db:"title"`
	Description    string     `db:"description"`
	Price          int64      `db:"price"`
	CompareAtPrice *int64     `db:"compare_at_price"`
	ImageURL       string     `db:"image_url"`
	ProductURL     string     `db:"product_url"`
	Category       string     `db:"category"`
	Tags           []string   `db:"tags"`
	Vendor         string     `db:"vendor"`
	Inventory      int64      `db:"inventory"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
// Истории хранятся как jsonb и разворачиваются конвертером.
type UserModel struct {
	ID              int64      `db:"id"`
	ShopifyID       string     `db:"shopify_id"`
	Username        string     `db:"username"`
	Email           string     `db:"email"`
	Preferences     []byte     `db:"preferences"`
	PurchaseHistory []byte     `db:"purchase_history"`
	BrowsedProducts []byte     `db:"browsed_products"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at"`
}

// RelationshipModel представляет запись таблицы product_relationships в PostgreSQL.
type RelationshipModel struct {
	ID               int64     `db:"id"`
	SourceProductID  int64     `db:"source_product_id"`
	RelatedProductID int64     `db:"related_product_id"`
	RelationshipType string    `db:"relationship_type"`
	Strength         int32     `db:"strength"`
	CreatedAt        time.Time `db:"created_at"`
}

// APIKeyModel представляет запись таблицы api_keys в PostgreSQL.
type APIKeyModel struct {
	ID     int64  `db:"id"`
	Key    string `db:"key"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
