package converter

import "time"

// ProductRedisModel — JSON-представление товара в кэше.
type ProductRedisModel struct {
	ID             int64      `json:"id"`
	ShopifyID      string     `json:"shopify_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Price          int64      `json:"price"`
	CompareAtPrice *int64     `json:"compare_at_price,omitempty"`
	ImageURL       string     `json:"image_url"`
	ProductURL     string     `json:"product_url"`
	Category       string     `json:"category"`
	Tags           []string   `json:"tags"`
	Vendor         string     `json:"vendor"`
	Inventory      int64      `json:"inventory"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
