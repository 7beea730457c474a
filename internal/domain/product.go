package domain

import "time"

// Product описывает товар каталога.
// Price хранится в минорных единицах валюты (центах), float не используется.
type Product struct {
	ID             int64
	ShopifyID      string
	Title          string
	Description    string
	Price          int64
	CompareAtPrice *int64
	ImageURL       string
	ProductURL     string
	Category       string
	Tags           []string
	Vendor         string
	Inventory      int64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
