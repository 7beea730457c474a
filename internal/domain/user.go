package domain

import (
	"encoding/json"
	"time"
)

// HistoryEntry — одна запись истории пользователя (покупка или просмотр).
// ProductID — внешний (Shopify) идентификатор товара.
type HistoryEntry struct {
	ProductID string `json:"productId"`
}

// User описывает покупателя, синхронизированного из внешней платформы.
// Движок рекомендаций работает с пользователем только на чтение.
type User struct {
	ID              int64
	ShopifyID       string
	Username        string
	Email           string
	Preferences     json.RawMessage
	PurchaseHistory []HistoryEntry
	BrowsedProducts []HistoryEntry
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
