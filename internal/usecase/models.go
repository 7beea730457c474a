package usecase

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/domain"
)

// RECOMMENDATION USECASE

// RecommendationReq — параметры запроса рекомендаций.
// UserID и ProductID — внешние (Shopify) идентификаторы, любой из них опционален.
type RecommendationReq struct {
	UserID     string
	ProductID  string
	Type       domain.RelationType
	Limit      int
	PriceRange string // "min-max" в целых единицах валюты
}

// RecommendationItem — один элемент выдачи рекомендаций.
type RecommendationItem struct {
	ID         string              `json:"id"`
	Title      string              `json:"title"`
	Price      int64               `json:"price"`
	ImageURL   string              `json:"image_url"`
	ProductURL string              `json:"product_url"`
	Type       domain.RelationType `json:"recommendation_type"`
	Reason     string              `json:"recommendation_reason"`
}

// RecommendationRes — конверт ответа движка рекомендаций.
type RecommendationRes struct {
	Status string             `json:"status"`
	Data   RecommendationData `json:"data"`
}

type RecommendationData struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}

// CATALOG USECASE

// CatalogProduct — сырая запись товара внешнего каталога.
// Массивы variants и images могут быть пустыми.
type CatalogProduct struct {
	ID          json.Number      `json:"id"`
	Title       string           `json:"title"`
	BodyHTML    string           `json:"body_html"`
	Variants    []CatalogVariant `json:"variants"`
	Images      []CatalogImage   `json:"images"`
	ProductType string           `json:"product_type"`
	Tags        string           `json:"tags"`
	Vendor      string           `json:"vendor"`
	Handle      string           `json:"handle"`
}

// CatalogVariant — вариант товара; цена приходит десятичной строкой в мажорных единицах.
type CatalogVariant struct {
	ID                json.Number `json:"id"`
	Title             string      `json:"title"`
	Price             string      `json:"price"`
	CompareAtPrice    *string     `json:"compare_at_price"`
	SKU               string      `json:"sku"`
	InventoryQuantity int64       `json:"inventory_quantity"`
}

type CatalogImage struct {
	ID  json.Number `json:"id"`
	Src string      `json:"src"`
}

// CatalogPage — страница товаров внешнего каталога с общим количеством.
type CatalogPage struct {
	Products []CatalogProduct
	Total    int
}

// CatalogItem — товар каталога в формате публичного API.
type CatalogItem struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Price      int64  `json:"price"`
	ImageURL   string `json:"image_url"`
	ProductURL string `json:"product_url"`
}

type ListCatalogProductsReq struct {
	Limit int
	Page  int
}

type ListCatalogProductsRes struct {
	Products []CatalogItem
	Total    int
}

type SyncProductsRes struct {
	Synced int
}

// API KEY USECASE

type CreateAPIKeyReq struct {
	Name   string
	Active bool
}

// RELATIONSHIP USECASE

type CreateRelationshipReq struct {
	SourceShopifyID  string
	RelatedShopifyID string
	Type             domain.RelationType
	Strength         int32
}

// INFRASTRUCTURE

// PublishEventReq — запрос на публикацию события в брокер.
// Payload сериализуется на записи в outbox и публикуется как есть.
type PublishEventReq struct {
	ProductID int64
	Payload   []byte
}

// MirrorImage — задание на зеркалирование изображения товара в MinIO.
type MirrorImage struct {
	ShopifyID string
	ImageURL  string
}

// REPOSITORIES

type UpsertProductRes struct {
	Product *domain.Product
	Created bool
}

// ProductUpdate — частичное обновление товара; nil-поля не изменяются.
type ProductUpdate struct {
	Title          *string
	Description    *string
	Price          *int64
	CompareAtPrice *int64
	ImageURL       *string
	ProductURL     *string
	Category       *string
	Tags           *[]string
	Vendor         *string
	Inventory      *int64
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

const EventProductSynced = "catalog.product.synced"

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   string
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// ProductSyncedPayload — тело события синхронизации товара (JSON).
type ProductSyncedPayload struct {
	EventID   string `json:"event_id"`
	ProductID int64  `json:"product_id"`
	ShopifyID string `json:"shopify_id"`
	Operation string `json:"operation"` // created | updated
	Timestamp int64  `json:"timestamp"`
}

// MAPPERS

func NewRecommendationRes(items []RecommendationItem) *RecommendationRes {
	if items == nil {
		items = []RecommendationItem{}
	}

	return &RecommendationRes{
		Status: "success",
		Data:   RecommendationData{Recommendations: items},
	}
}

func NewRecommendationReq(userID, productID string, relType domain.RelationType, limit int, priceRange string) *RecommendationReq {
	return &RecommendationReq{
		UserID:     userID,
		ProductID:  productID,
		Type:       relType,
		Limit:      limit,
		PriceRange: priceRange,
	}
}

func NewUpsertProductRes(product *domain.Product, created bool) *UpsertProductRes {
	return &UpsertProductRes{
		Product: product,
		Created: created,
	}
}

func NewOutboxEvent(eventID, eventType string, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	}
}

func NewPublishEventReq(productID int64, payload []byte) *PublishEventReq {
	return &PublishEventReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewCreateAPIKeyReq(name string, active bool) *CreateAPIKeyReq {
	return &CreateAPIKeyReq{
		Name:   name,
		Active: active,
	}
}

func NewCreateRelationshipReq(sourceID, relatedID string, relType domain.RelationType, strength int32) *CreateRelationshipReq {
	return &CreateRelationshipReq{
		SourceShopifyID:  sourceID,
		RelatedShopifyID: relatedID,
		Type:             relType,
		Strength:         strength,
	}
}

func NewListCatalogProductsReq(limit, page int) *ListCatalogProductsReq {
	return &ListCatalogProductsReq{
		Limit: limit,
		Page:  page,
	}
}
