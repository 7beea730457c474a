package domain

import (
	"time"

	"github.com/DRSN-tech/recs-backend/pkg/e"
)

// RelationType — закрытое перечисление типов рекомендаций.
type RelationType string

const (
	CrossSell RelationType = "cross-sell"
	UpSell    RelationType = "up-sell"
	Both      RelationType = "both"
)

// ParseRelationType разбирает строку запроса в RelationType.
// Пустая строка трактуется как Both.
func ParseRelationType(s string) (RelationType, error) {
	switch RelationType(s) {
	case "":
		return Both, nil
	case CrossSell:
		return CrossSell, nil
	case UpSell:
		return UpSell, nil
	case Both:
		return Both, nil
	default:
		return "", e.ErrInvalidRelationType
	}
}

// ProductRelationship — направленное ребро "источник -> связанный товар".
// Strength хранится для полноты модели данных, порядок выдачи от него не зависит.
type ProductRelationship struct {
	ID               int64
	SourceProductID  int64
	RelatedProductID int64
	Type             RelationType
	Strength         int32
	CreatedAt        time.Time
}

func NewProductRelationship(sourceID, relatedID int64, relType RelationType, strength int32) *ProductRelationship {
	if strength <= 0 {
		strength = 1
	}

	return &ProductRelationship{
		SourceProductID:  sourceID,
		RelatedProductID: relatedID,
		Type:             relType,
		Strength:         strength,
	}
}
