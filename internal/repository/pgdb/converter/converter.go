//go:generate goverter gen github.com/DRSN-tech/recs-backend/internal/repository/pgdb/converter
package converter

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertRawJSON
// goverter:extend ConvertHistory
type UserConverter interface {
	ToEntity(model *UserModel) *domain.User
}

// RelationshipConverter преобразует сущности ProductRelationship между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertRelationType
// goverter:extend ConvertRelationTypeToModel
type RelationshipConverter interface {
	// goverter:map Type RelationshipType
	ToModel(entity *domain.ProductRelationship) *RelationshipModel
	// goverter:map RelationshipType Type
	ToEntity(model *RelationshipModel) *domain.ProductRelationship
}

// APIKeyConverter преобразует сущности APIKey между domain и моделью PostgreSQL.
// goverter:converter
type APIKeyConverter interface {
	ToModel(entity *domain.APIKey) *APIKeyModel
	ToEntity(model *APIKeyModel) *domain.APIKey
	ToArrEntity(models []APIKeyModel) []domain.APIKey
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertStatusToModel
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertRawJSON(data []byte) json.RawMessage {
	return json.RawMessage(data)
}

// ConvertHistory разворачивает jsonb-историю пользователя.
// Повреждённая история трактуется как пустая: рекомендации
// деградируют до следующего шага каскада, а не падают.
func ConvertHistory(data []byte) []domain.HistoryEntry {
	if len(data) == 0 {
		return nil
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	return entries
}

func ConvertRelationType(s string) domain.RelationType {
	return domain.RelationType(s)
}

func ConvertRelationTypeToModel(t domain.RelationType) string {
	return string(t)
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertStatusToModel(s usecase.OutboxStatus) string {
	return string(s)
}
