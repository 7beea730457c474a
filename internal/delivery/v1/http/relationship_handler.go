package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type RelationshipHandler struct {
	relUC  usecase.RelationshipUC
	logger logger.Logger
}

func NewRelationshipHandler(relUC usecase.RelationshipUC, logger logger.Logger) *RelationshipHandler {
	return &RelationshipHandler{relUC: relUC, logger: logger}
}

type createRelationshipRequest struct {
	SourceProductID  string `json:"source_product_id"`
	RelatedProductID string `json:"related_product_id"`
	Type             string `json:"type"`
	Strength         int32  `json:"strength"`
}

// createRelationship
//
//	@Summary		Кураторская связь между товарами
//	@Description	Создаёт направленное ребро cross-sell или up-sell по внешним ID товаров
//	@Tags			relationships
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createRelationshipRequest	true	"Описание связи"
//	@Security		ApiKeyAuth
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	ErrorResponse
//	@Router			/relationships [post]
func (h *RelationshipHandler) createRelationship(w http.ResponseWriter, r *http.Request) {
	var req createRelationshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.SourceProductID == "" || req.RelatedProductID == "" {
		WriteError(w, e.ErrProductIDRequired)
		return
	}

	rel, err := h.relUC.CreateRelationship(r.Context(), usecase.NewCreateRelationshipReq(
		req.SourceProductID, req.RelatedProductID, domain.RelationType(req.Type), req.Strength))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"id":                 rel.ID,
			"source_product_id":  rel.SourceProductID,
			"related_product_id": rel.RelatedProductID,
			"type":               rel.Type,
			"strength":           rel.Strength,
		},
	})
}
