package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type APIKeyHandler struct {
	apiKeyUC usecase.APIKeyUC
	logger   logger.Logger
}

func NewAPIKeyHandler(apiKeyUC usecase.APIKeyUC, logger logger.Logger) *APIKeyHandler {
	return &APIKeyHandler{apiKeyUC: apiKeyUC, logger: logger}
}

type createKeyRequest struct {
	Name   string `json:"name"`
	Active *bool  `json:"active"`
}

type keyResponse struct {
	ID     int64  `json:"id"`
	Key    string `json:"key"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// createKey
//
//	@Summary		Выпуск нового API-ключа
//	@Tags			keys
//	@Accept			json
//	@Produce		json
//	@Param			body	body		createKeyRequest	true	"Имя ключа"
//	@Success		201		{object}	keyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/keys [post]
func (h *APIKeyHandler) createKey(w http.ResponseWriter, r *http.Request) {
	var req createKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	key, err := h.apiKeyUC.CreateKey(r.Context(), usecase.NewCreateAPIKeyReq(req.Name, active))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, keyResponse{
		ID:     key.ID,
		Key:    key.Key,
		Name:   key.Name,
		Active: key.Active,
	})
}

// listKeys
//
//	@Summary		Список выпущенных API-ключей
//	@Tags			keys
//	@Produce		json
//	@Success		200	{array}	keyResponse
//	@Router			/keys [get]
func (h *APIKeyHandler) listKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.apiKeyUC.ListKeys(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]keyResponse, 0, len(keys))
	for _, key := range keys {
		res = append(res, keyResponse{
			ID:     key.ID,
			Key:    key.Key,
			Name:   key.Name,
			Active: key.Active,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}
