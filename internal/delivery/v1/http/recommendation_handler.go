package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type RecommendationHandler struct {
	recUC  usecase.RecommendationUC
	logger logger.Logger
}

func NewRecommendationHandler(recUC usecase.RecommendationUC, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recUC: recUC, logger: logger}
}

// getRecommendations
//
//	@Summary		Рекомендации товаров
//	@Description	Каскад: история пользователя, связанные товары, общая популярность
//	@Tags			recommendations
//	@Produce		json
//	@Param			user_id		query		string	false	"Внешний ID пользователя"
//	@Param			product_id	query		string	false	"Внешний ID товара-источника"
//	@Param			type		query		string	false	"cross-sell | up-sell | both"
//	@Param			limit		query		int		false	"Максимум рекомендаций (по умолчанию 3)"
//	@Param			price_range	query		string	false	"Фильтр цены вида min-max"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	usecase.RecommendationRes
//	@Failure		400	{object}	ErrorResponse
//	@Router			/recommendations [get]
func (h *RecommendationHandler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userID := query.Get("user_id")
	productID := query.Get("product_id")
	if userID == "" && productID == "" {
		WriteError(w, e.ErrRecommendationTarget)
		return
	}

	relType, err := domain.ParseRelationType(query.Get("type"))
	if err != nil {
		WriteError(w, err)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.recUC.GetRecommendations(r.Context(),
		usecase.NewRecommendationReq(userID, productID, relType, limit, query.Get("price_range")))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getUserRecommendations
//
//	@Summary		Рекомендации для пользователя
//	@Tags			recommendations
//	@Produce		json
//	@Param			userID	path		string	true	"Внешний ID пользователя"
//	@Param			limit	query		int		false	"Максимум рекомендаций"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	usecase.RecommendationRes
//	@Router			/recommendations/user/{userID} [get]
func (h *RecommendationHandler) getUserRecommendations(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.recUC.GetRecommendations(r.Context(),
		usecase.NewRecommendationReq(chi.URLParam(r, "userID"), "", domain.Both, limit, ""))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getCrossSell
//
//	@Summary		Cross-sell рекомендации к товару
//	@Tags			recommendations
//	@Produce		json
//	@Param			product_id	query		string	true	"Внешний ID товара-источника"
//	@Param			limit		query		int		false	"Максимум рекомендаций"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	usecase.RecommendationRes
//	@Failure		400	{object}	ErrorResponse
//	@Router			/recommendations/cross-sell [get]
func (h *RecommendationHandler) getCrossSell(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		WriteError(w, e.ErrProductIDRequired)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.recUC.GetCrossSellRecommendations(r.Context(), productID, limit)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getUpSell
//
//	@Summary		Up-sell рекомендации к товару
//	@Tags			recommendations
//	@Produce		json
//	@Param			product_id	query		string	true	"Внешний ID товара-источника"
//	@Param			price_range	query		string	false	"Фильтр цены вида min-max"
//	@Param			limit		query		int		false	"Максимум рекомендаций"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	usecase.RecommendationRes
//	@Failure		400	{object}	ErrorResponse
//	@Router			/recommendations/up-sell [get]
func (h *RecommendationHandler) getUpSell(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		WriteError(w, e.ErrProductIDRequired)
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.recUC.GetUpSellRecommendations(r.Context(), productID, r.URL.Query().Get("price_range"), limit)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
