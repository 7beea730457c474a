package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewCatalogHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, logger: logger}
}

// listProducts
//
//	@Summary		Страница товаров внешнего каталога
//	@Tags			catalog
//	@Produce		json
//	@Param			limit	query		int	false	"Размер страницы (по умолчанию 50)"
//	@Param			page	query		int	false	"Номер страницы (с единицы)"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	map[string]interface{}
//	@Router			/catalog/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	limit := parsePageParam(r, "limit", 50)
	page := parsePageParam(r, "page", 1)

	res, err := h.catalogUC.ListCatalogProducts(r.Context(), &usecase.ListCatalogProductsReq{Limit: limit, Page: page})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"products": res.Products,
			"pagination": map[string]interface{}{
				"limit": limit,
				"page":  page,
				"total": res.Total,
			},
		},
	})
}

// getProduct
//
//	@Summary		Один товар внешнего каталога
//	@Tags			catalog
//	@Produce		json
//	@Param			productID	path		string	true	"Внешний ID товара"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Router			/catalog/products/{productID} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalogUC.GetCatalogProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]interface{}{"product": item},
	})
}

// syncProducts
//
//	@Summary		Синхронизация локального хранилища с внешним каталогом
//	@Tags			catalog
//	@Produce		json
//	@Param			limit	query		int	false	"Максимум товаров за прогон (по умолчанию 250)"
//	@Security		ApiKeyAuth
//	@Success		200	{object}	map[string]interface{}
//	@Router			/catalog/sync [post]
func (h *CatalogHandler) syncProducts(w http.ResponseWriter, r *http.Request) {
	limit := parsePageParam(r, "limit", 250)

	res, err := h.catalogUC.SyncProducts(r.Context(), limit)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]interface{}{"synced": res.Synced},
	})
}

// parsePageParam разбирает положительный числовой query-параметр,
// подставляя значение по умолчанию для пустых и некорректных значений.
func parsePageParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}

	return value
}
