package http

import (
	"net/http"

	_ "github.com/DRSN-tech/recs-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(recUC usecase.RecommendationUC, catalogUC usecase.CatalogUC,
	apiKeyUC usecase.APIKeyUC, relUC usecase.RelationshipUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/health", health)

		keyHandler := NewAPIKeyHandler(apiKeyUC, r.logger)
		v1.Route("/keys", func(keys chi.Router) {
			keys.Post("/", keyHandler.createKey)
			keys.Get("/", keyHandler.listKeys)
		})

		// Всё остальное закрыто API-ключом.
		v1.Group(func(protected chi.Router) {
			protected.Use(APIKeyAuth(apiKeyUC, r.logger))

			recHandler := NewRecommendationHandler(recUC, r.logger)
			registerRecommendationRoutes(protected, recHandler)

			catalogHandler := NewCatalogHandler(catalogUC, r.logger)
			registerCatalogRoutes(protected, catalogHandler)

			relHandler := NewRelationshipHandler(relUC, r.logger)
			protected.Post("/relationships", relHandler.createRelationship)
		})
	})
}

func registerRecommendationRoutes(router chi.Router, h *RecommendationHandler) {
	router.Route("/recommendations", func(rec chi.Router) {
		rec.Get("/", h.getRecommendations)
		rec.Get("/user/{userID}", h.getUserRecommendations)
		rec.Get("/cross-sell", h.getCrossSell)
		rec.Get("/up-sell", h.getUpSell)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/catalog", func(cat chi.Router) {
		cat.Get("/products", h.listProducts)
		cat.Get("/products/{productID}", h.getProduct)
		cat.Post("/sync", h.syncProducts)
	})
}

// health
//
//	@Summary	Проверка живости сервиса
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func health(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
