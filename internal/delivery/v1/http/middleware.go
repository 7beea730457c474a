package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

// APIKeyAuth закрывает маршруты рекомендаций и каталога Bearer-ключом.
func APIKeyAuth(apiKeyUC usecase.APIKeyUC, logger logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := bearerToken(r)
			if key == "" {
				WriteError(w, e.ErrNoAPIKey)
				return
			}

			if err := apiKeyUC.Authenticate(r.Context(), key); err != nil {
				if !errors.Is(err, e.ErrInvalidAPIKey) && !errors.Is(err, e.ErrInactiveAPIKey) {
					logger.Warnf("api key lookup failed: %v", err)
				}
				WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
