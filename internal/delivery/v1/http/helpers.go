package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/recs-backend/pkg/e"
)

// Коды ошибок аутентификации в теле ответа.
const (
	codeNoAPIKey       = "AUTH_NO_API_KEY"
	codeInvalidAPIKey  = "AUTH_INVALID_API_KEY"
	codeInactiveAPIKey = "AUTH_INACTIVE_API_KEY"
	codeBadRequest     = "BAD_REQUEST"
	codeNotFound       = "NOT_FOUND"
	codeInternalError  = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Status string    `json:"status"`
	Error  ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Status: "error",
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	}
}

// ToHTTPResponse переводит ошибку слоя usecase в HTTP-статус, код и сообщение.
// Неизвестные ошибки не просачиваются наружу и отдаются как 500.
func ToHTTPResponse(err error) (int, string, string) {
	switch {
	case errors.Is(err, e.ErrNoAPIKey):
		return http.StatusUnauthorized, codeNoAPIKey, e.ErrNoAPIKey.Error()
	case errors.Is(err, e.ErrInvalidAPIKey):
		return http.StatusUnauthorized, codeInvalidAPIKey, e.ErrInvalidAPIKey.Error()
	case errors.Is(err, e.ErrInactiveAPIKey):
		return http.StatusUnauthorized, codeInactiveAPIKey, e.ErrInactiveAPIKey.Error()
	case errors.Is(err, e.ErrRecommendationTarget):
		return http.StatusBadRequest, codeBadRequest, e.ErrRecommendationTarget.Error()
	case errors.Is(err, e.ErrProductIDRequired):
		return http.StatusBadRequest, codeBadRequest, e.ErrProductIDRequired.Error()
	case errors.Is(err, e.ErrInvalidLimit):
		return http.StatusBadRequest, codeBadRequest, e.ErrInvalidLimit.Error()
	case errors.Is(err, e.ErrInvalidRelationType):
		return http.StatusBadRequest, codeBadRequest, e.ErrInvalidRelationType.Error()
	case errors.Is(err, e.ErrAPIKeyNameRequired):
		return http.StatusBadRequest, codeBadRequest, e.ErrAPIKeyNameRequired.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, codeBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, codeNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCatalogProductNotFound):
		return http.StatusNotFound, codeNotFound, e.ErrCatalogProductNotFound.Error()
	default:
		return http.StatusInternalServerError, codeInternalError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status, code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseLimit разбирает query-параметр limit.
// Пустое значение отдаёт 0: значение по умолчанию подставляет слой usecase.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, e.ErrInvalidLimit
	}

	return limit, nil
}

// bearerToken достаёт ключ из заголовка Authorization.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
