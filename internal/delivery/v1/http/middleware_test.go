package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/internal/domain"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

type fakeAPIKeyUC struct {
	validKeys    map[string]bool // key -> active
	authenticate func(key string) error
}

func (f *fakeAPIKeyUC) CreateKey(context.Context, *usecase.CreateAPIKeyReq) (*domain.APIKey, error) {
	panic("not used")
}

func (f *fakeAPIKeyUC) ListKeys(context.Context) ([]domain.APIKey, error) {
	panic("not used")
}

func (f *fakeAPIKeyUC) Authenticate(_ context.Context, key string) error {
	if f.authenticate != nil {
		return f.authenticate(key)
	}
	active, ok := f.validKeys[key]
	if !ok {
		return e.ErrInvalidAPIKey
	}
	if !active {
		return e.ErrInactiveAPIKey
	}
	return nil
}

func authProbe(t *testing.T, uc usecase.APIKeyUC, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	APIKeyAuth(uc, logger.NewSlogLogger())(next).ServeHTTP(rec, req)

	return rec, nextCalled
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "error", body.Status)
	return body
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	uc := &fakeAPIKeyUC{validKeys: map[string]bool{}}

	rec, nextCalled := authProbe(t, uc, "")
	require.False(t, nextCalled)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "AUTH_NO_API_KEY", decodeError(t, rec).Error.Code)
}

func TestAPIKeyAuth_MalformedHeader(t *testing.T) {
	uc := &fakeAPIKeyUC{validKeys: map[string]bool{"secret": true}}

	// Без схемы Bearer ключ не извлекается.
	rec, nextCalled := authProbe(t, uc, "secret")
	require.False(t, nextCalled)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "AUTH_NO_API_KEY", decodeError(t, rec).Error.Code)
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	uc := &fakeAPIKeyUC{validKeys: map[string]bool{}}

	rec, nextCalled := authProbe(t, uc, "Bearer wrong")
	require.False(t, nextCalled)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "AUTH_INVALID_API_KEY", decodeError(t, rec).Error.Code)
}

func TestAPIKeyAuth_InactiveKey(t *testing.T) {
	uc := &fakeAPIKeyUC{validKeys: map[string]bool{"old": false}}

	rec, nextCalled := authProbe(t, uc, "Bearer old")
	require.False(t, nextCalled)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "AUTH_INACTIVE_API_KEY", decodeError(t, rec).Error.Code)
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	uc := &fakeAPIKeyUC{validKeys: map[string]bool{"secret": true}}

	rec, nextCalled := authProbe(t, uc, "bearer secret") // схема регистронезависима
	require.True(t, nextCalled)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuth_LookupFailureIsInternal(t *testing.T) {
	uc := &fakeAPIKeyUC{authenticate: func(string) error {
		return e.ErrInternalServerError
	}}

	rec, nextCalled := authProbe(t, uc, "Bearer any")
	require.False(t, nextCalled)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Error.Code)
}
