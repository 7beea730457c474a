package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DRSN-tech/recs-backend/pkg/e"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{e.ErrNoAPIKey, http.StatusUnauthorized, "AUTH_NO_API_KEY"},
		{e.ErrInvalidAPIKey, http.StatusUnauthorized, "AUTH_INVALID_API_KEY"},
		{e.ErrInactiveAPIKey, http.StatusUnauthorized, "AUTH_INACTIVE_API_KEY"},
		{e.ErrRecommendationTarget, http.StatusBadRequest, "BAD_REQUEST"},
		{e.ErrInvalidLimit, http.StatusBadRequest, "BAD_REQUEST"},
		{e.ErrInvalidRelationType, http.StatusBadRequest, "BAD_REQUEST"},
		{e.ErrProductNotFound, http.StatusNotFound, "NOT_FOUND"},
		{e.ErrCatalogProductNotFound, http.StatusNotFound, "NOT_FOUND"},
		{e.Wrap("SomeUseCase.Method", e.ErrInvalidLimit), http.StatusBadRequest, "BAD_REQUEST"},
		{e.ErrCatalogUnavailable, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		status, code, _ := ToHTTPResponse(tt.err)
		require.Equal(t, tt.status, status, "error %v", tt.err)
		require.Equal(t, tt.code, code, "error %v", tt.err)
	}
}

func TestParseLimit(t *testing.T) {
	limitReq := func(raw string) *http.Request {
		target := "/api/v1/recommendations"
		if raw != "" {
			target += "?limit=" + raw
		}
		return httptest.NewRequest(http.MethodGet, target, nil)
	}

	limit, err := parseLimit(limitReq(""))
	require.NoError(t, err)
	require.Zero(t, limit)

	limit, err = parseLimit(limitReq("5"))
	require.NoError(t, err)
	require.Equal(t, 5, limit)

	_, err = parseLimit(limitReq("0"))
	require.ErrorIs(t, err, e.ErrInvalidLimit)

	_, err = parseLimit(limitReq("ten"))
	require.ErrorIs(t, err, e.ErrInvalidLimit)
}

func TestBearerToken(t *testing.T) {
	tokenReq := func(header string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		return req
	}

	require.Equal(t, "abc", bearerToken(tokenReq("Bearer abc")))
	require.Equal(t, "abc", bearerToken(tokenReq("bearer abc")))
	require.Empty(t, bearerToken(tokenReq("")))
	require.Empty(t, bearerToken(tokenReq("abc")))
	require.Empty(t, bearerToken(tokenReq("Basic abc")))
}
