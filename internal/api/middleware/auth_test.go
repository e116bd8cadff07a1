package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func authProtected(secret string) (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return APIKeyAuth(secret)(next), &reached
}

func TestAPIKeyAuthAcceptsValidBearerToken(t *testing.T) {
	h, reached := authProtected("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestAPIKeyAuthRejectsBadCredentials(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic s3cret"},
		{"wrong key", "Bearer nope"},
		{"empty key", "Bearer "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, reached := authProtected("s3cret")

			req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, *reached)
		})
	}
}

func TestAPIKeyAuthSkipsPreflight(t *testing.T) {
	h, reached := authProtected("s3cret")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/assessments", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestGetAPIKeyFromContext(t *testing.T) {
	var seen string
	h := APIKeyAuth("s3cret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetAPIKey(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "s3cret", seen)
}
