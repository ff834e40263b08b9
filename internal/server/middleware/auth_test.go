package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	subject string
	err     error
}

func (v *stubValidator) ValidateToken(tokenString string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	return v.subject, nil
}

func newAuthedHandler(t *testing.T, validator TokenValidator) (http.Handler, *string) {
	t.Helper()
	var seenSubject string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := GetSubject(r)
		require.NoError(t, err)
		seenSubject = subject
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(validator)(inner), &seenSubject
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	handler, seenSubject := newAuthedHandler(t, &stubValidator{subject: "operator"})

	req := httptest.NewRequest(http.MethodGet, "/v1/analyses", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "operator", *seenSubject)
}

func TestAuthMiddlewareCaseInsensitiveBearer(t *testing.T) {
	handler, _ := newAuthedHandler(t, &stubValidator{subject: "operator"})

	req := httptest.NewRequest(http.MethodGet, "/v1/analyses", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		validator TokenValidator
	}{
		{name: "missing header", header: "", validator: &stubValidator{subject: "operator"}},
		{name: "wrong scheme", header: "Basic abc123", validator: &stubValidator{subject: "operator"}},
		{name: "no token", header: "Bearer", validator: &stubValidator{subject: "operator"}},
		{name: "invalid token", header: "Bearer bad-token", validator: &stubValidator{err: errors.New("invalid token")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newAuthedHandler(t, tt.validator)

			req := httptest.NewRequest(http.MethodGet, "/v1/analyses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetSubjectMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetSubject(req)
	assert.Error(t, err)
}
