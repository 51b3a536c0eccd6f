package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMH-ReservationService/internal/auth"
	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

type stubResolver struct {
	identity domain.CallerIdentity
	err      error
}

func (s *stubResolver) Resolve(ctx context.Context, req *http.Request) (domain.CallerIdentity, error) {
	return s.identity, s.err
}

func TestAuth_InjectsIdentity(t *testing.T) {
	identity := domain.CallerIdentity{ID: "u-1", DisplayName: "Alice", Role: domain.RoleMember}
	resolver := &stubResolver{identity: identity}

	var got domain.CallerIdentity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	Auth(resolver, nopLogger{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestAuth_FailsClosed(t *testing.T) {
	resolver := &stubResolver{err: auth.ErrUnauthenticated}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	Auth(resolver, nopLogger{})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
