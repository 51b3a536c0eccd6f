package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMH-ReservationService/internal/config"
	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/internal/infra/storage/credentials"
)

const testCookieName = "cmh_session"

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	store, err := credentials.NewStore([]config.TokenConfig{
		{Token: "token-alice", UserID: "u-1001", DisplayName: "Alice", Role: "member"},
		{Token: "token-staff", UserID: "u-2001", DisplayName: "Carol", Role: "staff"},
	})
	require.NoError(t, err)

	return NewResolver(testCookieName, store, nopLogger{})
}

func withSessionCookie(t *testing.T, r *http.Request, identity domain.CallerIdentity) {
	t.Helper()

	value, err := EncodeSessionToken(identity)
	require.NoError(t, err)
	r.AddCookie(&http.Cookie{Name: testCookieName, Value: value})
}

func TestResolver_SessionCookie(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	withSessionCookie(t, req, domain.CallerIdentity{ID: "u-42", DisplayName: "Dana", Role: domain.RoleMember})

	identity, err := resolver.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u-42", identity.ID)
	assert.Equal(t, "Dana", identity.DisplayName)
	assert.Equal(t, domain.RoleMember, identity.Role)
}

func TestResolver_SessionCookieUnknownRoleDefaultsToMember(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	withSessionCookie(t, req, domain.CallerIdentity{ID: "u-42", Role: domain.Role("superuser")})

	identity, err := resolver.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, identity.Role)
}

func TestResolver_BearerTokenHeader(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	req.Header.Set("Authorization", "Bearer token-staff")

	identity, err := resolver.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u-2001", identity.ID)
	assert.Equal(t, domain.RoleStaff, identity.Role)
}

func TestResolver_BearerTokenQueryParam(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations?token=token-alice", nil)

	identity, err := resolver.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u-1001", identity.ID)
}

func TestResolver_HeaderWinsOverQueryParam(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations?token=token-alice", nil)
	req.Header.Set("Authorization", "Bearer token-staff")

	identity, err := resolver.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u-2001", identity.ID)
}

func TestResolver_CookieWinsOverBearerToken(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	withSessionCookie(t, req, domain.CallerIdentity{ID: "u-42", Role: domain.RoleMember})
	req.Header.Set("Authorization", "Bearer token-staff")

	identity, err := resolver.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u-42", identity.ID)
}

func TestResolver_MalformedCookieFallsThroughToToken(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "%%%not-base64%%%"})
	req.Header.Set("Authorization", "Bearer token-alice")

	identity, err := resolver.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u-1001", identity.ID)
}

func TestResolver_UnknownTokenFailsClosed(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	req.Header.Set("Authorization", "Bearer no-such-token")

	_, err := resolver.Resolve(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolver_NoCredentials(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)

	_, err := resolver.Resolve(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolver_EmptySessionUserIDIsRejected(t *testing.T) {
	resolver := newTestResolver(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	withSessionCookie(t, req, domain.CallerIdentity{ID: "", Role: domain.RoleMember})

	_, err := resolver.Resolve(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestIdentityContextRoundTrip(t *testing.T) {
	identity := domain.CallerIdentity{ID: "u-7", DisplayName: "Bob", Role: domain.RoleStaff}

	ctx := ContextWithIdentity(context.Background(), identity)
	got, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, identity, got)

	_, ok = IdentityFromContext(context.Background())
	assert.False(t, ok)
}
