package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(token string) *http.Request {
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	return req
}

func TestJWTProviderRoundTrip(t *testing.T) {
	provider := NewJWTProvider([]byte("test-secret"))

	token, err := provider.IssueToken(&Identity{ID: "ext-1", Email: "a@b.com"}, time.Hour)
	require.NoError(t, err)

	identity := provider.CurrentUser(requestWithCookie(token))
	require.NotNil(t, identity)
	assert.Equal(t, "ext-1", identity.ID)
	assert.Equal(t, "a@b.com", identity.Email)
}

func TestJWTProviderNoCookie(t *testing.T) {
	provider := NewJWTProvider([]byte("test-secret"))
	assert.Nil(t, provider.CurrentUser(httptest.NewRequest("GET", "/", nil)))
}

func TestJWTProviderWrongSecret(t *testing.T) {
	issuer := NewJWTProvider([]byte("secret-a"))
	verifier := NewJWTProvider([]byte("secret-b"))

	token, err := issuer.IssueToken(&Identity{ID: "ext-1"}, time.Hour)
	require.NoError(t, err)

	assert.Nil(t, verifier.CurrentUser(requestWithCookie(token)))
}

func TestJWTProviderExpiredToken(t *testing.T) {
	provider := NewJWTProvider([]byte("test-secret"))

	token, err := provider.IssueToken(&Identity{ID: "ext-1"}, -time.Minute)
	require.NoError(t, err)

	assert.Nil(t, provider.CurrentUser(requestWithCookie(token)))
}

func TestJWTProviderGarbageToken(t *testing.T) {
	provider := NewJWTProvider([]byte("test-secret"))
	assert.Nil(t, provider.CurrentUser(requestWithCookie("not-a-token")))
}
