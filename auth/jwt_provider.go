package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTProvider resolves identities from a signed session cookie. Token
// issuance lives next to verification so the login controller and the
// provider can never drift on claims.
type JWTProvider struct {
	Secret     []byte
	CookieName string
}

func NewJWTProvider(secret []byte) *JWTProvider {
	return &JWTProvider{Secret: secret, CookieName: SessionCookieName}
}

func (p *JWTProvider) CurrentUser(r *http.Request) *Identity {
	cookie, err := r.Cookie(p.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.Secret, nil
	})
	if err != nil || !token.Valid {
		slog.Debug("session cookie did not verify", "error", err)
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		slog.Debug("session token has no subject claim")
		return nil
	}
	email, _ := claims["email"].(string)
	return &Identity{ID: sub, Email: email}
}

// IssueToken signs a session token for an identity. Used by the login
// controller when handing out the session cookie.
func (p *JWTProvider) IssueToken(identity *Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   identity.ID,
		"email": identity.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	return token.SignedString(p.Secret)
}
