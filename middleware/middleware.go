package middleware

import (
	"log"
	"log/slog"
	"os"

	"github.com/audioskills/skillboard/auth"
)

// GetIdentityProvider picks the identity provider from the environment. JWT
// cookie auth is the production mode; noop auth answers every request with a
// fixed admin identity and exists for local development only.
func GetIdentityProvider() auth.Provider {
	if _, ok := os.LookupEnv("SKILLBOARD_JWT_AUTH"); ok {
		slog.Info("Using JWT cookie identity provider")
		secret := os.Getenv("SKILLBOARD_AUTH_SECRET")
		if secret == "" {
			log.Fatalf("SKILLBOARD_JWT_AUTH is set but SKILLBOARD_AUTH_SECRET is empty")
		}
		return auth.NewJWTProvider([]byte(secret))
	} else if _, ok := os.LookupEnv("SKILLBOARD_NOOP_AUTH"); ok {
		slog.Warn("Using noop identity provider, every request resolves to the dev admin")
		return &auth.StaticProvider{Identity: &auth.Identity{
			ID:    os.Getenv("SKILLBOARD_NOOP_AUTH_USER_ID"),
			Email: "dev-admin@skillboard.local",
		}}
	}
	log.Fatalf("Please specify one of SKILLBOARD_JWT_AUTH or SKILLBOARD_NOOP_AUTH")
	return nil
}
