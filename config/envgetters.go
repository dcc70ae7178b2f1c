package config

import (
	"os"

	"github.com/spf13/cast"
)

func GetPort() int {
	return SkillboardConfig.GetInt("port")
}

// GetSessionTtlHours returns the cookie lifetime, overridable through
// SKILLBOARD_SESSION_TTL_HOURS. Env values arrive as strings, cast copes.
func GetSessionTtlHours() int {
	return cast.ToInt(SkillboardConfig.Get("session_ttl_hours"))
}

func GetSessionSecret() string {
	if v := os.Getenv("SKILLBOARD_SESSION_SECRET"); v != "" {
		return v
	}
	return "skillboard-dev-secret"
}
