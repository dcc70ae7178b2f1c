package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config represents an alias to viper config
type Config = viper.Viper

// SkillboardConfig is the process-wide configuration, overridable through
// SKILLBOARD_* environment variables.
var SkillboardConfig = New()

// New returns a new pointer to the config
func New() *Config {
	v := viper.New()
	v.SetEnvPrefix("SKILLBOARD")
	v.AutomaticEnv()
	v.SetDefault("port", 3000)
	v.SetDefault("session_ttl_hours", 12)
	v.SetDefault("build_date", "null")
	v.SetDefault("deployed_at", time.Now().UTC().Format(time.RFC3339))
	return v
}
