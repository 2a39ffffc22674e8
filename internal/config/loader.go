package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads the YAML config at path and overlays APP_* environment
// variables (dots become underscores, e.g. APP_UPSTREAM_API_KEY).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	setDefaults(v)

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Fixture fallback is a development convenience; refuse it in prod so
	// a copy-pasted config cannot silently serve fake data.
	if config.App.Env == "prod" && config.Upstream.MockFallback {
		return nil, fmt.Errorf("upstream.mock_fallback must not be enabled in prod")
	}

	// Logger config validates itself after defaulting in logger.New, so
	// only the sections owned here are checked.
	v10 := validator.New()
	if err := v10.Struct(&config.App); err != nil {
		return nil, fmt.Errorf("app config validation failed: %w", err)
	}
	if err := v10.Struct(&config.Upstream); err != nil {
		return nil, fmt.Errorf("upstream config validation failed: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "barcarate")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.port", 8080)

	v.SetDefault("upstream.base_url", "https://v3.football.api-sports.io")
	// Empty default keeps the key visible to viper so the APP_UPSTREAM_API_KEY
	// env override is picked up even when the file omits it.
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.league_id", 140)
	v.SetDefault("upstream.season", 2024)
	v.SetDefault("upstream.squad_team_id", 529)
	v.SetDefault("upstream.timeout_seconds", 10)
	v.SetDefault("upstream.request_interval_millis", 200)
	v.SetDefault("upstream.mock_fallback", false)
}
