package config

import (
	"time"

	"github.com/avilanova/barcarate/internal/logger"
)

// AppConfig identifies the deployment and the listening port.
type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env" validate:"oneof=dev staging prod"`
	Port int    `mapstructure:"port" validate:"gte=1,lte=65535"`
}

// UpstreamConfig carries the football data provider settings.
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// APIKey comes from APP_UPSTREAM_API_KEY; it never lives in the file.
	APIKey      string `mapstructure:"api_key"`
	LeagueID    int    `mapstructure:"league_id" validate:"gt=0"`
	Season      int    `mapstructure:"season" validate:"gt=2000"`
	SquadTeamID int64  `mapstructure:"squad_team_id" validate:"gt=0"`
	// TimeoutSeconds bounds a single provider request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gt=0"`
	// RequestIntervalMillis spaces provider calls (free tier rate limit).
	RequestIntervalMillis int `mapstructure:"request_interval_millis" validate:"gte=0"`
	// MockFallback substitutes fixture data when the provider fails.
	// Guarded at load time so production cannot enable it.
	MockFallback bool `mapstructure:"mock_fallback"`
}

// Timeout returns the provider request timeout as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// RequestInterval returns the spacing between provider calls.
func (u UpstreamConfig) RequestInterval() time.Duration {
	return time.Duration(u.RequestIntervalMillis) * time.Millisecond
}

// Config is the root application configuration.
type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Upstream UpstreamConfig      `mapstructure:"upstream"`
}
