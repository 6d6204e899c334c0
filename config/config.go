package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Relationship OS specifics
	Timezone       string
	Admin          AdminConfig
	Beta           BetaConfig
	Sync           SyncConfig
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

// AdminConfig configures the admin surface (beta whitelist, analytics summary).
type AdminConfig struct {
	APIKey string
}

// BetaConfig configures the beta whitelist gate.
type BetaConfig struct {
	Enabled  bool
	CacheTTL string // whitelist decision cache TTL, e.g. "2m"
}

// SyncConfig configures the sync-agent push endpoint.
type SyncConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetString("postgres.conn_max_lifetime")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Relationship OS specifics
	cfg.Timezone = viper.GetString("timezone")

	cfg.Admin.APIKey = expandEnvVar(viper.GetString("admin.api_key"))
	if adminKey := viper.GetString("admin_api_key"); adminKey != "" {
		cfg.Admin.APIKey = adminKey
	}

	cfg.Beta.Enabled = viper.GetBool("beta.enabled")
	cfg.Beta.CacheTTL = viper.GetString("beta.cache_ttl")

	cfg.Sync.Enabled = viper.GetBool("sync.enabled")
	cfg.Sync.Secret = expandEnvVar(viper.GetString("sync.secret"))
	if syncSecret := viper.GetString("sync_secret"); syncSecret != "" {
		cfg.Sync.Secret = syncSecret
	}
	cfg.Sync.RateLimitPerMin = viper.GetInt("sync.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("sync.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Sync.AllowedIPs = ips

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("timezone", "UTC")

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")

	viper.SetDefault("beta.enabled", true)
	viper.SetDefault("beta.cache_ttl", "2m")

	viper.SetDefault("sync.enabled", true)
	viper.SetDefault("sync.rate_limit_per_min", 60)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
