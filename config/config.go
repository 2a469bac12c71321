package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Storage  StorageConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig

	// Auth
	JWT       JWTConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig

	// Task tracker specifics
	Cache    CacheConfig
	Rollover RolloverConfig

	// LLM rating estimator
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

type CORSConfig struct {
	AllowedOrigins []string
}

type StorageConfig struct {
	Driver string // postgres | sqlite
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SQLiteConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type AuthConfig struct {
	AppPassword string
}

type RateLimitConfig struct {
	TokenPerMin int
}

// CacheConfig configures the task-list result cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// RolloverConfig configures the daily rollover job.
type RolloverConfig struct {
	Enabled  bool
	Timezone string
	RunAt    time.Duration // offset after local midnight
}

type LLMConfig struct {
	Yandex YandexConfig
}

type YandexConfig struct {
	Enabled       bool
	CompletionURL string
	AuthURL       string
	FolderID      string
	OAuthToken    string
	Model         string
	Temperature   float64
	MaxTokens     int
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
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
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = expandEnvVar(viper.GetString("postgres.password"))
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.SQLite.Path = viper.GetString("sqlite.path")

	// Auth
	cfg.JWT.Secret = expandEnvVar(viper.GetString("jwt.secret"))
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")
	cfg.Auth.AppPassword = expandEnvVar(viper.GetString("auth.app_password"))
	if pwd := viper.GetString("app_password"); pwd != "" {
		cfg.Auth.AppPassword = pwd
	}
	cfg.RateLimit.TokenPerMin = viper.GetInt("rate_limit.token_per_min")

	// Task tracker specifics
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Rollover.Enabled = viper.GetBool("rollover.enabled")
	cfg.Rollover.Timezone = viper.GetString("rollover.timezone")
	cfg.Rollover.RunAt = viper.GetDuration("rollover.run_at")

	// LLM
	y := &cfg.LLM.Yandex
	y.Enabled = viper.GetBool("llm.yandex.enabled")
	y.CompletionURL = viper.GetString("llm.yandex.completion_url")
	y.AuthURL = viper.GetString("llm.yandex.auth_url")
	y.FolderID = expandEnvVar(viper.GetString("llm.yandex.folder_id"))
	y.OAuthToken = expandEnvVar(viper.GetString("llm.yandex.oauth_token"))
	y.Model = viper.GetString("llm.yandex.model")
	y.Temperature = viper.GetFloat64("llm.yandex.temperature")
	y.MaxTokens = viper.GetInt("llm.yandex.max_tokens")
	y.Timeout = viper.GetDuration("llm.yandex.timeout")
	y.RetryAttempts = viper.GetInt("llm.yandex.retry_attempts")
	y.RetryDelay = viper.GetDuration("llm.yandex.retry_delay")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")

	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "tasks")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("sqlite.path", "tasks.db")

	viper.SetDefault("jwt.ttl", "24h")
	viper.SetDefault("rate_limit.token_per_min", 10)

	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "10m")
	viper.SetDefault("rollover.enabled", true)
	viper.SetDefault("rollover.timezone", "Europe/Moscow")
	viper.SetDefault("rollover.run_at", "5s")

	// LLM defaults
	viper.SetDefault("llm.yandex.enabled", false)
	viper.SetDefault("llm.yandex.model", "yandexgpt-lite")
	viper.SetDefault("llm.yandex.temperature", 0.3)
	viper.SetDefault("llm.yandex.max_tokens", 500)
	viper.SetDefault("llm.yandex.timeout", "30s")
	viper.SetDefault("llm.yandex.retry_attempts", 3)
	viper.SetDefault("llm.yandex.retry_delay", "1s")
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	if c.Auth.AppPassword == "" {
		return fmt.Errorf("auth.app_password is required")
	}
	if c.Rollover.RunAt < 0 || c.Rollover.RunAt >= 24*time.Hour {
		return fmt.Errorf("rollover.run_at must be within a day, got %s", c.Rollover.RunAt)
	}
	if c.LLM.Yandex.Enabled && (c.LLM.Yandex.FolderID == "" || c.LLM.Yandex.OAuthToken == "") {
		return fmt.Errorf("llm.yandex requires folder_id and oauth_token when enabled")
	}
	return nil
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

// splitList splits a comma-separated value, since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
