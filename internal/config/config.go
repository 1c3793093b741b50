package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines token signing and password hashing parameters.
type AuthConfig struct {
	JWTSecret       string
	Issuer          string
	Audience        string
	TokenTTLMinutes int
	BcryptCost      int
}

// RateLimitConfig is the rule table for request admission. The global
// rule applies to every route; the login rule, when enabled, adds a
// tighter bucket on the credential endpoints.
type RateLimitConfig struct {
	Store              string // "memory" or "redis"
	GlobalLimit        int64
	GlobalPeriodSec    int
	LoginLimit         int64
	LoginPeriodSec     int
	MemoryStoreEntries int
}

// MinSecretLength is the shortest signing secret accepted at startup.
const MinSecretLength = 32

// Load reads configuration from environment variables, applying defaults
// where possible. Startup-fatal problems (missing or weak signing secret,
// missing issuer/audience, empty rate rule table) surface as errors here
// and are never recovered from.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "acrp-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
			Issuer:          os.Getenv("JWT_ISSUER"),
			Audience:        os.Getenv("JWT_AUDIENCE"),
			TokenTTLMinutes: getEnvAsInt("JWT_EXPIRATION_IN_MINUTES", 60),
			BcryptCost:      getEnvAsInt("AUTH_BCRYPT_COST", 12),
		},
		RateLimit: RateLimitConfig{
			Store:              getEnv("RATE_LIMIT_STORE", "memory"),
			GlobalLimit:        int64(getEnvAsInt("RATE_LIMIT_GLOBAL_LIMIT", 100)),
			GlobalPeriodSec:    getEnvAsInt("RATE_LIMIT_GLOBAL_PERIOD_SECONDS", 60),
			LoginLimit:         int64(getEnvAsInt("RATE_LIMIT_LOGIN_LIMIT", 10)),
			LoginPeriodSec:     getEnvAsInt("RATE_LIMIT_LOGIN_PERIOD_SECONDS", 60),
			MemoryStoreEntries: getEnvAsInt("RATE_LIMIT_MEMORY_MAX_ENTRIES", 10000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the startup-fatal invariants.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < MinSecretLength {
		return fmt.Errorf("JWT_SECRET_KEY must be set and at least %d bytes", MinSecretLength)
	}
	if c.Auth.Issuer == "" {
		return fmt.Errorf("JWT_ISSUER must be set")
	}
	if c.Auth.Audience == "" {
		return fmt.Errorf("JWT_AUDIENCE must be set")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_IN_MINUTES must be positive")
	}
	if c.RateLimit.GlobalLimit <= 0 || c.RateLimit.GlobalPeriodSec <= 0 {
		return fmt.Errorf("global rate limit rule must have positive limit and period")
	}
	switch c.RateLimit.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("RATE_LIMIT_STORE must be \"memory\" or \"redis\", got %q", c.RateLimit.Store)
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
