package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Auth: AuthConfig{
			JWTSecret:       "0123456789abcdef0123456789abcdef",
			Issuer:          "acrp-api",
			Audience:        "acrp-clients",
			TokenTTLMinutes: 60,
		},
		RateLimit: RateLimitConfig{
			Store:           "memory",
			GlobalLimit:     100,
			GlobalPeriodSec: 60,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }, wantErr: true},
		{name: "weak secret", mutate: func(c *Config) { c.Auth.JWTSecret = "too-short" }, wantErr: true},
		{name: "missing issuer", mutate: func(c *Config) { c.Auth.Issuer = "" }, wantErr: true},
		{name: "missing audience", mutate: func(c *Config) { c.Auth.Audience = "" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.TokenTTLMinutes = 0 }, wantErr: true},
		{name: "zero global limit", mutate: func(c *Config) { c.RateLimit.GlobalLimit = 0 }, wantErr: true},
		{name: "zero global period", mutate: func(c *Config) { c.RateLimit.GlobalPeriodSec = 0 }, wantErr: true},
		{name: "redis store", mutate: func(c *Config) { c.RateLimit.Store = "redis" }, wantErr: false},
		{name: "unknown store", mutate: func(c *Config) { c.RateLimit.Store = "memcached" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("JWT_ISSUER", "acrp-api")
	t.Setenv("JWT_AUDIENCE", "acrp-clients")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadReadsRateRules(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_ISSUER", "acrp-api")
	t.Setenv("JWT_AUDIENCE", "acrp-clients")
	t.Setenv("RATE_LIMIT_GLOBAL_LIMIT", "25")
	t.Setenv("RATE_LIMIT_GLOBAL_PERIOD_SECONDS", "30")
	t.Setenv("RATE_LIMIT_LOGIN_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.EqualValues(t, 25, cfg.RateLimit.GlobalLimit)
	require.Equal(t, 30, cfg.RateLimit.GlobalPeriodSec)
	require.EqualValues(t, 5, cfg.RateLimit.LoginLimit)
	require.Equal(t, "memory", cfg.RateLimit.Store)
}
