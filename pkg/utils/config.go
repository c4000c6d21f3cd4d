package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// AuthConfig describes the external token issuer. Tokens are only verified here.
type AuthConfig struct {
	Issuer   string
	Audience string
	JWKSURL  string
	JWKSTTL  time.Duration
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

// LoadConfig reads the .env file at path (if it exists) and overlays the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "casting-agency")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("AUTH_JWKS_TTL_MINUTES", 15)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			Issuer:   v.GetString("AUTH_ISSUER"),
			Audience: v.GetString("AUTH_AUDIENCE"),
			JWKSURL:  v.GetString("AUTH_JWKS_URL"),
			JWKSTTL:  time.Duration(v.GetInt("AUTH_JWKS_TTL_MINUTES")) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
	}

	if config.Auth.Issuer == "" {
		return nil, errors.New("AUTH_ISSUER is required")
	}
	if config.Auth.Audience == "" {
		return nil, errors.New("AUTH_AUDIENCE is required")
	}

	// Auth0-style issuers end with a slash and publish keys under .well-known
	if config.Auth.JWKSURL == "" {
		config.Auth.JWKSURL = strings.TrimSuffix(config.Auth.Issuer, "/") + "/.well-known/jwks.json"
	}

	return config, nil
}
