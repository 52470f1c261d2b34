package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "FEEDBACKLINK"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, kept in one place so tests and docs agree.
const (
	EnvAppEnv     = "FEEDBACKLINK_APP_ENV"
	EnvPort       = "FEEDBACKLINK_APP_PORT"
	EnvLogLevel   = "FEEDBACKLINK_LOG_LEVEL"
	EnvJWTSecret  = "FEEDBACKLINK_JWT_SECRET"
	EnvJWTIssuer  = "FEEDBACKLINK_JWT_ISSUER"
	EnvJWTExpMins = "FEEDBACKLINK_JWT_EXPIRATION_MINUTES"
	EnvSeedDemo   = "FEEDBACKLINK_SEED_DEMO"
)

type Config struct {
	App  AppConfig
	JWT  JWTConfig
	CORS CORSConfig
	Seed SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FEEDBACKLINK_APP_ENV" default:"dev"`
	Port         string `envconfig:"FEEDBACKLINK_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FEEDBACKLINK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FEEDBACKLINK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type JWTConfig struct {
	Secret            string `envconfig:"FEEDBACKLINK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FEEDBACKLINK_JWT_ISSUER" default:"feedbacklink"`
	ExpirationMinutes int    `envconfig:"FEEDBACKLINK_JWT_EXPIRATION_MINUTES" default:"480"`
}

// AccessTokenTTL returns the access token lifetime; sessions expire with it.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"FEEDBACKLINK_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type SeedConfig struct {
	// Demo controls whether the sample directory and feedback history are
	// loaded at startup. The API is empty without it.
	Demo bool `envconfig:"FEEDBACKLINK_SEED_DEMO" default:"true"`
}
