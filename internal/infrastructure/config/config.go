package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const minJWTSecretLength = 32

type Config struct {
	Port     string `env:"PORT,      default=4000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRES_IN, default=8h"`

	CookieDomain string `env:"COOKIE_DOMAIN"`
	CookieSecure bool   `env:"COOKIE_SECURE, default=false"`

	AppVersion string `env:"APP_VERSION, default=0.0.0"`
	AppBuild   string `env:"APP_BUILD"`
	AppCommit  string `env:"APP_COMMIT"`

	// Seed credentials for the bootstrap admin; only consulted when the
	// user table is empty.
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Database DatabaseConfig
	Redis    RedisConfig
	Zoho     ZohoConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/launchpad?sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ZohoConfig struct {
	ServiceURL  string `env:"ZOHO_SERVICE_URL, default=http://localhost:5000"`
	ForwardAuth bool   `env:"ZOHO_FORWARD_AUTH, default=false"`
}

// IsDevelopment reports whether the process runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Load reads configuration from environment variables and validates the
// parts that would otherwise fail at first use.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(cfg.JWTSecret) < minJWTSecretLength {
		return nil, fmt.Errorf("config: JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}
	return &cfg, nil
}
