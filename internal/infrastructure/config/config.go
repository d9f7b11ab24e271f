package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	HashArgon2id = "argon2id"
	HashSHA256   = "sha256"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session  SessionConfig
	Password PasswordConfig
	Mongo    MongoConfig
	Redis    RedisConfig

	EventWorkers int `env:"EVENT_WORKERS, default=4"`
}

type SessionConfig struct {
	Secret      string        `env:"SESSION_SECRET, required"`
	TTL         time.Duration `env:"SESSION_TTL,          default=2h"`
	RememberTTL time.Duration `env:"SESSION_REMEMBER_TTL, default=720h"`
}

type PasswordConfig struct {
	Pepper string `env:"PASSWORD_PEPPER"`
	Hash   string `env:"PASSWORD_HASH, default=argon2id"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tradeco"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads a .env file when present, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return Process(ctx, envconfig.OsLookuper())
}

// Process fills a Config from lookuper and validates it.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("SESSION_SECRET must not be blank")
	}
	switch c.Password.Hash {
	case HashArgon2id, HashSHA256:
	default:
		return fmt.Errorf("PASSWORD_HASH must be %q or %q, got %q", HashArgon2id, HashSHA256, c.Password.Hash)
	}
	if c.Session.TTL <= 0 || c.Session.RememberTTL <= 0 {
		return errors.New("session lifetimes must be positive")
	}
	return nil
}
