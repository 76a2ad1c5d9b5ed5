package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"

	// MaxPayloadLimit is the largest accepted MAX_PAYLOAD_SIZE.
	MaxPayloadLimit = 64 << 20

	InvalidateOwner = "owner"
	InvalidateAll   = "global"
)

type DB struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	DbHOST     string `env:"DB_HOST" envDefault:"localhost"`
	DbPORT     string `env:"DB_PORT" envDefault:"5432"`
	DbUSER     string `env:"DB_USER" envDefault:"postgres"`
	DbPASSWORD string `env:"DB_PASSWORD" envDefault:"password"`
	DbNAME     string `env:"DB_NAME" envDefault:"microblog"`
	DbSSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"microblog.db"`
}

type Cache struct {
	TTL          time.Duration `env:"POST_CACHE_TTL" envDefault:"300s"`
	Size         int           `env:"POST_CACHE_SIZE" envDefault:"1000"`
	Invalidation string        `env:"POST_CACHE_INVALIDATION" envDefault:"owner"`
}

type Config struct {
	ServerPort          int           `env:"SERVER_PORT" envDefault:"8080"`
	DB                  DB
	Cache               Cache
	JWTSecretKey        string        `env:"JWT_SECRET_KEY"`
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION" envDefault:"1h"`
	MaxPayloadSize      int           `env:"MAX_PAYLOAD_SIZE" envDefault:"1048576"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if c.AccessTokenDuration <= 0 {
		return errors.New("ACCESS_TOKEN_DURATION must be positive")
	}
	if c.MaxPayloadSize <= 0 || c.MaxPayloadSize > MaxPayloadLimit {
		return fmt.Errorf("MAX_PAYLOAD_SIZE must be between 1 and %d", MaxPayloadLimit)
	}

	switch c.DB.Driver {
	case DriverPostgres, DriverPgx, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}

	if c.Cache.TTL <= 0 {
		return errors.New("POST_CACHE_TTL must be positive")
	}
	if c.Cache.Size <= 0 {
		return errors.New("POST_CACHE_SIZE must be positive")
	}
	switch c.Cache.Invalidation {
	case InvalidateOwner, InvalidateAll:
	default:
		return fmt.Errorf("unsupported POST_CACHE_INVALIDATION %q", c.Cache.Invalidation)
	}

	return nil
}
