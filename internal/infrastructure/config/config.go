package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=*"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=postgres"`
	Password string `env:"DB_PASSWORD"`
	Database string `env:"DB_NAME,     default=room_booking"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`

	// Pool bounds are passed through to database/sql unchanged.
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// DSN renders the Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
