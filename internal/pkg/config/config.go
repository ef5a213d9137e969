package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Storage  StorageConfig
	LLM      LLMConfig
	Search   SearchConfig
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     int    `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	Database string `env:"POSTGRES_DB,       default=recruiting"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

// DSN renders the gorm/pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, c.SSLMode)
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	// Root is the directory backing the object store.
	Root string `env:"STORAGE_ROOT, default=./data/storage"`
	// BaseURL prefixes public object URLs.
	BaseURL string `env:"STORAGE_BASE_URL, default=http://localhost:8080/storage"`
}

type LLMConfig struct {
	// APIKey authenticates against the Gemini API. Required for resume parsing.
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-2.5-flash"`
}

type SearchConfig struct {
	// Google Custom Search credentials for LinkedIn profile search.
	APIKey string `env:"GOOGLE_API_KEY"`
	CSEID  string `env:"GOOGLE_CSE_ID"`
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory is applied first when present, so
// local development does not need exported variables.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
