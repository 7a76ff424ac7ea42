package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	MinIO    MinIOConfig
	OpenAI   OpenAIConfig
	Library  LibraryConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint        string // localhost:9000
	AccessKey       string
	SecretKey       string
	DocumentsBucket string // uploaded PDFs
	CoversBucket    string // cover images
	UseSSL          bool
}

type OpenAIConfig struct {
	BaseURL string // https://api.openai.com/v1
	APIKey  string
	Model   string
}

type LibraryConfig struct {
	// WriterEmail is the single identity allowed to mutate the catalog.
	WriterEmail string
	// IdentitySecret verifies identity tokens minted by the auth gateway.
	IdentitySecret string
	// DefaultLanguage is the display language used when the request
	// carries none. The library defaults to Arabic.
	DefaultLanguage string
}

// Load reads config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "library"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey:       getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey:       getEnv("MINIO_SECRET_KEY", "minioadmin"),
			DocumentsBucket: getEnv("MINIO_DOCUMENTS_BUCKET", "documents"),
			CoversBucket:    getEnv("MINIO_COVERS_BUCKET", "covers"),
			UseSSL:          getEnvBool("MINIO_USE_SSL", false),
		},
		OpenAI: OpenAIConfig{
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		},
		Library: LibraryConfig{
			WriterEmail:     getEnv("LIBRARY_WRITER_EMAIL", ""),
			IdentitySecret:  getEnv("IDENTITY_TOKEN_SECRET", ""),
			DefaultLanguage: getEnv("LIBRARY_DEFAULT_LANGUAGE", "ar"),
		},
	}

	if cfg.Library.WriterEmail == "" {
		return nil, fmt.Errorf("LIBRARY_WRITER_EMAIL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
