package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Artifacts ArtifactConfig
	Database  DatabaseConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type ArtifactConfig struct {
	Dir string
}

// DatabaseConfig is only used when product display names are served from Postgres.
type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RecommendConfig struct {
	TopK int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	topK, err := strconv.Atoi(getEnv("RECOMMEND_TOP_K", "5"))
	if err != nil || topK <= 0 {
		return nil, fmt.Errorf("invalid RECOMMEND_TOP_K: %q", os.Getenv("RECOMMEND_TOP_K"))
	}

	dbEnabled, err := strconv.ParseBool(getEnv("DB_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_ENABLED: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Shopper Spectrum"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Artifacts: ArtifactConfig{
			Dir: getEnv("ARTIFACT_DIR", "./artifacts"),
		},
		Database: DatabaseConfig{
			Enabled:  dbEnabled,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "shopper_spectrum"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Recommend: RecommendConfig{
			TopK: topK,
		},
	}

	if cfg.Database.Enabled && cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
