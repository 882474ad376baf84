package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis backs token revocation; empty RedisURL disables it
	RedisURL      string
	RedisPassword string

	// JWT configuration
	JWTSecret string
	TokenTTL  time.Duration

	// Recipe image storage; empty bucket disables URL signing
	S3BucketName string
	AWSRegion    string
	ImageURLTTL  time.Duration

	AllowedOrigins []string
	LogLevel       string
}

const (
	defaultServerHost  = "0.0.0.0"
	defaultServerPort  = "8080"
	defaultDBPort      = "5432"
	defaultDBSSLMode   = "disable"
	defaultTokenTTL    = 24 * time.Hour
	defaultImageURLTTL = 15 * time.Minute
	defaultOrigin      = "http://localhost:5173"
	defaultLogLevel    = "info"
)

// LoadConfig builds a Config from environment variables, falling back to
// Docker secrets for sensitive values. In development a .env file in the
// working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	if env == Development {
		// a missing .env is fine; real environments set variables directly
		_ = godotenv.Load()
	}

	cfg := &Config{
		Environment:  env,
		ServerHost:   getEnv("SERVER_HOST", defaultServerHost),
		ServerPort:   getEnv("SERVER_PORT", defaultServerPort),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       getEnv("DB_PORT", defaultDBPort),
		DBUser:       getEnvOrSecret("DB_USER", "db_user"),
		DBPassword:   getEnvOrSecret("DB_PASSWORD", "db_password"),
		DBName:       os.Getenv("DB_NAME"),
		DBSSLMode:    getEnv("DB_SSL_MODE", defaultDBSSLMode),
		RedisURL:     getEnvOrSecret("REDIS_URL", "redis_url"),
		JWTSecret:    getEnvOrSecret("JWT_SECRET", "jwt_secret"),
		S3BucketName: os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:    os.Getenv("AWS_REGION"),
		LogLevel:     getEnv("LOG_LEVEL", defaultLogLevel),
	}
	cfg.RedisPassword = getEnvOrSecret("REDIS_PASSWORD", "redis_password")

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", defaultTokenTTL); err != nil {
		return nil, err
	}
	if cfg.ImageURLTTL, err = getDuration("IMAGE_URL_TTL", defaultImageURLTTL); err != nil {
		return nil, err
	}

	cfg.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultOrigin))

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the postgres connection URL. Credentials are escaped so secrets
// may contain spaces, quotes or URL delimiters.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getEnvOrSecret prefers the environment variable and falls back to the Docker secret
func getEnvOrSecret(key, secret string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return readSecret(secret)
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// secretsDir returns the directory holding Docker secrets
func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	data, err := os.ReadFile(filepath.Join(secretsDir(), name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
