package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Payment      PaymentConfig
	Storage      StorageConfig
	Verification VerificationConfig
	Security     SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// PaymentConfig holds payment gateway configuration.
// DevSimulate short-circuits gateway verification and must never be enabled
// in production; Validate rejects that combination at startup.
type PaymentConfig struct {
	PublicKey     string
	SecretKey     string
	WebhookSecret string
	BaseURL       string
	Currency      string
	FeePercent    float64
	DraftTTL      time.Duration
	DevSimulate   bool
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	BasePath      string
	PublicBaseURL string
	UploadTimeout time.Duration
	MaxConcurrent int
}

// VerificationConfig holds identity verification policy configuration
type VerificationConfig struct {
	// FailClosed blocks listing when the status check errors instead of
	// letting the user through.
	FailClosed bool
}

// SecurityConfig holds encryption keys
type SecurityConfig struct {
	DraftEncryptionKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "lizexpress"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Payment: PaymentConfig{
			PublicKey:     getEnv("FLUTTERWAVE_PUBLIC_KEY", ""),
			SecretKey:     getEnv("FLUTTERWAVE_SECRET_KEY", ""),
			WebhookSecret: getEnv("FLUTTERWAVE_WEBHOOK_SECRET", ""),
			BaseURL:       getEnv("FLUTTERWAVE_BASE_URL", "https://api.flutterwave.com/v3"),
			Currency:      getEnv("PAYMENT_CURRENCY", "NGN"),
			FeePercent:    getEnvAsFloat("LISTING_FEE_PERCENT", 0.05),
			DraftTTL:      getEnvAsDuration("LISTING_DRAFT_TTL", 30*time.Minute),
			DevSimulate:   getEnvAsBool("PAYMENT_DEV_SIMULATE", false),
		},
		Storage: StorageConfig{
			BasePath:      getEnv("STORAGE_BASE_PATH", "./data/storage"),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/storage"),
			UploadTimeout: getEnvAsDuration("STORAGE_UPLOAD_TIMEOUT", 30*time.Second),
			MaxConcurrent: getEnvAsInt("STORAGE_MAX_CONCURRENT", 3),
		},
		Verification: VerificationConfig{
			FailClosed: getEnvAsBool("VERIFICATION_FAIL_CLOSED", false),
		},
		Security: SecurityConfig{
			DraftEncryptionKey: getEnv("DRAFT_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
	}
}

// Validate checks required values and forbidden combinations. Called once
// at startup.
func (c *Config) Validate() error {
	if c.Server.Env == "production" {
		if c.Payment.PublicKey == "" || c.Payment.SecretKey == "" {
			return fmt.Errorf("payment gateway keys are required in production")
		}
		if c.Payment.WebhookSecret == "" {
			return fmt.Errorf("payment webhook secret is required in production")
		}
		if c.Payment.DevSimulate {
			return fmt.Errorf("PAYMENT_DEV_SIMULATE must not be enabled in production")
		}
	}
	if c.Payment.FeePercent <= 0 || c.Payment.FeePercent >= 1 {
		return fmt.Errorf("listing fee percent must be between 0 and 1, got %v", c.Payment.FeePercent)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
