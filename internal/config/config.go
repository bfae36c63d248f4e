package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logger   LoggerConfig   `yaml:"logger"`
	Auth     AuthConfig     `yaml:"auth"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Payment  PaymentConfig  `yaml:"payment"`
	Storage  StorageConfig  `yaml:"storage"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	MaxConnections  int    `yaml:"maxConnections"`
	MinConnections  int    `yaml:"minConnections"`
	MaxConnLifetime int    `yaml:"maxConnLifetime"` // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// AuthConfig holds authentication configuration. ServiceKey guards
// privileged admin routes; JWTSecret signs customer session tokens.
type AuthConfig struct {
	ServiceKey string `yaml:"serviceKey"`
	JWTSecret  string `yaml:"jwtSecret"`
}

// SMTPConfig holds outbound mail relay configuration.
type SMTPConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Secure     bool   `yaml:"secure"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	SenderName string `yaml:"senderName"`
}

// PaymentConfig holds payment-provider configuration. The hosted checkout
// widget runs in the browser; the server only needs the public key to echo
// back to clients.
type PaymentConfig struct {
	PublicKey string `yaml:"publicKey"`
	Currency  string `yaml:"currency"`
}

// StorageConfig holds image storage configuration. When S3 is disabled
// uploads land in a local directory instead.
type StorageConfig struct {
	S3Enabled bool   `yaml:"s3Enabled"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Prefix    string `yaml:"prefix"`
	PublicURL string `yaml:"publicUrl"` // base URL served to clients
	UploadDir string `yaml:"uploadDir"` // local fallback directory
}

// Load loads configuration from an optional YAML file (CONFIG_FILE) with
// environment variables layered on top.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Server = ServerConfig{
		Host: getEnv("SERVER_HOST", fallback(cfg.Server.Host, "0.0.0.0")),
		Port: getEnvAsInt("SERVER_PORT", fallbackInt(cfg.Server.Port, 8080)),
	}
	cfg.Database = DatabaseConfig{
		Host:            getEnv("DB_HOST", fallback(cfg.Database.Host, "localhost")),
		Port:            getEnvAsInt("DB_PORT", fallbackInt(cfg.Database.Port, 5432)),
		User:            getEnv("DB_USER", fallback(cfg.Database.User, "postgres")),
		Password:        getEnv("DB_PASSWORD", cfg.Database.Password),
		Database:        getEnv("DB_NAME", fallback(cfg.Database.Database, "moshood")),
		MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", fallbackInt(cfg.Database.MaxConnections, 25)),
		MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", fallbackInt(cfg.Database.MinConnections, 5)),
		MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", fallbackInt(cfg.Database.MaxConnLifetime, 300)),
	}
	cfg.Logger = LoggerConfig{
		Level:  getEnv("LOG_LEVEL", fallback(cfg.Logger.Level, "info")),
		Format: getEnv("LOG_FORMAT", fallback(cfg.Logger.Format, "json")),
	}
	cfg.Auth = AuthConfig{
		ServiceKey: getEnv("SERVICE_KEY", cfg.Auth.ServiceKey),
		JWTSecret:  getEnv("JWT_SECRET", cfg.Auth.JWTSecret),
	}
	cfg.SMTP = SMTPConfig{
		Host:       getEnv("SMTP_HOST", cfg.SMTP.Host),
		Port:       getEnvAsInt("SMTP_PORT", fallbackInt(cfg.SMTP.Port, 587)),
		Secure:     getEnvAsBool("SMTP_SECURE", cfg.SMTP.Secure),
		User:       getEnv("SMTP_USER", cfg.SMTP.User),
		Password:   getEnv("SMTP_PASS", cfg.SMTP.Password),
		SenderName: getEnv("SMTP_NAME", fallback(cfg.SMTP.SenderName, "Moshood Fashion Store")),
	}
	cfg.Payment = PaymentConfig{
		PublicKey: getEnv("FLW_PUBLIC_KEY", cfg.Payment.PublicKey),
		Currency:  getEnv("PAYMENT_CURRENCY", fallback(cfg.Payment.Currency, "NGN")),
	}
	cfg.Storage = StorageConfig{
		S3Enabled: getEnvAsBool("S3_ENABLED", cfg.Storage.S3Enabled),
		Bucket:    getEnv("S3_BUCKET", cfg.Storage.Bucket),
		Region:    getEnv("S3_REGION", fallback(cfg.Storage.Region, "us-east-1")),
		Prefix:    getEnv("S3_PREFIX", cfg.Storage.Prefix),
		PublicURL: getEnv("S3_PUBLIC_URL", cfg.Storage.PublicURL),
		UploadDir: getEnv("UPLOAD_DIR", fallback(cfg.Storage.UploadDir, "data/uploads")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Auth.ServiceKey == "" {
		return fmt.Errorf("service key is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.SMTP.Host != "" {
		if c.SMTP.Port < 1 || c.SMTP.Port > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.SMTP.Port)
		}
	}

	if c.Storage.S3Enabled {
		if c.Storage.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.Storage.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Address returns the SMTP relay address.
func (c *SMTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func fallback(fileValue, defaultValue string) string {
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

func fallbackInt(fileValue, defaultValue int) int {
	if fileValue != 0 {
		return fileValue
	}
	return defaultValue
}
