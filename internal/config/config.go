package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port         string        `validate:"required,numeric"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	Driver             string `validate:"oneof=postgres sqlite"`
	Host               string `validate:"required_if=Driver postgres"`
	Port               string `validate:"required_if=Driver postgres"`
	User               string `validate:"required_if=Driver postgres"`
	Password           string
	DBName             string `validate:"required_if=Driver postgres"`
	SSLMode            string
	Schema             string
	SQLitePath         string `validate:"required_if=Driver sqlite"`
	MaxOpenConns       int    `validate:"gte=1"`
	MaxIdleConns       int    `validate:"gte=0"`
	ConnMaxLifetime    time.Duration
	QueryTimeout       time.Duration `validate:"gt=0"`
	SlowQueryThreshold time.Duration
	AutoMigrate        bool
}

// StorageConfig describes the S3-compatible bucket holding filmwork files.
type StorageConfig struct {
	Enabled         bool
	Endpoint        string `validate:"required_if=Enabled true"`
	AccessKeyID     string `validate:"required_if=Enabled true"`
	SecretAccessKey string `validate:"required_if=Enabled true"`
	BucketName      string `validate:"required_if=Enabled true"`
	Region          string
	UseSSL          bool
	URLExpiry       time.Duration `validate:"gte=1s"`
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:             getEnvOrDefault("DB_DRIVER", DriverPostgres),
			Host:               getEnvOrDefault("DB_HOST", "localhost"),
			Port:               getEnvOrDefault("DB_PORT", "5432"),
			User:               getEnvOrDefault("DB_USER", "app"),
			Password:           getEnvOrDefault("DB_PASSWORD", ""),
			DBName:             getEnvOrDefault("DB_NAME", "movies_database"),
			SSLMode:            getEnvOrDefault("DB_SSLMODE", "disable"),
			Schema:             getEnvOrDefault("DB_SCHEMA", "content"),
			SQLitePath:         getEnvOrDefault("DB_SQLITE_PATH", "movies.db"),
			MaxOpenConns:       getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime:    getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:       getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
			SlowQueryThreshold: getDurationOrDefault("DB_SLOW_QUERY_THRESHOLD", time.Second),
			AutoMigrate:        getBoolOrDefault("DB_AUTO_MIGRATE", false),
		},
		Storage: StorageConfig{
			Enabled:         getBoolOrDefault("STORAGE_ENABLED", false),
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "movies"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", false),
			URLExpiry:       getDurationOrDefault("STORAGE_URL_EXPIRY", 15*time.Minute),
		},
	}
}

// DSN returns the connection string for the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
