package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Process
	Environment string

	// Backend API
	APIBaseURL string
	APITimeout time.Duration
	Locale     string

	// Authentication
	JWTSecret string

	// Page store database (optional; in-memory when empty)
	DatabaseURL     string
	MigrationsPath  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	DatabaseTimeout time.Duration

	// Listing screens
	PageSize            int
	SearchDebounce      time.Duration
	SearchRefreshOnIdle bool

	// Observability
	LogLevel       string
	LogFormat      string // json or console
	LogFile        string
	EnableMetrics  bool
	MetricsPort    int
	EnableTracing  bool
	OTLPEndpoint   string
	OTLPInsecure   bool
	OTLPCACertFile string

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	// Load .env file if exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),

		// Backend API
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		APITimeout: getEnvAsDuration("API_TIMEOUT", 15*time.Second),
		Locale:     getEnv("LOCALE", "en"),

		// Auth
		JWTSecret: getEnv("JWT_SECRET", ""),

		// Database
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./internal/infrastructure/postgres/migrations"),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 5),
		MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 1*time.Minute),
		DatabaseTimeout: getEnvAsDuration("DATABASE_TIMEOUT", 5*time.Second),

		// Listing
		PageSize:            getEnvAsInt("PAGE_SIZE", 8),
		SearchDebounce:      getEnvAsDuration("SEARCH_DEBOUNCE", time.Second),
		SearchRefreshOnIdle: getEnvAsBool("SEARCH_REFRESH_ON_IDLE", false),

		// Observability
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		LogFile:        getEnv("LOG_FILE", "menudash.log"),
		EnableMetrics:  getEnvAsBool("ENABLE_METRICS", false),
		MetricsPort:    getEnvAsInt("METRICS_PORT", 9090),
		EnableTracing:  getEnvAsBool("ENABLE_TRACING", false),
		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", "localhost:4317"),
		OTLPInsecure:   getEnvAsBool("OTLP_INSECURE", true),
		OTLPCACertFile: getEnv("OTLP_CA_CERT_FILE", ""),

		// Graceful Shutdown
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}

	// Tokens must be verified in production
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}

	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("invalid page size: %d (valid: 1-100)", c.PageSize)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("invalid search debounce: %s", c.SearchDebounce)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("invalid API timeout: %s", c.APITimeout)
	}

	if c.EnableMetrics && (c.MetricsPort < 1 || c.MetricsPort > 65535) {
		return fmt.Errorf("invalid metrics port: %d", c.MetricsPort)
	}

	// Connection pool validation
	if c.MaxOpenConns < c.MaxIdleConns {
		return fmt.Errorf("max_open_conns (%d) must be >= max_idle_conns (%d)",
			c.MaxOpenConns, c.MaxIdleConns)
	}

	if c.EnableTracing && !c.OTLPInsecure && c.OTLPCACertFile != "" {
		if _, err := os.Stat(c.OTLPCACertFile); os.IsNotExist(err) {
			return fmt.Errorf("OTLP CA certificate file not found: %s", c.OTLPCACertFile)
		}
	}

	// Log level validation
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}

	// Log format validation
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log format: %s (valid: json, console)", c.LogFormat)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
	Locale  string
}

func (c *Config) GetAPIConfig() APIConfig {
	return APIConfig{
		BaseURL: c.APIBaseURL,
		Timeout: c.APITimeout,
		Locale:  c.Locale,
	}
}

type DatabaseConfig struct {
	URL             string
	MigrationsPath  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	Timeout         time.Duration
}

func (c *Config) GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:             c.DatabaseURL,
		MigrationsPath:  c.MigrationsPath,
		MaxOpenConns:    c.MaxOpenConns,
		MaxIdleConns:    c.MaxIdleConns,
		ConnMaxLifetime: c.ConnMaxLifetime,
		ConnMaxIdleTime: c.ConnMaxIdleTime,
		Timeout:         c.DatabaseTimeout,
	}
}

type DashboardConfig struct {
	PageSize            int
	SearchDebounce      time.Duration
	SearchRefreshOnIdle bool
	Locale              string
}

func (c *Config) GetDashboardConfig() DashboardConfig {
	return DashboardConfig{
		PageSize:            c.PageSize,
		SearchDebounce:      c.SearchDebounce,
		SearchRefreshOnIdle: c.SearchRefreshOnIdle,
		Locale:              c.Locale,
	}
}

type ObservabilityConfig struct {
	EnableMetrics  bool
	MetricsPort    int
	EnableTracing  bool
	OTLPEndpoint   string
	OTLPInsecure   bool
	OTLPCACertFile string
	LogLevel       string
	LogFormat      string
	LogFile        string
}

func (c *Config) GetObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		EnableMetrics:  c.EnableMetrics,
		MetricsPort:    c.MetricsPort,
		EnableTracing:  c.EnableTracing,
		OTLPEndpoint:   c.OTLPEndpoint,
		OTLPInsecure:   c.OTLPInsecure,
		OTLPCACertFile: c.OTLPCACertFile,
		LogLevel:       c.LogLevel,
		LogFormat:      c.LogFormat,
		LogFile:        c.LogFile,
	}
}
