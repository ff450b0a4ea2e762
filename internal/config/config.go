package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// ErrIncompleteDatabase is returned when neither DATABASE_URL nor the
// host/user/name triple is configured.
var ErrIncompleteDatabase = errors.New("database configuration is incomplete")

// Config holds the application configuration.
type Config struct {
	ServerAddr            string        `mapstructure:"SERVER_ADDR"`
	ServerShutdownTimeout time.Duration `mapstructure:"SERVER_SHUTDOWN_TIMEOUT"`
	GinMode               string        `mapstructure:"GIN_MODE"`

	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DatabaseURL       string        `mapstructure:"DATABASE_URL"`
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            int           `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBAutoMigrate     bool          `mapstructure:"DB_AUTO_MIGRATE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
	SwaggerEnabled bool `mapstructure:"SWAGGER_ENABLED"`
}

// defaults doubles as the key registry: viper only unmarshals env-only keys
// it already knows about.
var defaults = map[string]any{
	"SERVER_ADDR":             ":8080",
	"SERVER_SHUTDOWN_TIMEOUT": "10s",
	"GIN_MODE":                "release",
	"DB_DRIVER":               DriverMySQL,
	"DATABASE_URL":            "",
	"DB_HOST":                 "",
	"DB_PORT":                 0,
	"DB_USER":                 "",
	"DB_PASSWORD":             "",
	"DB_NAME":                 "",
	"DB_MAX_OPEN_CONNS":       10,
	"DB_MAX_IDLE_CONNS":       5,
	"DB_CONN_MAX_LIFETIME":    "30m",
	"DB_AUTO_MIGRATE":         false,
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
	"METRICS_ENABLED":         true,
	"SWAGGER_ENABLED":         true,
}

// Load reads configuration from a .env file in dir (optional) and the
// environment. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))

	return &cfg, nil
}

// Validate checks that the database section can produce a DSN.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DatabaseURL != "" {
		return nil
	}
	if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
		return ErrIncompleteDatabase
	}
	return nil
}

// Port returns the configured port or the driver's default one.
func (c *Config) Port() int {
	if c.DBPort > 0 {
		return c.DBPort
	}
	if c.DBDriver == DriverPostgres {
		return 5432
	}
	return 3306
}

// DSN renders the driver-specific connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	if c.DBDriver == DriverPostgres {
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.DBUser, c.DBPassword),
			Host:     fmt.Sprintf("%s:%d", c.DBHost, c.Port()),
			Path:     "/" + c.DBName,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.Port(), c.DBName)
}
