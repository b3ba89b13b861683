package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

/* Config is read from a .env file (toml) in the working directory and from the environment.
 * The file is optional; every key has a default.
 */

type Config struct {
	Port           string `mapstructure:"PORT"`
	DBDriver       string `mapstructure:"DB_DRIVER"`
	SQLitePath     string `mapstructure:"SQLITE_PATH"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int    `mapstructure:"REDIS_DB"`
	CacheTTLHours  int    `mapstructure:"CACHE_TTL_HOURS"`
	ProvidersFile  string `mapstructure:"PROVIDERS_FILE"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
	CORSOrigins    string `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]any{
	"PORT":            "8080",
	"DB_DRIVER":       "sqlite",
	"SQLITE_PATH":     "library.db",
	"DATABASE_URL":    "",
	"REDIS_ADDR":      "",
	"REDIS_PASSWORD":  "",
	"REDIS_DB":        0,
	"CACHE_TTL_HOURS": 24,
	"PROVIDERS_FILE":  "",
	"LOG_LEVEL":       "info",
	"METRICS_ENABLED": true,
	"CORS_ORIGINS":    "*",
}

func GetConfig() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, path string) (*Config, error) {
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(path)
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the driver-specific settings.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres (got %q)", c.DBDriver)
	}
	if c.CacheTTLHours < 0 {
		return fmt.Errorf("CACHE_TTL_HOURS cannot be negative")
	}
	return nil
}

// DSN returns the data source for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return c.DatabaseURL
	}
	return c.SQLitePath
}

// CacheTTL returns how long resolved ISBNs stay cached.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
