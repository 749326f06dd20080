package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	defaultArchiveURL  = "https://archive-api.open-meteo.com/v1/archive"
)

// DatabaseConfig selects and locates the remote store.
type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	SQLitePath string `yaml:"sqlite_path"`
}

// RedisConfig is optional. When Host is empty the in-memory cache is used.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
}

// WeatherConfig points at the forecast and archive endpoints.
type WeatherConfig struct {
	ForecastURL  string `yaml:"forecast_url"`
	ArchiveURL   string `yaml:"archive_url"`
	Timezone     string `yaml:"timezone"`
	HorizonDays  int    `yaml:"horizon_days"`
	CacheMinutes int    `yaml:"cache_minutes"`
}

// Config is the application configuration.
type Config struct {
	AppEnv         string         `yaml:"app_env"`
	Port           string         `yaml:"port"`
	SessionSecret  string         `yaml:"session_secret"`
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Database       DatabaseConfig `yaml:"database"`
	Redis          RedisConfig    `yaml:"redis"`
	Weather        WeatherConfig  `yaml:"weather"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		AppEnv:         "development",
		Port:           "8080",
		AllowedOrigins: []string{"https://*", "http://localhost:5173"},
		Database: DatabaseConfig{
			Driver:     DriverPostgres,
			Host:       "localhost",
			Port:       "5432",
			SQLitePath: "tripmap.db",
		},
		Redis: RedisConfig{Port: "6379"},
		Weather: WeatherConfig{
			ForecastURL:  defaultForecastURL,
			ArchiveURL:   defaultArchiveURL,
			Timezone:     "Asia/Tokyo",
			HorizonDays:  14,
			CacheMinutes: 30,
		},
	}
}

// Load reads CONFIG_FILE (if set) and then applies environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.AppEnv, "APP_ENV")
	setString(&c.Port, "PORT")
	setString(&c.SessionSecret, "SESSION_SECRET")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Host, "PG_HOST")
	setString(&c.Database.Port, "PG_PORT")
	setString(&c.Database.User, "PG_USER")
	setString(&c.Database.Password, "PG_PASSWORD")
	setString(&c.Database.Name, "PG_DB")
	setString(&c.Database.SQLitePath, "SQLITE_PATH")

	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	setString(&c.Weather.ForecastURL, "WEATHER_FORECAST_URL")
	setString(&c.Weather.ArchiveURL, "WEATHER_ARCHIVE_URL")
	setString(&c.Weather.Timezone, "WEATHER_TIMEZONE")
	setInt(&c.Weather.HorizonDays, "WEATHER_HORIZON_DAYS")
	setInt(&c.Weather.CacheMinutes, "WEATHER_CACHE_MINUTES")
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Weather.HorizonDays < 0 {
		return fmt.Errorf("weather horizon must not be negative")
	}
	// go-cache reads 0 as its default expiry and Redis reads it as forever.
	if c.Weather.CacheMinutes <= 0 {
		return fmt.Errorf("WEATHER_CACHE_MINUTES must be positive, got %d", c.Weather.CacheMinutes)
	}
	return nil
}

// PostgresDSN builds the connection string used by both sqlx and GORM.
func (c *Config) PostgresDSN() string {
	d := c.Database
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", d.User, d.Password, d.Host, d.Port, d.Name)
}

// IsProduction reports whether APP_ENV selects production behaviour, such as
// Secure session cookies.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

// ListenAddr returns the address passed to http.ListenAndServe.
func (c *Config) ListenAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
