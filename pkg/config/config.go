package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Biz-Hub01/pureez/pkg/postgres"
	"gopkg.in/yaml.v3"
)

const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	GRPCPort int    `yaml:"grpc_port"`
	HTTPPort int    `yaml:"http_port"`
	GRPCAddr string `yaml:"grpc_addr"`

	Store    StoreConfig    `yaml:"store"`
	Currency CurrencyConfig `yaml:"currency"`

	CatalogFile string `yaml:"catalog_file"`
}

type StoreConfig struct {
	Driver     string          `yaml:"driver"`
	SQLitePath string          `yaml:"sqlite_path"`
	Postgres   postgres.Config `yaml:"postgres"`
}

type CurrencyConfig struct {
	Base              string         `yaml:"base"`
	ProviderURL       string         `yaml:"provider_url"`
	RefreshSec        int            `yaml:"refresh_interval_sec"`
	RequestTimeoutSec int            `yaml:"request_timeout_sec"`
	Currencies        []CurrencySeed `yaml:"currencies"`
}

// CurrencySeed is one row of the static currency table. Rate is relative to
// the base currency.
type CurrencySeed struct {
	Code   string  `yaml:"code"`
	Name   string  `yaml:"name"`
	Symbol string  `yaml:"symbol"`
	Rate   float64 `yaml:"rate"`
}

func Defaults() Config {
	return Config{
		AppEnv:   "dev",
		LogLevel: "info",
		HTTPPort: 8080,
		GRPCPort: 8081,
		GRPCAddr: "localhost:8081",
		Store: StoreConfig{
			Driver:     StoreSQLite,
			SQLitePath: "pureez.db",
			Postgres: postgres.Config{
				Host: "localhost",
				Port: 5432,
				User: "shopping",
				Pass: "shoppingpassword",
				DB:   "shopping_db",
			},
		},
		Currency: CurrencyConfig{
			Base:              "KES",
			ProviderURL:       "https://api.exchangerate-api.com/v4/latest",
			RefreshSec:        3600,
			RequestTimeoutSec: 10,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_FILE, and environment variables, in that order of precedence.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func overrideWithEnv(cfg *Config) {
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.HTTPPort = getEnvInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = getEnvInt("GRPC_PORT", cfg.GRPCPort)
	cfg.GRPCAddr = getEnv("GRPC_ADDR", cfg.GRPCAddr)

	cfg.Store.Driver = getEnv("STORE_DRIVER", cfg.Store.Driver)
	cfg.Store.SQLitePath = getEnv("SQLITE_PATH", cfg.Store.SQLitePath)
	cfg.Store.Postgres.Host = getEnv("POSTGRES_HOST", cfg.Store.Postgres.Host)
	cfg.Store.Postgres.Port = getEnvInt("POSTGRES_PORT", cfg.Store.Postgres.Port)
	cfg.Store.Postgres.User = getEnv("POSTGRES_USER", cfg.Store.Postgres.User)
	cfg.Store.Postgres.Pass = getEnv("POSTGRES_PASSWORD", cfg.Store.Postgres.Pass)
	cfg.Store.Postgres.DB = getEnv("POSTGRES_DB", cfg.Store.Postgres.DB)

	cfg.Currency.Base = getEnv("BASE_CURRENCY", cfg.Currency.Base)
	cfg.Currency.ProviderURL = getEnv("RATES_URL", cfg.Currency.ProviderURL)
	cfg.Currency.RefreshSec = getEnvInt("RATES_REFRESH_SEC", cfg.Currency.RefreshSec)

	cfg.CatalogFile = getEnv("CATALOG_FILE", cfg.CatalogFile)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StorePostgres:
	case StoreSQLite:
		if strings.TrimSpace(c.Store.SQLitePath) == "" {
			return errors.New("sqlite store requires sqlite_path")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.Currency.RefreshSec <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %d", c.Currency.RefreshSec)
	}
	if strings.TrimSpace(c.Currency.Base) == "" {
		return errors.New("base currency is required")
	}

	if len(c.Currency.Currencies) > 0 {
		found := false
		for _, cur := range c.Currency.Currencies {
			if strings.EqualFold(cur.Code, c.Currency.Base) {
				found = true
			}
			if cur.Rate <= 0 {
				return fmt.Errorf("currency %s: rate must be positive", cur.Code)
			}
		}
		if !found {
			return fmt.Errorf("currency table does not contain base currency %s", c.Currency.Base)
		}
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
