package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when CONFIG_PATH is not set
const DefaultPath = "config/config.yml"

// Supported user store drivers
const (
	StoreMemory = "memory"
	StoreGorm   = "gorm"
	StoreRedis  = "redis"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TelegramConfig struct {
	BotToken          string `yaml:"bot_token"`
	AuthMaxAgeSeconds int    `yaml:"auth_max_age_seconds"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type DatabaseConfig struct {
	Dialect string `yaml:"dialect"`
	DSN     string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type UserStoreConfig struct {
	Driver string `yaml:"driver"`
}

type PaymentsConfig struct {
	InvoiceStubURL string `yaml:"invoice_stub_url"`
}

type ConfigFile struct {
	App       AppConfig       `yaml:"app"`
	Log       LogConfig       `yaml:"log"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	JWT       JWTConfig       `yaml:"jwt"`
	UserStore UserStoreConfig `yaml:"user_store"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Payments  PaymentsConfig  `yaml:"payments"`
}

// Config is built once at startup and passed to every component
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	BotToken       string
	AuthMaxAge     time.Duration
	JWTSecret      string
	JWTIssuer      string
	SessionTTL     time.Duration
	UserStore      string
	DBDialect      string
	DSN            string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	InvoiceStubURL string

	// Now overrides the wall clock; nil means time.Now
	Now func() time.Time
}

// Defaults returns the configuration used when nothing is set
func Defaults() *ConfigFile {
	return &ConfigFile{
		App:       AppConfig{Port: 3000, GinMode: "release"},
		Log:       LogConfig{Level: "info", Format: "json"},
		Telegram:  TelegramConfig{AuthMaxAgeSeconds: 86400},
		JWT:       JWTConfig{SessionTTL: "168h"},
		UserStore: UserStoreConfig{Driver: StoreMemory},
		Database:  DatabaseConfig{Dialect: "sqlite", DSN: "file:tapgame.db"},
		Payments:  PaymentsConfig{InvoiceStubURL: "https://t.me/invoice/test"},
	}
}

// Load reads .env, the YAML file and environment overrides, in that order
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := env("CONFIG_PATH", DefaultPath)
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(file); err != nil {
		return nil, err
	}
	return file.toConfig()
}

func loadConfigFile(path string) (*ConfigFile, error) {
	cfg := Defaults()

	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return cfg, nil
}

func applyEnv(f *ConfigFile) error {
	f.App.GinMode = env("GIN_MODE", f.App.GinMode)
	f.Log.Level = env("LOG_LEVEL", f.Log.Level)
	f.Log.Format = env("LOG_FORMAT", f.Log.Format)
	f.Telegram.BotToken = env("BOT_TOKEN", f.Telegram.BotToken)
	f.JWT.Secret = env("JWT_SECRET", f.JWT.Secret)
	f.JWT.Issuer = env("JWT_ISSUER", f.JWT.Issuer)
	f.JWT.SessionTTL = env("SESSION_TTL", f.JWT.SessionTTL)
	f.UserStore.Driver = env("USER_STORE_DRIVER", f.UserStore.Driver)
	f.Database.Dialect = env("DATABASE_DIALECT", f.Database.Dialect)
	f.Database.DSN = env("DATABASE_DSN", f.Database.DSN)
	f.Redis.Addr = env("REDIS_ADDR", f.Redis.Addr)
	f.Redis.Password = env("REDIS_PASSWORD", f.Redis.Password)
	f.Payments.InvoiceStubURL = env("INVOICE_STUB_URL", f.Payments.InvoiceStubURL)

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &f.App.Port},
		{"TELEGRAM_AUTH_MAX_AGE_SECONDS", &f.Telegram.AuthMaxAgeSeconds},
		{"REDIS_DB", &f.Redis.DB},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", i.key, err)
		}
		*i.dst = n
	}
	return nil
}

func (f *ConfigFile) toConfig() (*Config, error) {
	ttl, err := time.ParseDuration(f.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	return &Config{
		Port:           strconv.Itoa(f.App.Port),
		GinMode:        f.App.GinMode,
		LogLevel:       f.Log.Level,
		LogFormat:      f.Log.Format,
		BotToken:       strings.TrimSpace(f.Telegram.BotToken),
		AuthMaxAge:     time.Duration(f.Telegram.AuthMaxAgeSeconds) * time.Second,
		JWTSecret:      f.JWT.Secret,
		JWTIssuer:      f.JWT.Issuer,
		SessionTTL:     ttl,
		UserStore:      strings.ToLower(f.UserStore.Driver),
		DBDialect:      f.Database.Dialect,
		DSN:            f.Database.DSN,
		RedisAddr:      f.Redis.Addr,
		RedisPassword:  f.Redis.Password,
		RedisDB:        f.Redis.DB,
		InvoiceStubURL: f.Payments.InvoiceStubURL,
	}, nil
}

// Validate reports settings the standalone server cannot start without
func (c *Config) Validate() error {
	var errs []error
	if c.BotToken == "" {
		errs = append(errs, errors.New("BOT_TOKEN is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch c.UserStore {
	case StoreMemory:
	case StoreGorm:
		if c.DSN == "" {
			errs = append(errs, errors.New("DATABASE_DSN is required for the gorm user store"))
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis user store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown user store driver %q", c.UserStore))
	}
	return errors.Join(errs...)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
