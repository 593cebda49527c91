package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Portfolio PortfolioConfig
	Scene     SceneConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Driver         string
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	DBSSLRootCert  string
	DBPath         string
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// Enabled reports whether a snapshot mirror should be dialled at all.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type PortfolioConfig struct {
	ServicesEnabled bool
	FallbackName    string
}

type SceneConfig struct {
	FPS          int
	PublishEvery int
	Particles    int
	Seed         int64
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultFallbackName = "Rizwan Ahmed"
)

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variable")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string

	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := time.ParseDuration(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "portfolio"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
	}

	driver := strings.ToLower(opt("DB_DRIVER", DriverPostgres))
	cfg.Database = DatabaseConfig{
		Driver:         driver,
		DBPort:         opt("DB_PORT", "4000"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "verify-full"),
		DBSSLRootCert:  opt("DB_SSL_ROOT_CERT", ""),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
	switch driver {
	case DriverPostgres:
		cfg.Database.DBHost = req("DB_HOST")
		cfg.Database.DBUser = req("DB_USER")
		cfg.Database.DBName = req("DB_NAME")
		if !secureSSLMode(cfg.Database.DBSSLMode) {
			invalid = append(invalid, "DB_SSL_MODE")
		}
	case DriverSQLite:
		cfg.Database.DBPath = req("DB_PATH")
	default:
		invalid = append(invalid, "DB_DRIVER")
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      time.Duration(optInt("REDIS_TTL", 600)) * time.Second,
	}

	cfg.Portfolio = PortfolioConfig{
		ServicesEnabled: optBool("PORTFOLIO_SERVICES", false),
		FallbackName:    opt("PORTFOLIO_FALLBACK_NAME", DefaultFallbackName),
	}

	cfg.Scene = SceneConfig{
		FPS:          optInt("SCENE_FPS", 60),
		PublishEvery: optInt("SCENE_PUBLISH_EVERY", 6),
		Particles:    optInt("SCENE_PARTICLES", 500),
		Seed:         int64(optInt("SCENE_SEED", 1)),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// secureSSLMode accepts only libpq modes that validate the server
// certificate. require encrypts without verifying and is rejected.
func secureSSLMode(mode string) bool {
	switch strings.ToLower(mode) {
	case "verify-ca", "verify-full":
		return true
	default:
		return false
	}
}
