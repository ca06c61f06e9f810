package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates the runtime settings of the SDK and its demo CLI.
type Config struct {
	AppName     string
	Environment string
	API         APIConfig
	Auth        AuthConfig
	Keystore    KeystoreConfig
	Logger      LoggerConfig
}

type APIConfig struct {
	// BaseURL is the backend origin, e.g. https://api.example.com.
	BaseURL string
	// Prefix is prepended to every request path.
	Prefix         string
	RequestTimeout time.Duration
	UserAgent      string
}

type AuthConfig struct {
	LoginPath   string
	RefreshPath string
	LogoutPath  string
	// RefreshTimeout bounds the renewal wire call itself.
	RefreshTimeout time.Duration
	// WaiterDeadline bounds how long a request joined to someone else's
	// renewal will wait for it to settle.
	WaiterDeadline time.Duration
}

type KeystoreConfig struct {
	Path string
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env) and
// applies defaults so the SDK can run against a local backend out of the box.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "oncoflow-mobile"),
		Environment: getString("APP_ENV", "development"),
		API: APIConfig{
			BaseURL:        getString("API_BASE_URL", "http://localhost:8000"),
			Prefix:         getString("API_PREFIX", "/api/v1"),
			RequestTimeout: getDuration("API_REQUEST_TIMEOUT", 15*time.Second),
			UserAgent:      getString("API_USER_AGENT", "oncoflow-mobilecore/1.0"),
		},
		Auth: AuthConfig{
			LoginPath:      getString("AUTH_LOGIN_PATH", "/auth/login"),
			RefreshPath:    getString("AUTH_REFRESH_PATH", "/auth/refresh"),
			LogoutPath:     getString("AUTH_LOGOUT_PATH", "/auth/logout"),
			RefreshTimeout: getDuration("AUTH_REFRESH_TIMEOUT", 10*time.Second),
			WaiterDeadline: getDuration("AUTH_WAITER_DEADLINE", 15*time.Second),
		},
		Keystore: KeystoreConfig{
			Path: getString("KEYSTORE_PATH", "./data/keystore.db"),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
	}

	if !strings.HasPrefix(cfg.API.Prefix, "/") && cfg.API.Prefix != "" {
		cfg.API.Prefix = "/" + cfg.API.Prefix
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Origin returns the base URL with the API prefix applied.
func (c *Config) Origin() string {
	return fmt.Sprintf("%s%s", c.API.BaseURL, c.API.Prefix)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
