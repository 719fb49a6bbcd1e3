// Package config loads server settings from defaults, an optional YAML file named
// by BOOKAGENT_CONFIG, and environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configPathEnv = "BOOKAGENT_CONFIG"

type OpenLibraryConfig struct {
	BaseURL   string        `yaml:"base_url" validate:"required,url"`
	UserAgent string        `yaml:"user_agent" validate:"required"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	// RPS caps outbound requests per second; zero disables throttling.
	RPS int `yaml:"rps" validate:"gte=0"`
}

type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" validate:"gt=0"`
	Burst int     `yaml:"burst" validate:"gte=1"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

type Config struct {
	Addr               string            `yaml:"addr" validate:"required"`
	OpenLibrary        OpenLibraryConfig `yaml:"openlibrary"`
	CORSAllowedOrigins []string          `yaml:"cors_allowed_origins"`
	RateLimit          RateLimitConfig   `yaml:"rate_limit"`
	Log                LogConfig         `yaml:"log"`
	EnableHSTS         bool              `yaml:"enable_hsts"`
	ShutdownTimeout    time.Duration     `yaml:"shutdown_timeout" validate:"gt=0"`
}

func Default() Config {
	return Config{
		Addr: ":8080",
		OpenLibrary: OpenLibraryConfig{
			BaseURL:   "https://openlibrary.org",
			UserAgent: "BookAgent/1.0 (+https://github.com/bookagent)",
			Timeout:   15 * time.Second,
		},
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		RateLimit:          RateLimitConfig{RPS: 10, Burst: 20},
		Log:                LogConfig{Level: "info", Format: "text"},
		ShutdownTimeout:    10 * time.Second,
	}
}

// Load reads .env.local and .env when present, then builds and validates the
// configuration.
func Load() (Config, error) {
	for _, file := range []string{".env.local", ".env"} {
		_ = godotenv.Load(file)
	}

	cfg := Default()
	if path := os.Getenv(configPathEnv); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Addr = getEnv("APP_ADDR", c.Addr)
	c.OpenLibrary.BaseURL = getEnv("OPENLIBRARY_BASE_URL", c.OpenLibrary.BaseURL)
	c.OpenLibrary.UserAgent = getEnv("OPENLIBRARY_USER_AGENT", c.OpenLibrary.UserAgent)
	c.Log.Level = strings.ToLower(getEnv("LOG_LEVEL", c.Log.Level))
	c.Log.Format = strings.ToLower(getEnv("LOG_FORMAT", c.Log.Format))

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORSAllowedOrigins = splitList(v)
	}

	var err error
	if c.OpenLibrary.Timeout, err = durationEnv("OPENLIBRARY_TIMEOUT", c.OpenLibrary.Timeout); err != nil {
		return err
	}
	if c.ShutdownTimeout, err = durationEnv("SHUTDOWN_TIMEOUT", c.ShutdownTimeout); err != nil {
		return err
	}
	if c.OpenLibrary.RPS, err = intEnv("OPENLIBRARY_RPS", c.OpenLibrary.RPS); err != nil {
		return err
	}
	if c.RateLimit.Burst, err = intEnv("RATE_LIMIT_BURST", c.RateLimit.Burst); err != nil {
		return err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: RATE_LIMIT_RPS: %w", err)
		}
		c.RateLimit.RPS = rps
	}
	if v := os.Getenv("ENABLE_HSTS"); v != "" {
		c.EnableHSTS = v == "true"
	}
	return nil
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
