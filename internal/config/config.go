package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Admin   AdminConfig
	Session SessionConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// AdminConfig is the single shared back-office credential. There is no
// per-user admin account; the password gates the dashboard UI only.
type AdminConfig struct {
	Password string
}

type SessionConfig struct {
	Secret        string
	TokenTTLHours int  // admin session token lifetime
	CookieSecure  bool // false for localhost development
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Lawfirm API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Session: SessionConfig{
			Secret:        getEnv("SESSION_SECRET", "valenca-soares-secret-key"),
			TokenTTLHours: getEnvInt("SESSION_TOKEN_TTL", 24),
			CookieSecure:  getEnv("APP_ENV", "development") == "production",
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Admin.Password == "" {
		return fmt.Errorf("config: ADMIN_PASSWORD must not be empty")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("config: SESSION_SECRET must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
