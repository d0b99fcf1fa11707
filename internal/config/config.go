// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Environment string `yaml:"environment"`
	Port        int    `yaml:"port" validate:"required,gt=0"`
}

type BackendConfig struct {
	// BaseURL is the one backend origin every page goes through. It is
	// injected here once at startup, never hardcoded per page.
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
}

type AuthConfig struct {
	ClerkSecretKey string `yaml:"-"` // Loaded from environment
	SignInURL      string `yaml:"sign_in_url" validate:"omitempty,url"`

	// AllowlistEnabled selects the authorization policy: every signed-in
	// account, or only the listed emails. Which one production wants is an
	// open question for the system owner; both are wired.
	AllowlistEnabled bool     `yaml:"allowlist_enabled"`
	AllowedEmails    []string `yaml:"allowed_emails" validate:"dive,email"`
}

type WorkshopsConfig struct {
	Stores []string `yaml:"stores" validate:"min=1,dive,required"`
}

type Config struct {
	App       AppConfig       `yaml:"app"`
	Backend   BackendConfig   `yaml:"backend"`
	Auth      AuthConfig      `yaml:"auth"`
	Workshops WorkshopsConfig `yaml:"workshops"`
}

// Load reads both .env and yaml configuration.
func Load(configPath string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	cfg.Auth.ClerkSecretKey = os.Getenv("CLERK_SECRET_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Auth.AllowlistEnabled && len(c.Auth.AllowedEmails) == 0 {
		return fmt.Errorf("allowlist enabled but no allowed emails configured")
	}
	return nil
}

// BackendTimeout is the transport timeout for gateway requests; zero means
// the gateway default.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}
