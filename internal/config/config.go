package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/feeform/feeform/internal/model"
)

// Config holds all runtime configuration for the feeform server.
type Config struct {
	Addr            string
	DSN             string
	LogFormat       string // "text" or "json"
	AssistantAPIKey string
	AssistantModel  string
	PromptPath      string
	Roles           []string `yaml:"roles"` // closed role set for assistant intents
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Roles []string `yaml:"roles"`
}

// FirstEnv returns the value of the first environment variable in names
// that is set to a non-empty value.
func FirstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Roles = yc.Roles
	return c.validateRoles()
}

// validateRoles checks that every configured role is non-blank. An empty
// list defaults to the standard role set.
func (c *Config) validateRoles() error {
	if len(c.Roles) == 0 {
		c.Roles = append([]string(nil), model.DefaultRoles...)
		return nil
	}
	for _, r := range c.Roles {
		if strings.TrimSpace(r) == "" {
			return fmt.Errorf("blank role entry in config")
		}
	}
	return nil
}

// ValidateServe checks the fields the serve command needs. The assistant
// API key is deliberately not required here; its absence fails the first
// assistant request instead.
func (c *Config) ValidateServe() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or SUPABASE_DB_URL / DATABASE_URL is required")
	}
	if c.PromptPath == "" {
		return fmt.Errorf("--prompt is required")
	}
	return c.validateRoles()
}
