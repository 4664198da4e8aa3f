package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables.
// Variable names are bound explicitly (no prefix) so they match the
// deployment environment as-is: DB_HOST, DB_USER, DB_PASSWORD, DB_NAME,
// GEMINI_API_KEY, plus PORT, LOG_LEVEL and GEMINI_MODEL with defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")

	bindings := map[string]string{
		"server.port":        "PORT",
		"server.log_level":   "LOG_LEVEL",
		"database.host":      "DB_HOST",
		"database.user":      "DB_USER",
		"database.password":  "DB_PASSWORD",
		"database.name":      "DB_NAME",
		"llm.gemini_api_key": "GEMINI_API_KEY",
		"llm.model_name":     "GEMINI_MODEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
