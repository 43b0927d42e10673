// Package config loads the service configuration
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv           string
	Port             string
	CORSAllowOrigins []string
	LogLevel         zerolog.Level
}

// DevMode reports whether human-readable logging should be used.
func (c *Config) DevMode() bool {
	return c.AppEnv == "dev"
}

// Load reads configuration from the environment and an optional config.yaml
// in the working directory. Environment variables win over the file.
func Load() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, configDir string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	bindings := map[string]string{
		"app.env":            "APP_ENV",
		"server.port":        "PORT",
		"cors.allow_origins": "CORS_ALLOW_ORIGINS",
		"log.level":          "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("could not bind %s: %w", key, err)
		}
	}

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.port", "8080")
	v.SetDefault("cors.allow_origins", "http://localhost:3000")
	v.SetDefault("log.level", "info")

	cfg := Config{
		AppEnv:           v.GetString("app.env"),
		Port:             strings.TrimSpace(v.GetString("server.port")),
		CORSAllowOrigins: splitList(v.GetStringSlice("cors.allow_origins")),
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port)
	}

	cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(v.GetString("log.level")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if len(cfg.CORSAllowOrigins) == 0 {
		return nil, errors.New("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	for _, origin := range cfg.CORSAllowOrigins {
		if origin == "*" && len(cfg.CORSAllowOrigins) == 1 {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("CORS origin %q must be \"*\" alone or start with http:// or https://", origin)
		}
	}

	return &cfg, nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
