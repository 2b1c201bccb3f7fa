// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Store       StoreConfig       `mapstructure:"store"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Activity    ActivityConfig    `mapstructure:"activity"`
}

// StoreConfig holds persistence configuration.
type StoreConfig struct {
	Path   string `mapstructure:"path"`
	Indent int    `mapstructure:"indent"`
}

// LeaderboardConfig holds leaderboard display configuration.
type LeaderboardConfig struct {
	Limit int `mapstructure:"limit"`
}

// ActivityConfig holds recent-activity configuration.
type ActivityConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. STORE_PATH, LEADERBOARD_LIMIT.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not found is OK; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "scoreboard_data.json")
	v.SetDefault("store.indent", 2)
	v.SetDefault("leaderboard.limit", 10)
	v.SetDefault("activity.window_days", 7)
}
