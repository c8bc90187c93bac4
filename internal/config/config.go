// Package config provides configuration management for gitline.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// defaultMaxGitDirBytes is the size guard on .git metadata: directories
// whose regular files sum past this render nothing rather than slow down
// every prompt.
const defaultMaxGitDirBytes int64 = 1_000_000_000

// Config holds all configuration for gitline.
type Config struct {
	Guard GuardConfig `mapstructure:"guard"`
	Tags  TagsConfig  `mapstructure:"tags"`
	Debug DebugConfig `mapstructure:"debug"`
}

// GuardConfig holds the pre-collection guard settings.
type GuardConfig struct {
	MaxGitDirBytes int64 `mapstructure:"max_git_dir_bytes"`
}

// TagsConfig controls the `git describe` tag lookup.
type TagsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DebugConfig controls file logging. Logs never go to the terminal; a prompt
// segment has no room for diagnostics.
type DebugConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Guard: GuardConfig{MaxGitDirBytes: defaultMaxGitDirBytes},
		Tags:  TagsConfig{Enabled: true},
		Debug: DebugConfig{},
	}
}

// configPathFunc resolves the config file location; overridable in tests.
var configPathFunc = defaultConfigPath

// defaultConfigPath returns ~/.gitline/config.toml.
func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".gitline", "config.toml"), nil
}

// Load reads the configuration file. A missing file is not an error: the
// defaults apply. Load never writes anything: it runs on every prompt
// render and must leave the filesystem alone.
func Load() (*Config, error) {
	configPath, err := configPathFunc()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("guard.max_git_dir_bytes", defaultMaxGitDirBytes)
	v.SetDefault("tags.enabled", true)
	v.SetDefault("debug.enabled", false)
	v.SetDefault("debug.file", "")
}
