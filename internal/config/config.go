// Package config holds the viper-backed configuration singleton.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var v *viper.Viper

// Initialize sets up the configuration singleton. Call once at startup.
//
// Precedence: environment variables (REMIND_*) > project .remind/config.yaml
// (found by walking up from the working directory) > ~/.config/remind/config.yaml.
func Initialize() error {
	// API keys commonly live in a .env next to the project. Best effort.
	_ = godotenv.Load()

	v = viper.New()
	v.SetConfigType("yaml")

	configFileSet := false

	// 1. Walk up from CWD to find a project .remind/config.yaml, so
	//    commands work from subdirectories.
	if cwd, err := os.Getwd(); err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			configPath := filepath.Join(dir, ".remind", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
				break
			}
		}
	}

	// 2. User config directory (~/.config/remind/config.yaml).
	if !configFileSet {
		if configDir, err := os.UserConfigDir(); err == nil {
			configPath := filepath.Join(configDir, "remind", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	// Environment variables take precedence over the config file,
	// e.g. REMIND_MODEL, REMIND_NO_COLOR, REMIND_MAX_NOTIFY_DELAY.
	v.SetEnvPrefix("REMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api-key", "")
	v.SetDefault("model", "claude-3-5-haiku-20241022")
	v.SetDefault("json", false)
	v.SetDefault("no-color", false)
	v.SetDefault("max-notify-delay", "24h")
}

func ensure() *viper.Viper {
	if v == nil {
		if err := Initialize(); err != nil {
			// Fall back to a defaults-only viper so reads still work.
			v = viper.New()
			setDefaults(v)
		}
	}
	return v
}

// GetString returns a string config value.
func GetString(key string) string { return ensure().GetString(key) }

// GetBool returns a boolean config value.
func GetBool(key string) bool { return ensure().GetBool(key) }

// GetDuration returns a duration config value.
func GetDuration(key string) time.Duration { return ensure().GetDuration(key) }

// AllSettings returns the effective configuration map.
func AllSettings() map[string]any { return ensure().AllSettings() }

// WriteDefault writes a default config.yaml at path, creating parent
// directories. Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	defaults := map[string]any{
		"api-key":          "",
		"model":            "claude-3-5-haiku-20241022",
		"json":             false,
		"no-color":         false,
		"max-notify-delay": "24h",
	}
	data, err := yaml.Marshal(defaults)
	if err != nil {
		return err
	}
	header := "# remind configuration. Environment variables (REMIND_*) take precedence.\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}
