// Package config loads and writes the DraftAI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultServerURL is used when no server URL is configured anywhere.
const DefaultServerURL = "http://localhost:8001"

// envServerURL overrides the configured server URL when set.
const envServerURL = "DRAFTAI_SERVER_URL"

// UIConfig holds presentation toggles.
type UIConfig struct {
	ShowStatusBar bool `mapstructure:"show_status_bar" yaml:"show_status_bar"`
	ConfirmDelete bool `mapstructure:"confirm_delete" yaml:"confirm_delete"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Config is the full application configuration.
type Config struct {
	ServerURL string    `mapstructure:"server_url" yaml:"server_url"`
	UI        UIConfig  `mapstructure:"ui" yaml:"ui"`
	Log       LogConfig `mapstructure:"log" yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL: DefaultServerURL,
		UI: UIConfig{
			ShowStatusBar: true,
			ConfirmDelete: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// FindConfigPath returns the config file to use: the project-local
// .draftai/config.yaml if it exists, otherwise ~/.config/draftai/config.yaml.
// The returned path may not exist; Load treats a missing file as defaults.
func FindConfigPath() string {
	local := filepath.Join(".draftai", "config.yaml")
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "draftai", "config.yaml")
}

// LogPath returns the log file path based on the config location.
// Project-local configs store logs alongside them; otherwise logs go to
// ~/.config/draftai/draftai.log.
func LogPath(configPath string) string {
	home, _ := os.UserHomeDir()
	fallback := filepath.Join(home, ".config", "draftai", "draftai.log")
	if configPath == "" {
		return fallback
	}

	clean := filepath.Clean(configPath)
	suffix := filepath.Join(".draftai", "config.yaml")
	if strings.HasSuffix(clean, suffix) {
		return filepath.Join(filepath.Dir(clean), "draftai.log")
	}

	return fallback
}

// DataPath returns the drafts file path used by the bundled server, placed
// next to the log file for the same config location.
func DataPath(configPath string) string {
	return filepath.Join(filepath.Dir(LogPath(configPath)), "drafts.json")
}

// Load reads the config file at path, applying defaults for missing keys.
// A missing file is not an error; defaults are returned. The
// DRAFTAI_SERVER_URL environment variable overrides server_url from any
// source.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("server_url", cfg.ServerURL)
	v.SetDefault("ui.show_status_bar", cfg.UI.ShowStatusBar)
	v.SetDefault("ui.confirm_delete", cfg.UI.ConfirmDelete)
	v.SetDefault("log.level", cfg.Log.Level)

	// With SetConfigFile a missing file surfaces as a path error, not
	// viper's ConfigFileNotFoundError.
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if url := strings.TrimSpace(os.Getenv(envServerURL)); url != "" {
		cfg.ServerURL = url
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")

	return cfg, nil
}

// WriteDefaultConfig writes the default config file at path, creating
// parent directories as needed. It fails if the file already exists.
func WriteDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	content := `# DraftAI configuration
server_url: ` + DefaultServerURL + `

ui:
  show_status_bar: true
  confirm_delete: true

log:
  level: info
`
	if err := os.WriteFile(path, []byte(content), 0o640); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ParseLevel maps a config level string to a known value, defaulting to "info".
func ParseLevel(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "info", "warn", "error":
		return strings.ToLower(strings.TrimSpace(s))
	default:
		return "info"
	}
}
