package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/thirukguru/firefox-fact/service/fact"
	"github.com/thirukguru/firefox-fact/service/registry"
)

// EnvPrefix prefixes environment overrides, e.g. FIREFOX_FACT_LOG_LEVEL.
const EnvPrefix = "FIREFOX_FACT"

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	opts := fact.DefaultFirefoxOptions()
	return Config{
		Firefox: FirefoxConfig{
			KeyPath:   opts.Key.Path,
			ValueName: opts.ValueName,
			View:      opts.Key.View.String(),
		},
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "info"},
	}
}

// NewService creates a config loader that searches the user's home directory.
func NewService() Service {
	home, _ := os.UserHomeDir()
	return &service{home: home}
}

// Load reads the config file at path. With an empty path it looks for
// ~/.config/firefox-fact/config.yaml and falls back to defaults when absent.
func (s *service) Load(path string) (Config, error) {
	s.used = ""
	defaults := Defaults()

	v := viper.New()
	v.SetDefault("firefox.key_path", defaults.Firefox.KeyPath)
	v.SetDefault("firefox.value_name", defaults.Firefox.ValueName)
	v.SetDefault("firefox.view", defaults.Firefox.View)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("storage.enabled", defaults.Storage.Enabled)
	v.SetDefault("storage.db_path", defaults.Storage.DBPath)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if s.home != "" {
			v.AddConfigPath(filepath.Join(s.home, ".config", "firefox-fact"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		s.used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (s *service) ConfigFileUsed() string {
	return s.used
}

// Validate checks values that cannot be caught by decoding.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Firefox.KeyPath) == "" {
		return errors.New("firefox.key_path must not be empty")
	}
	if strings.TrimSpace(c.Firefox.ValueName) == "" {
		return errors.New("firefox.value_name must not be empty")
	}
	if _, err := registry.ParseView(c.Firefox.View); err != nil {
		return fmt.Errorf("firefox.view: %w", err)
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml", "table":
	default:
		return fmt.Errorf("output.format: unsupported format %q", c.Output.Format)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// Options converts the Firefox section into fact options.
func (c FirefoxConfig) Options() (fact.FirefoxOptions, error) {
	view, err := registry.ParseView(c.View)
	if err != nil {
		return fact.FirefoxOptions{}, err
	}

	opts := fact.DefaultFirefoxOptions()
	opts.Key.Path = strings.Trim(strings.TrimSpace(c.KeyPath), `\`)
	opts.Key.View = view
	opts.ValueName = c.ValueName

	return opts, nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	name := strings.TrimSpace(c.Level)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
