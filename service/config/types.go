// Package config loads the firefox-fact configuration file.
package config

// Config holds all configuration options for firefox-fact.
type Config struct {
	Firefox FirefoxConfig `mapstructure:"firefox"`
	Output  OutputConfig  `mapstructure:"output"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// FirefoxConfig locates the Firefox version in the registry.
type FirefoxConfig struct {
	KeyPath   string `mapstructure:"key_path"`
	ValueName string `mapstructure:"value_name"`
	View      string `mapstructure:"view"` // "64" (default), "32" or "native"
}

// OutputConfig controls how facts are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// StorageConfig controls the local observation history.
type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

// LogConfig controls stderr logging.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

type service struct {
	home string
	used string
}

// Service is the interface for the config loader.
type Service interface {
	Load(path string) (Config, error)
	// ConfigFileUsed returns the file the last Load read, or "" when only defaults applied.
	ConfigFileUsed() string
}
