package model

// Flags represents the command line flags.
type Flags struct {
	Format     string
	FormatSet  bool
	Debug      bool
	ConfigPath string
	Store      bool
	DBPath     string
	Version    bool
	Facts      []string
}
