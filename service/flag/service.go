package flag

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/firefox-fact/model"
)

// Formats lists the accepted --format values.
var Formats = []string{"text", "json", "yaml", "table"}

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
// Positional arguments name the facts to resolve.
func (s *service) GetParsedFlags() (model.Flags, error) {
	format := pflag.StringP("format", "o", "text", "Output format (text, json, yaml, or table)")
	debug := pflag.BoolP("debug", "d", false, "Log registry and confinement decisions to stderr")
	configPath := pflag.String("config-path", "", "Path to firefox-fact config file (default ~/.config/firefox-fact/config.yaml)")
	store := pflag.Bool("store", false, "Record resolved facts in the local SQLite history")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.firefox-fact/history.db)")
	version := pflag.BoolP("version", "v", false, "Show version information")

	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return model.Flags{}, err
	}

	f := strings.ToLower(strings.TrimSpace(*format))
	if !validFormat(f) {
		return model.Flags{}, fmt.Errorf("unsupported format %q (want one of %s)", *format, strings.Join(Formats, ", "))
	}

	var facts []string
	for _, name := range pflag.Args() {
		name = strings.TrimSpace(name)
		if name != "" {
			facts = append(facts, name)
		}
	}

	flags := model.Flags{
		Format:     f,
		FormatSet:  pflag.CommandLine.Changed("format"),
		Debug:      *debug,
		ConfigPath: *configPath,
		Store:      *store,
		DBPath:     *dbPath,
		Version:    *version,
		Facts:      facts,
	}

	return flags, nil
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
