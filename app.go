// Package main is the entry point for the firefox-fact executable fact.
package main

import (
	"fmt"
	"os"

	"github.com/thirukguru/firefox-fact/model"
	"github.com/thirukguru/firefox-fact/service/config"
	"github.com/thirukguru/firefox-fact/service/flag"
	"github.com/thirukguru/firefox-fact/service/output"
	"github.com/thirukguru/firefox-fact/shared/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	if flags.Version {
		fmt.Println(versionInfo.String())
		return nil
	}

	configService := config.NewService()
	cfg, err := configService.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	cfg = applyFlags(cfg, flags)

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger := logging.Setup(level, flags.Debug)
	if used := configService.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "path", used)
	}

	return runResolve(resolveInput{
		Config:      cfg,
		Facts:       flags.Facts,
		VersionInfo: versionInfo,
		Output:      output.NewService(cfg.Output.Format),
		Logger:      logger,
	})
}

// applyFlags lets explicit command-line flags win over the config file.
func applyFlags(cfg config.Config, flags model.Flags) config.Config {
	if flags.FormatSet {
		cfg.Output.Format = flags.Format
	}
	if flags.Store {
		cfg.Storage.Enabled = true
	}
	if flags.DBPath != "" {
		cfg.Storage.DBPath = flags.DBPath
	}
	if flags.Debug {
		cfg.Log.Level = "debug"
	}
	return cfg
}
