package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/thirukguru/firefox-fact/service/storage"
	"github.com/thirukguru/firefox-fact/shared/facttable"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 90, "Purge runs older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: firefox-fact db <vacuum|reindex|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return dbCommand(context.Background(), store, rest[0], *olderThan, os.Stdout)
}

func dbCommand(ctx context.Context, store storage.Service, sub string, olderThan int, w io.Writer) error {
	switch sub {
	case "vacuum":
		return store.Vacuum(ctx)
	case "reindex":
		return store.Reindex(ctx)
	case "purge":
		count, err := store.PurgeOlderThan(ctx, olderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Purged %d runs\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	limit := fs.Int("limit", 20, "Number of observations to list")
	format := fs.StringP("output", "o", "table", "Output format (table or json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: firefox-fact history <list|changes> [fact]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	factName := ""
	if len(rest) > 1 {
		factName = rest[1]
	}

	return historyCommand(store, rest[0], factName, *limit, *format, os.Stdout)
}

func historyCommand(store storage.Service, sub, factName string, limit int, format string, w io.Writer) error {
	switch sub {
	case "list":
		observations, err := store.GetHistory(factName, limit)
		if err != nil {
			return err
		}
		if format == "json" {
			return writeJSON(w, observations)
		}
		facttable.RenderHistory(w, observations)
		return nil
	case "changes":
		changes, err := store.GetChanges(factName)
		if err != nil {
			return err
		}
		if format == "json" {
			return writeJSON(w, changes)
		}
		facttable.RenderChanges(w, changes)
		return nil
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
