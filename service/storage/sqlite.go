// Package storage keeps a local SQLite history of fact observations.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.firefox-fact/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveObservations(ctx context.Context, input SaveInput) (runID int64, err error) {
	if input.Hostname == "" {
		return 0, errors.New("hostname is required")
	}
	if input.OSFamily == "" {
		input.OSFamily = "unknown"
	}
	if input.RunUUID == "" {
		input.RunUUID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (run_uuid, hostname, os_family, cli_version)
		VALUES (?, ?, ?, ?)
	`, input.RunUUID, input.Hostname, input.OSFamily, input.Version)
	if err != nil {
		return 0, err
	}
	runID, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, v := range input.Values {
		if v.Name == "" {
			continue
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO observations (run_id, fact_name, value, resolved, suitable)
			VALUES (?, ?, ?, ?, ?)
		`, runID, v.Name, v.Value, v.Resolved, v.Suitable)
		if err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

const observationColumns = `
	o.observation_id, o.run_id, o.fact_name, o.value, o.resolved, o.suitable,
	r.hostname, r.os_family, COALESCE(r.cli_version, ''), r.run_timestamp
`

func (s *service) GetHistory(factName string, limit int) ([]Observation, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT ` + observationColumns + `
		FROM observations o
		JOIN runs r ON r.run_id = o.run_id
	`
	args := []any{}
	if factName != "" {
		query += " WHERE o.fact_name=?"
		args = append(args, factName)
	}
	query += " ORDER BY o.run_id DESC, o.fact_name ASC LIMIT ?"
	args = append(args, limit)

	return s.queryObservations(query, args...)
}

// GetChanges walks observations oldest first and reports every run where a
// fact's value differs from the previous suitable observation on the same host.
func (s *service) GetChanges(factName string) ([]Change, error) {
	query := `SELECT ` + observationColumns + `
		FROM observations o
		JOIN runs r ON r.run_id = o.run_id
		WHERE o.suitable = 1
	`
	args := []any{}
	if factName != "" {
		query += " AND o.fact_name=?"
		args = append(args, factName)
	}
	query += " ORDER BY o.run_id ASC, o.fact_name ASC"

	observations, err := s.queryObservations(query, args...)
	if err != nil {
		return nil, err
	}

	type seriesKey struct{ host, fact string }
	last := map[seriesKey]Observation{}
	changes := []Change{}
	for _, o := range observations {
		key := seriesKey{host: o.Hostname, fact: o.FactName}
		prev, seen := last[key]
		last[key] = o
		if !seen {
			continue
		}
		if kind := changeKind(prev, o); kind != "" {
			changes = append(changes, Change{
				FactName:  o.FactName,
				Hostname:  o.Hostname,
				Kind:      kind,
				From:      prev.Value,
				To:        o.Value,
				RunID:     o.RunID,
				ChangedAt: o.ObservedAt,
			})
		}
	}
	return changes, nil
}

func changeKind(prev, cur Observation) string {
	switch {
	case !prev.Resolved && cur.Resolved:
		return ChangeInstalled
	case prev.Resolved && !cur.Resolved:
		return ChangeRemoved
	case prev.Resolved && cur.Resolved && prev.Value != cur.Value:
		return ChangeUpdated
	default:
		return ""
	}
}

func (s *service) queryObservations(query string, args ...any) ([]Observation, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Observation{}
	for rows.Next() {
		var o Observation
		if err := rows.Scan(&o.ObservationID, &o.RunID, &o.FactName, &o.Value, &o.Resolved, &o.Suitable,
			&o.Hostname, &o.OSFamily, &o.Version, &o.ObservedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE run_timestamp < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
