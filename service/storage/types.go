package storage

import (
	"context"
	"time"

	"github.com/thirukguru/firefox-fact/model"
)

// Service defines persistence and history queries for fact observations.
type Service interface {
	SaveObservations(ctx context.Context, input SaveInput) (int64, error)
	GetHistory(factName string, limit int) ([]Observation, error)
	GetChanges(factName string) ([]Change, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveInput is the payload saved for one resolution run.
type SaveInput struct {
	RunUUID  string
	Hostname string
	OSFamily string
	Version  string
	Values   []model.FactValue
}

// Observation is one fact value as seen by one run.
type Observation struct {
	ObservationID int64     `json:"observation_id"`
	RunID         int64     `json:"run_id"`
	FactName      string    `json:"fact"`
	Value         string    `json:"value"`
	Resolved      bool      `json:"resolved"`
	Suitable      bool      `json:"suitable"`
	Hostname      string    `json:"hostname"`
	OSFamily      string    `json:"os_family"`
	Version       string    `json:"cli_version"`
	ObservedAt    time.Time `json:"observed_at"`
}

// Change kinds.
const (
	ChangeInstalled = "installed"
	ChangeRemoved   = "removed"
	ChangeUpdated   = "changed"
)

// Change is a transition between two consecutive observations of a fact on one host.
type Change struct {
	FactName  string    `json:"fact"`
	Hostname  string    `json:"hostname"`
	Kind      string    `json:"kind"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	RunID     int64     `json:"run_id"`
	ChangedAt time.Time `json:"changed_at"`
}
