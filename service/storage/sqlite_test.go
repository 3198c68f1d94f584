package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/firefox-fact/model"
)

func newTestStorage(t *testing.T) Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	svc, err := NewService(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func firefox(value string) model.FactValue {
	return model.FactValue{Name: "firefox_version", Value: value, Resolved: value != "", Suitable: true}
}

func save(t *testing.T, svc Service, host string, values ...model.FactValue) int64 {
	t.Helper()
	id, err := svc.SaveObservations(context.Background(), SaveInput{
		Hostname: host,
		OSFamily: "windows",
		Version:  "test",
		Values:   values,
	})
	require.NoError(t, err)
	return id
}

func TestSaveObservationsAndHistory(t *testing.T) {
	svc := newTestStorage(t)

	runID := save(t, svc, "ws-01", firefox("102.0"), model.FactValue{Name: "other", Suitable: false})
	assert.Positive(t, runID)

	history, err := svc.GetHistory("", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	history, err = svc.GetHistory("firefox_version", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	got := history[0]
	assert.Equal(t, runID, got.RunID)
	assert.Equal(t, "102.0", got.Value)
	assert.True(t, got.Resolved)
	assert.True(t, got.Suitable)
	assert.Equal(t, "ws-01", got.Hostname)
	assert.Equal(t, "windows", got.OSFamily)
	assert.Equal(t, "test", got.Version)
	assert.False(t, got.ObservedAt.IsZero())
}

func TestHistoryNewestFirstAndLimited(t *testing.T) {
	svc := newTestStorage(t)
	save(t, svc, "ws-01", firefox("101.0"))
	save(t, svc, "ws-01", firefox("102.0"))
	save(t, svc, "ws-01", firefox("103.0"))

	history, err := svc.GetHistory("firefox_version", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "103.0", history[0].Value)
	assert.Equal(t, "102.0", history[1].Value)
}

func TestSaveObservationsRequiresHostname(t *testing.T) {
	svc := newTestStorage(t)
	_, err := svc.SaveObservations(context.Background(), SaveInput{Values: []model.FactValue{firefox("1.0")}})
	assert.Error(t, err)
}

func TestGetChanges(t *testing.T) {
	svc := newTestStorage(t)
	save(t, svc, "ws-01", firefox(""))
	save(t, svc, "ws-01", firefox("102.0"))
	save(t, svc, "ws-02", firefox("110.0"))
	save(t, svc, "ws-01", firefox("102.0"))
	save(t, svc, "ws-01", firefox("115.0"))
	save(t, svc, "ws-01", firefox(""))
	save(t, svc, "ws-02", firefox("110.0"))

	changes, err := svc.GetChanges("firefox_version")
	require.NoError(t, err)
	require.Len(t, changes, 3)

	assert.Equal(t, ChangeInstalled, changes[0].Kind)
	assert.Equal(t, "102.0", changes[0].To)

	assert.Equal(t, ChangeUpdated, changes[1].Kind)
	assert.Equal(t, "102.0", changes[1].From)
	assert.Equal(t, "115.0", changes[1].To)

	assert.Equal(t, ChangeRemoved, changes[2].Kind)
	assert.Equal(t, "115.0", changes[2].From)
	for _, c := range changes {
		assert.Equal(t, "ws-01", c.Hostname)
	}
}

func TestGetChangesIgnoresUnsuitableObservations(t *testing.T) {
	svc := newTestStorage(t)
	save(t, svc, "ws-01", firefox("102.0"))
	save(t, svc, "ws-01", model.FactValue{Name: "firefox_version"})
	save(t, svc, "ws-01", firefox("102.0"))

	changes, err := svc.GetChanges("")
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestMaintenance(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()
	save(t, svc, "ws-01", firefox("102.0"))

	require.NoError(t, svc.Vacuum(ctx))
	require.NoError(t, svc.Reindex(ctx))

	purged, err := svc.PurgeOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.Zero(t, purged)

	_, err = svc.PurgeOlderThan(ctx, 0)
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	p, err := resolvePath("/tmp/x/../history.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("/tmp/history.db"), p)

	p, err = resolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "history.db", filepath.Base(p))
	assert.Equal(t, ".firefox-fact", filepath.Base(filepath.Dir(p)))
}
