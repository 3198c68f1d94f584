package facttable

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/thirukguru/firefox-fact/model"
	"github.com/thirukguru/firefox-fact/service/storage"
)

func TestRenderFacts(t *testing.T) {
	var buf bytes.Buffer
	RenderFacts(&buf, []model.FactValue{
		{Name: "firefox_version", Value: "102.0", Resolved: true, Suitable: true},
		{Name: "other", Suitable: false, Reason: "confined to osfamily=windows"},
	}, false)

	out := buf.String()
	assert.Contains(t, out, "firefox_version")
	assert.Contains(t, out, "102.0")
	assert.Contains(t, out, "resolved")
	assert.Contains(t, out, "confined (confined to osfamily=windows)")
	assert.NotContains(t, out, "\x1b[", "plain output must not carry escapes")
}

func TestRenderHistoryAndChanges(t *testing.T) {
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	RenderHistory(&buf, []storage.Observation{
		{RunID: 7, FactName: "firefox_version", Value: "115.0", Resolved: true, Suitable: true, Hostname: "ws-01", ObservedAt: at},
		{RunID: 6, FactName: "firefox_version", Suitable: true, Hostname: "ws-01", ObservedAt: at},
	})
	assert.Contains(t, buf.String(), "2026-10-01 12:00:00")
	assert.Contains(t, buf.String(), "115.0")
	assert.Contains(t, buf.String(), "(absent)")

	buf.Reset()
	RenderChanges(&buf, []storage.Change{
		{RunID: 7, FactName: "firefox_version", Hostname: "ws-01", Kind: storage.ChangeInstalled, To: "115.0", ChangedAt: at},
	})
	assert.Contains(t, buf.String(), "installed")
	assert.Contains(t, buf.String(), "115.0")
}
