package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/firefox-fact/model"
	"gopkg.in/yaml.v3"
)

var sample = []model.FactValue{
	{Name: "firefox_version", Value: "102.0", Resolved: true, Suitable: true},
	{Name: "absent_fact", Suitable: true, Reason: "no value"},
}

func render(t *testing.T, format string, values []model.FactValue) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewServiceWithWriter(format, &buf).RenderFacts(values))
	return buf.String()
}

func TestRenderText(t *testing.T) {
	assert.Equal(t, "firefox_version=102.0\n", render(t, "text", sample))
}

func TestRenderTextAbsentPrintsNothing(t *testing.T) {
	assert.Empty(t, render(t, "text", sample[1:]))
}

func TestRenderTextKeepsOneLinePerFact(t *testing.T) {
	out := render(t, "text", []model.FactValue{{Name: "f", Value: "a\nb", Resolved: true}})
	assert.Equal(t, "f=a b\n", out)
}

func TestRenderJSON(t *testing.T) {
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(render(t, "json", sample)), &got))
	assert.Equal(t, map[string]string{"firefox_version": "102.0"}, got)

	assert.JSONEq(t, `{}`, render(t, "json", nil))
}

func TestRenderYAML(t *testing.T) {
	out := render(t, "yaml", []model.FactValue{
		{Name: "firefox_version", Value: "102.0", Resolved: true},
		{Name: "answer", Value: "42", Resolved: true},
	})

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"firefox_version": "102.0", "answer": "42"}, got, "numeric-looking versions stay strings")
	assert.Less(t, bytes.Index([]byte(out), []byte("answer")), bytes.Index([]byte(out), []byte("firefox_version")))

	assert.Empty(t, render(t, "yaml", sample[1:]))
}

func TestRenderTable(t *testing.T) {
	out := render(t, "table", sample)
	assert.Contains(t, out, "firefox_version")
	assert.Contains(t, out, "absent")
}

func TestParseFormatFallsBackToText(t *testing.T) {
	assert.Equal(t, FormatText, NewServiceWithWriter("bogus", &bytes.Buffer{}).Format())
	assert.Equal(t, FormatYAML, NewServiceWithWriter("YAML", &bytes.Buffer{}).Format())
}
