// Package facttable renders facts and their history as terminal tables.
package facttable

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/firefox-fact/model"
	"github.com/thirukguru/firefox-fact/service/storage"
)

const timeLayout = "2006-01-02 15:04:05"

// RenderFacts prints one row per fact. Colors are applied only when colored is set.
func RenderFacts(w io.Writer, values []model.FactValue, colored bool) {
	t := newWriter(w)
	t.AppendHeader(table.Row{"Fact", "Value", "Status"})
	for _, v := range values {
		value := v.Value
		if !v.Resolved {
			value = "-"
		}
		t.AppendRow(table.Row{v.Name, value, status(v, colored)})
	}
	t.Render()
}

func status(v model.FactValue, colored bool) string {
	var label string
	var color text.Color
	switch {
	case v.Resolved:
		label, color = "resolved", text.FgGreen
	case !v.Suitable:
		label, color = "confined", text.FgHiBlack
	default:
		label, color = "absent", text.FgYellow
	}
	if v.Reason != "" && !v.Resolved {
		label += " (" + v.Reason + ")"
	}
	if colored {
		return color.Sprint(label)
	}
	return label
}

// RenderHistory prints stored observations.
func RenderHistory(w io.Writer, observations []storage.Observation) {
	t := newWriter(w)
	t.AppendHeader(table.Row{"Run", "Observed", "Host", "Fact", "Value"})
	for _, o := range observations {
		value := o.Value
		switch {
		case !o.Suitable:
			value = "(confined)"
		case !o.Resolved:
			value = "(absent)"
		}
		t.AppendRow(table.Row{o.RunID, o.ObservedAt.Format(timeLayout), o.Hostname, o.FactName, value})
	}
	t.Render()
}

// RenderChanges prints value transitions.
func RenderChanges(w io.Writer, changes []storage.Change) {
	t := newWriter(w)
	t.AppendHeader(table.Row{"Run", "Changed", "Host", "Fact", "Kind", "From", "To"})
	for _, c := range changes {
		t.AppendRow(table.Row{c.RunID, c.ChangedAt.Format(timeLayout), c.Hostname, c.FactName, c.Kind, orDash(c.From), orDash(c.To)})
	}
	t.Render()
}

func newWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
