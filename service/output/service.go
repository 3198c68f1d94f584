// Package output renders resolved facts for the fact host or a human.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/thirukguru/firefox-fact/model"
	"github.com/thirukguru/firefox-fact/shared/console"
	"github.com/thirukguru/firefox-fact/shared/facttable"
	"gopkg.in/yaml.v3"
)

// NewService creates an output service writing to stdout in the specified format.
func NewService(format string) Service {
	f := parseFormat(format)
	colored := false
	if f == FormatTable {
		colored = console.EnableVirtualTerminal(os.Stdout)
	}

	return &service{
		format:  f,
		w:       os.Stdout,
		colored: colored,
	}
}

// NewServiceWithWriter creates an uncoloured output service writing to w.
func NewServiceWithWriter(format string, w io.Writer) Service {
	return &service{
		format: parseFormat(format),
		w:      w,
	}
}

func parseFormat(format string) Format {
	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON
	case FormatYAML:
		return FormatYAML
	case FormatTable:
		return FormatTable
	default:
		return FormatText
	}
}

func (s *service) Format() Format {
	return s.format
}

// RenderFacts prints the values. Absent facts are omitted from every format
// except table, so the host sees them as undefined.
func (s *service) RenderFacts(values []model.FactValue) error {
	switch s.format {
	case FormatJSON:
		return s.renderJSON(values)
	case FormatYAML:
		return s.renderYAML(values)
	case FormatTable:
		facttable.RenderFacts(s.w, values, s.colored)
		return nil
	default:
		return s.renderText(values)
	}
}

func (s *service) renderText(values []model.FactValue) error {
	for _, v := range values {
		if !v.Resolved {
			continue
		}
		if _, err := fmt.Fprintf(s.w, "%s=%s\n", v.Name, sanitizeLine(v.Value)); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) renderJSON(values []model.FactValue) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model.Report(values)); err != nil {
		return fmt.Errorf("failed to encode facts as json: %w", err)
	}
	return nil
}

func (s *service) renderYAML(values []model.FactValue) error {
	report := model.Report(values)
	if len(report) == 0 {
		return nil
	}

	names := make([]string, 0, len(report))
	for name := range report {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: report[name]},
		)
	}

	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode facts as yaml: %w", err)
	}
	return enc.Close()
}

// sanitizeLine keeps a value on one line so the host parses exactly one fact.
func sanitizeLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
