package output

import (
	"io"

	"github.com/thirukguru/firefox-fact/model"
)

// Format represents the output format type
type Format string

const (
	// FormatText prints name=value lines, the executable external fact format.
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// service is the internal implementation
type service struct {
	format  Format
	w       io.Writer
	colored bool
}

// Service defines the interface for output operations
type Service interface {
	RenderFacts(values []model.FactValue) error
	Format() Format
}
