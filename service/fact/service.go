package fact

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/thirukguru/firefox-fact/model"
)

// NewService creates a fact host for the given environment.
func NewService(env Environment, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		env:    env,
		logger: logger,
		facts:  map[string]Fact{},
	}
}

// CurrentEnvironment describes the running host.
func CurrentEnvironment() Environment {
	return Environment{OSFamily: OSFamily(runtime.GOOS)}
}

// OSFamily maps a GOOS value to a Facter-style OS family name.
func OSFamily(goos string) string {
	switch goos {
	case "windows":
		return "windows"
	case "darwin":
		return "darwin"
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return goos
	case "solaris", "illumos":
		return "solaris"
	default:
		return "linux"
	}
}

func (s *service) Register(f Fact) error {
	name := strings.TrimSpace(f.Name)
	if name == "" || f.Resolve == nil {
		return fmt.Errorf("%w: name and resolver are required", ErrInvalidFact)
	}
	if _, exists := s.facts[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFact, name)
	}

	f.Name = name
	s.facts[name] = f
	s.order = append(s.order, name)

	return nil
}

// Names returns registered fact names in registration order.
func (s *service) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

func (s *service) Resolve(ctx context.Context, name string) (model.FactValue, error) {
	f, ok := s.facts[name]
	if !ok {
		return model.FactValue{Name: name}, fmt.Errorf("%w: %s", ErrUnknownFact, name)
	}

	return s.evaluate(ctx, f), nil
}

func (s *service) ResolveAll(ctx context.Context) []model.FactValue {
	out := make([]model.FactValue, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.evaluate(ctx, s.facts[name]))
	}

	return out
}

func (s *service) evaluate(ctx context.Context, f Fact) model.FactValue {
	if attr, want, ok := s.unmetConfinement(f); !ok {
		s.logger.Debug("fact confined out", "fact", f.Name, "attribute", attr, "want", want)
		return model.FactValue{
			Name:   f.Name,
			Reason: fmt.Sprintf("confined to %s=%s", attr, want),
		}
	}

	value, ok := f.Resolve(ctx)
	if !ok {
		s.logger.Debug("fact resolved to nothing", "fact", f.Name)
		return model.FactValue{Name: f.Name, Suitable: true, Reason: "no value"}
	}

	s.logger.Debug("fact resolved", "fact", f.Name, "value", value)
	return model.FactValue{Name: f.Name, Value: value, Resolved: true, Suitable: true}
}

// unmetConfinement returns the first confinement that does not match, if any.
func (s *service) unmetConfinement(f Fact) (string, string, bool) {
	for attr, want := range f.Confine {
		var have string
		switch attr {
		case ConfineOSFamily:
			have = s.env.OSFamily
		}
		if !strings.EqualFold(have, want) {
			return attr, want, false
		}
	}

	return "", "", true
}
