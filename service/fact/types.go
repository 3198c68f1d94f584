// Package fact registers named facts and evaluates them under confinement.
package fact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thirukguru/firefox-fact/model"
)

// ConfineOSFamily is the confinement key matched against the host OS family.
const ConfineOSFamily = "osfamily"

// Resolver computes a fact value. ok is false when the fact has no value.
type Resolver func(ctx context.Context) (value string, ok bool)

// Fact is a named, lazily evaluated piece of system information.
type Fact struct {
	Name string
	// Confine lists attribute values that must all match before Resolve runs.
	Confine map[string]string
	Resolve Resolver
}

// Environment holds the host attributes confinement is checked against.
type Environment struct {
	OSFamily string
}

var (
	ErrUnknownFact   = errors.New("unknown fact")
	ErrDuplicateFact = errors.New("fact already registered")
	ErrInvalidFact   = errors.New("invalid fact")
)

type service struct {
	env    Environment
	logger *slog.Logger
	facts  map[string]Fact
	order  []string
}

// Service is the interface for the fact host.
type Service interface {
	Register(f Fact) error
	Names() []string
	Resolve(ctx context.Context, name string) (model.FactValue, error)
	ResolveAll(ctx context.Context) []model.FactValue
}
