package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/thirukguru/firefox-fact/model"
	"github.com/thirukguru/firefox-fact/service/config"
	"github.com/thirukguru/firefox-fact/service/fact"
	"github.com/thirukguru/firefox-fact/service/output"
	"github.com/thirukguru/firefox-fact/service/registry"
	"github.com/thirukguru/firefox-fact/service/storage"
)

type resolveInput struct {
	Config      config.Config
	Facts       []string
	VersionInfo model.VersionInfo
	Output      output.Service
	Logger      *slog.Logger

	// Overridable in tests.
	Env     *fact.Environment
	Opener  registry.KeyOpener
	Storage storage.Service
}

func runResolve(in resolveInput) error {
	ctx := context.Background()
	if in.Logger == nil {
		in.Logger = slog.Default()
	}
	logger := in.Logger

	env := fact.CurrentEnvironment()
	if in.Env != nil {
		env = *in.Env
	}

	var reg registry.Service
	if in.Opener != nil {
		reg = registry.NewServiceWithOpener(in.Opener, logger)
	} else {
		reg = registry.NewService(logger)
	}

	facts, err := newFactService(env, reg, in.Config, logger)
	if err != nil {
		return err
	}

	values := resolveFacts(ctx, facts, in.Facts, logger)

	if in.Config.Storage.Enabled {
		if err := storeValues(ctx, in, env, values); err != nil {
			return err
		}
	}

	return in.Output.RenderFacts(values)
}

func newFactService(env fact.Environment, reg registry.Service, cfg config.Config, logger *slog.Logger) (fact.Service, error) {
	opts, err := cfg.Firefox.Options()
	if err != nil {
		return nil, fmt.Errorf("invalid firefox config: %w", err)
	}

	facts := fact.NewService(env, logger)
	if err := facts.Register(fact.NewFirefoxVersionFact(reg, opts)); err != nil {
		return nil, err
	}
	return facts, nil
}

// resolveFacts evaluates the named facts, or every registered fact when names
// is empty. Unknown names resolve to nothing, as the fact host does.
func resolveFacts(ctx context.Context, facts fact.Service, names []string, logger *slog.Logger) []model.FactValue {
	if len(names) == 0 {
		return facts.ResolveAll(ctx)
	}

	values := make([]model.FactValue, 0, len(names))
	for _, name := range names {
		v, err := facts.Resolve(ctx, name)
		if err != nil {
			logger.Debug("skipping fact", "fact", name, "error", err)
			continue
		}
		values = append(values, v)
	}
	return values
}

func storeValues(ctx context.Context, in resolveInput, env fact.Environment, values []model.FactValue) error {
	store := in.Storage
	if store == nil {
		var err error
		store, err = storage.NewService(in.Config.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer store.Close()
	}

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}

	runID, err := store.SaveObservations(ctx, storage.SaveInput{
		Hostname: hostname,
		OSFamily: env.OSFamily,
		Version:  in.VersionInfo.Version,
		Values:   values,
	})
	if err != nil {
		return fmt.Errorf("failed to store observations: %w", err)
	}
	in.Logger.Debug("stored observations", "run_id", runID, "count", len(values))
	return nil
}
