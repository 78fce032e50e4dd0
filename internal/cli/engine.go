package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/rulebook/swse"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/services/resolution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/uuid"
)

// buildService assembles the engine stack behind the CLI commands. Logs
// go to errWriter so they never mix with command output.
func buildService(opts *RootOptions, errWriter io.Writer) (resolution.Service, error) {
	facts, err := parseFacts(opts.Facts)
	if err != nil {
		return nil, err
	}

	scaling := swse.LevelScaling(opts.Scaling)
	if scaling != "" && !scaling.IsValid() {
		return nil, fmt.Errorf("invalid scaling %q: must be full or half", opts.Scaling)
	}

	catalog, err := loadCatalog(opts)
	if err != nil {
		return nil, err
	}

	logger := newLogger(opts, errWriter)

	collector, err := modifiers.NewCollector(&modifiers.CollectorConfig{
		Providers:       swse.DefaultProviders(facts),
		IDGenerator:     uuid.NewGoogleUUIDGenerator(),
		ProviderTimeout: opts.Timeout,
		Logger:          logger,
	})
	if err != nil {
		return nil, err
	}

	aggregator, err := modifiers.NewAggregator(&modifiers.AggregatorConfig{
		Collector: collector,
		Catalog:   catalog,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	return resolution.NewService(&resolution.ServiceConfig{
		Modifiers: aggregator,
		Scaling:   scaling,
		Logger:    logger,
	}), nil
}

func loadCatalog(opts *RootOptions) (*swse.Catalog, error) {
	if opts.Catalog == "" {
		return swse.BuiltinCatalog(), nil
	}
	return swse.LoadCatalogFile(opts.Catalog)
}

func newLogger(opts *RootOptions, errWriter io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(errWriter, &slog.HandlerOptions{Level: level}))
}

// parseFacts turns repeated key=value flags into the session fact map
// that gates conditional grants.
func parseFacts(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	facts := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid fact %q: must be key=value", pair)
		}
		facts[key] = value
	}
	return facts, nil
}
