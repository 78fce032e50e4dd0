package modifiers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/uuid"
)

// Provider extracts contributions from one aspect of a snapshot.
// Implementations must honor ctx cancellation; a slow provider is cut
// off at the collector's per-provider bound and contributes nothing.
type Provider func(ctx context.Context, snap *entity.Snapshot) ([]contribution.Contribution, error)

// NamedProvider pairs a provider with the name collection logs use
type NamedProvider struct {
	Name    string
	Provide Provider
}

// CollectorConfig wires a Collector
type CollectorConfig struct {
	// Providers run for every collection, in registration order
	Providers []NamedProvider

	// IDGenerator stamps contributions that arrive without an ID
	IDGenerator uuid.Generator

	// ProviderTimeout bounds each provider call. Zero leaves only the
	// caller's context deadline in effect.
	ProviderTimeout time.Duration

	// Logger defaults to slog.Default when nil
	Logger *slog.Logger
}

// Validate ensures the config has the required dependencies
func (c *CollectorConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.IDGenerator == nil {
		return errors.InvalidArgument("id generator cannot be nil")
	}
	for i, p := range c.Providers {
		if p.Name == "" {
			return errors.InvalidArgumentf("provider %d must have a name", i)
		}
		if p.Provide == nil {
			return errors.InvalidArgumentf("provider %q must have a function", p.Name)
		}
	}
	return nil
}

// Collector gathers contributions from independent providers. A failing,
// panicking, or timed-out provider contributes an empty list; collection
// never aborts because one provider broke.
type Collector struct {
	providers []NamedProvider
	ids       uuid.Generator
	timeout   time.Duration
	log       *slog.Logger
}

// NewCollector creates a collector from the config
func NewCollector(cfg *CollectorConfig) (*Collector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Collector{
		providers: cfg.Providers,
		ids:       cfg.IDGenerator,
		timeout:   cfg.ProviderTimeout,
		log:       log,
	}, nil
}

// Collect runs every provider against the snapshot and merges their
// contributions in registration order. Contributions that fail
// validation are dropped, and missing IDs are stamped, so downstream
// resolution can rely on well-formed input.
func (c *Collector) Collect(ctx context.Context, snap *entity.Snapshot) ([]contribution.Contribution, error) {
	if snap == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}

	results := make([][]contribution.Contribution, len(c.providers))
	g, gctx := errgroup.WithContext(ctx)

	for i, p := range c.providers {
		i, p := i, p
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					c.log.Error("contribution provider panicked",
						"provider", p.Name,
						"entity", snap.ID,
						"panic", r)
				}
			}()

			pctx := gctx
			if c.timeout > 0 {
				var cancel context.CancelFunc
				pctx, cancel = context.WithTimeout(gctx, c.timeout)
				defer cancel()
			}

			contribs, err := p.Provide(pctx, snap)
			if err != nil {
				c.log.Warn("contribution provider failed",
					"provider", p.Name,
					"entity", snap.ID,
					"error", err)
				return nil
			}
			results[i] = contribs
			return nil
		})
	}

	// Providers never report errors into the group; Wait only joins.
	_ = g.Wait()

	var collected []contribution.Contribution
	for i, p := range c.providers {
		for _, contrib := range results[i] {
			if err := contrib.Validate(); err != nil {
				c.log.Warn("dropping malformed contribution",
					"provider", p.Name,
					"entity", snap.ID,
					"error", err)
				continue
			}
			if contrib.ID == "" {
				contrib.ID = c.ids.New()
			}
			collected = append(collected, contrib)
		}
	}
	return collected, nil
}
