package modifiers

import (
	"context"
	"log/slog"

	"github.com/agnivade/levenshtein"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion for an unknown domain key.
const maxSuggestDistance = 3

// AggregatorConfig wires an Aggregator
type AggregatorConfig struct {
	Collector *Collector
	Catalog   Catalog

	// Logger defaults to slog.Default when nil
	Logger *slog.Logger
}

// Validate ensures the config has the required dependencies
func (c *AggregatorConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Collector == nil {
		return errors.InvalidArgument("collector cannot be nil")
	}
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog cannot be nil")
	}
	return nil
}

// Aggregator computes per-domain totals by collecting contributions,
// resolving stacking, summing, and clamping to the domain cap. Results
// are computed fresh per call; nothing is cached between calls.
type Aggregator struct {
	collector *Collector
	catalog   Catalog
	log       *slog.Logger
}

var _ Source = (*Aggregator)(nil)

// NewAggregator creates an aggregator from the config
func NewAggregator(cfg *AggregatorConfig) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Aggregator{
		collector: cfg.Collector,
		catalog:   cfg.Catalog,
		log:       log,
	}, nil
}

// AggregateAll computes the clamped total of every defined domain the
// snapshot contributes to. Contributions targeting keys the catalog
// does not define are skipped.
func (a *Aggregator) AggregateAll(ctx context.Context, snap *entity.Snapshot) (map[string]int, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	contribs, err := a.collector.Collect(ctx, snap)
	if err != nil {
		return nil, err
	}

	byTarget := make(map[string][]contribution.Contribution)
	for _, c := range contribs {
		byTarget[c.Target] = append(byTarget[c.Target], c)
	}

	totals := make(map[string]int, len(byTarget))
	for target, group := range byTarget {
		domain, ok := a.catalog.Domain(target)
		if !ok {
			a.log.Debug("skipping contributions to undefined domain",
				"entity", snap.ID,
				"target", target,
				"count", len(group))
			continue
		}

		resolved := Resolve(domain, group)
		if len(resolved) == 0 {
			continue
		}
		totals[target] = domain.Cap.Clamp(Sum(resolved))
	}
	return totals, nil
}

// AggregateTarget returns one domain's clamped total. An unknown domain
// degrades to zero so callers composing larger formulas keep working.
func (a *Aggregator) AggregateTarget(ctx context.Context, snap *entity.Snapshot, target string) (int, error) {
	result, err := a.Detail(ctx, snap, target)
	if err != nil {
		return 0, err
	}
	if result.Err != nil {
		return 0, nil
	}
	return result.Total, nil
}

// Detail aggregates one target and returns the full result with its
// breakdown. An unknown domain key comes back as a zero-total result
// with Err set rather than a hard failure.
func (a *Aggregator) Detail(ctx context.Context, snap *entity.Snapshot, target string) (*AggregationResult, error) {
	if target == "" {
		return nil, errors.InvalidArgument("target cannot be empty")
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	result := &AggregationResult{Target: target}

	domain, ok := a.catalog.Domain(target)
	if !ok {
		result.Err = a.unknownDomain(target)
		a.log.Warn("aggregation requested for unknown domain",
			"entity", snap.ID,
			"target", target)
		return result, nil
	}

	contribs, err := a.collector.Collect(ctx, snap)
	if err != nil {
		return nil, err
	}

	var matching []contribution.Contribution
	for _, c := range contribs {
		if c.Target == target {
			matching = append(matching, c)
		}
	}

	resolved := Resolve(domain, matching)
	result.Total = domain.Cap.Clamp(Sum(resolved))
	result.Applied = resolved
	result.Breakdown = buildBreakdown(resolved)
	return result, nil
}

func buildBreakdown(applied []contribution.Contribution) []BreakdownEntry {
	if len(applied) == 0 {
		return nil
	}
	entries := make([]BreakdownEntry, 0, len(applied))
	for _, c := range applied {
		entries = append(entries, BreakdownEntry{
			Label:  c.Label(),
			Value:  c.Value,
			Source: c.SourceID,
		})
	}
	return entries
}

// unknownDomain builds the soft error for an undefined target key,
// naming the closest defined key when one is within typo range.
func (a *Aggregator) unknownDomain(target string) error {
	if suggestion := closestKey(target, a.catalog.Keys()); suggestion != "" {
		return errors.NotFoundf("unknown domain %q (did you mean %q?)", target, suggestion)
	}
	return errors.NotFoundf("unknown domain %q", target)
}

func closestKey(target string, keys []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, key := range keys {
		if d := levenshtein.ComputeDistance(target, key); d < bestDist {
			bestDist = d
			best = key
		}
	}
	return best
}
