// Package modifiers implements contribution collection, stacking
// resolution, and per-domain aggregation over entity snapshots.
package modifiers

//go:generate mockgen -destination=mock/mock_types.go -package=mockmodifiers -source=types.go

import (
	"context"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
)

// StackingRule names the policy governing how contributions sharing a
// stacking category combine within one domain.
type StackingRule string

const (
	// RuleStack lets every enabled contribution count
	RuleStack StackingRule = "stack"

	// RuleHighestOnly keeps the single largest contribution per category
	RuleHighestOnly StackingRule = "highest-only"

	// RuleStackUnlessSameSource stacks across sources but keeps only the
	// largest contribution from any one source
	RuleStackUnlessSameSource StackingRule = "stack-unless-same-source"

	// RuleExclusive keeps one winner for the whole domain, ignoring
	// category tags entirely. Used for single-slot domains like the
	// overall attack bonus or an absorption pool.
	RuleExclusive StackingRule = "exclusive"
)

// IsValid reports whether the rule is one of the known policies
func (r StackingRule) IsValid() bool {
	switch r {
	case RuleStack, RuleHighestOnly, RuleStackUnlessSameSource, RuleExclusive:
		return true
	}
	return false
}

// Cap clamps a domain total after summation. Nil bounds are open.
type Cap struct {
	Min *int `json:"min,omitempty" yaml:"min,omitempty"`
	Max *int `json:"max,omitempty" yaml:"max,omitempty"`
}

// Clamp applies the configured bounds to a total
func (c *Cap) Clamp(total int) int {
	if c == nil {
		return total
	}
	if c.Max != nil && total > *c.Max {
		total = *c.Max
	}
	if c.Min != nil && total < *c.Min {
		total = *c.Min
	}
	return total
}

// Domain is the static definition of one target key: how its
// contributions combine and what bounds the total. Definitions are
// immutable at resolution time.
type Domain struct {
	Key  string       `json:"key" yaml:"key"`
	Rule StackingRule `json:"rule,omitempty" yaml:"rule,omitempty"`
	Cap  *Cap         `json:"cap,omitempty" yaml:"cap,omitempty"`
}

// EffectiveRule returns the domain's rule, defaulting to stack
func (d Domain) EffectiveRule() StackingRule {
	if d.Rule == "" {
		return RuleStack
	}
	return d.Rule
}

// Catalog is the host-supplied domain table, read-only at resolution time
type Catalog interface {
	// Domain looks up a definition by target key
	Domain(key string) (Domain, bool)

	// Keys lists every defined domain key
	Keys() []string
}

// BreakdownEntry is one display line of an aggregation result
type BreakdownEntry struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Source string `json:"source"`
}

// AggregationResult is the full outcome of aggregating one target:
// the clamped total, the contributions that counted, and display lines.
// Err is set instead of failing hard when the target names no known
// domain, so display layers can degrade.
type AggregationResult struct {
	Target    string                      `json:"target"`
	Total     int                         `json:"total"`
	Applied   []contribution.Contribution `json:"applied,omitempty"`
	Breakdown []BreakdownEntry            `json:"breakdown,omitempty"`
	Err       error                       `json:"-"`
}

// Source is the aggregation surface consumers resolve modifier totals
// through. *Aggregator is the production implementation.
type Source interface {
	// AggregateAll computes totals for every defined domain the snapshot touches
	AggregateAll(ctx context.Context, snap *entity.Snapshot) (map[string]int, error)

	// AggregateTarget returns one domain's total. Unknown domains
	// degrade to a zero total, not an error.
	AggregateTarget(ctx context.Context, snap *entity.Snapshot, target string) (int, error)

	// Detail returns the aggregation result with its full breakdown
	Detail(ctx context.Context, snap *entity.Snapshot, target string) (*AggregationResult, error)
}
