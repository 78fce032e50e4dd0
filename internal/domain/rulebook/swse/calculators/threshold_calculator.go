package calculators

import (
	"context"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	swse "github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/rulebook/swse"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
)

// ThresholdDomain is the aggregation domain threshold modifiers target
const ThresholdDomain = "threshold"

// ThresholdResult is a computed damage threshold with its parts broken
// out for display. Err is set when the modifier lookup degraded and the
// total fell back to the baseline.
type ThresholdResult struct {
	Base          int                        `json:"base"`
	ModifierTotal int                        `json:"modifier_total"`
	Total         int                        `json:"total"`
	Breakdown     []modifiers.BreakdownEntry `json:"breakdown,omitempty"`
	Err           error                      `json:"-"`
}

// ThresholdContext selects the baseline formula variant for one call
type ThresholdContext struct {
	Scaling swse.LevelScaling
}

// ThresholdCalculatorConfig wires a ThresholdCalculator
type ThresholdCalculatorConfig struct {
	Modifiers modifiers.Source
}

// Validate ensures the config has the required dependencies
func (c *ThresholdCalculatorConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Modifiers == nil {
		return errors.InvalidArgument("modifier source cannot be nil")
	}
	return nil
}

// ThresholdCalculator computes damage thresholds following Saga Edition
// rules: a defense baseline plus level scaling and size bonus, with
// aggregated threshold modifiers layered on top.
type ThresholdCalculator struct {
	modifiers modifiers.Source
}

// NewThresholdCalculator creates a calculator from the config
func NewThresholdCalculator(cfg *ThresholdCalculatorConfig) (*ThresholdCalculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ThresholdCalculator{modifiers: cfg.Modifiers}, nil
}

// BaseThreshold computes the defensive baseline: the snapshot's defense
// base, plus the character level under the selected scaling, plus the
// size-class bonus.
func (c *ThresholdCalculator) BaseThreshold(snap *entity.Snapshot, tctx ThresholdContext) (int, error) {
	if err := snap.Validate(); err != nil {
		return 0, err
	}
	if tctx.Scaling != "" && !tctx.Scaling.IsValid() {
		return 0, errors.InvalidArgumentf("unknown level scaling %q", tctx.Scaling)
	}

	return snap.DefenseBase +
		swse.ScaledLevel(snap.CharacterLevel(), tctx.Scaling) +
		swse.SizeThresholdBonus(snap.Size), nil
}

// Threshold computes the full damage threshold with its breakdown. When
// the threshold domain cannot be aggregated the result degrades to the
// baseline and carries the soft error.
func (c *ThresholdCalculator) Threshold(ctx context.Context, snap *entity.Snapshot, tctx ThresholdContext) (*ThresholdResult, error) {
	base, err := c.BaseThreshold(snap, tctx)
	if err != nil {
		return nil, err
	}

	detail, err := c.modifiers.Detail(ctx, snap, ThresholdDomain)
	if err != nil {
		return nil, err
	}

	return &ThresholdResult{
		Base:          base,
		ModifierTotal: detail.Total,
		Total:         base + detail.Total,
		Breakdown:     detail.Breakdown,
		Err:           detail.Err,
	}, nil
}
