package resolution

//go:generate mockgen -destination=mock/mock_service.go -package=mockresolution -source=service.go

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/game/combat"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/rulebook/swse"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/rulebook/swse/calculators"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/shared"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
)

// Domains the damage pipeline reads beyond the per-request targets.
const (
	absorbDomain = "pool.absorb"
	maxHPDomain  = "hp.max"
)

// Service is the consumer-facing surface for a combat turn: aggregate
// modifiers, compute thresholds, and resolve damage or healing against
// an entity snapshot.
type Service interface {
	// ResolveDamage runs the full damage pipeline for one hit: absorption
	// pool and threshold are aggregated from the snapshot, then the damage
	// is applied. Aggregation failures degrade to baseline values and mark
	// the outcome partial instead of aborting the turn.
	ResolveDamage(ctx context.Context, snap *entity.Snapshot, input *DamageInput) (*DamageOutcome, error)

	// ResolveHealing restores hit points, capped by the aggregated
	// effective maximum, and optionally improves the condition track.
	ResolveHealing(ctx context.Context, snap *entity.Snapshot, input *HealingInput) (*HealingOutcome, error)

	// Threshold computes the snapshot's damage threshold with breakdown.
	Threshold(ctx context.Context, snap *entity.Snapshot) (*calculators.ThresholdResult, error)

	// AggregateAll totals every domain the snapshot contributes to.
	AggregateAll(ctx context.Context, snap *entity.Snapshot) (map[string]int, error)

	// AggregateTarget totals a single domain.
	AggregateTarget(ctx context.Context, snap *entity.Snapshot, target string) (int, error)

	// Detail reports a single domain with the per-source breakdown.
	Detail(ctx context.Context, snap *entity.Snapshot, target string) (*modifiers.AggregationResult, error)
}

// DamageInput describes one incoming hit.
type DamageInput struct {
	Amount          int
	Kind            shared.DamageKind
	Glancing        bool
	DoubleThreshold bool
}

// DamageOutcome bundles the resolved damage with the aggregates that
// fed it. Partial marks an outcome computed with degraded aggregates.
type DamageOutcome struct {
	Damage     combat.Result                `json:"damage"`
	Threshold  *calculators.ThresholdResult `json:"threshold"`
	AbsorbPool int                          `json:"absorb_pool"`
	Partial    bool                         `json:"partial"`
	Warnings   []string                     `json:"warnings,omitempty"`
}

// HealingInput describes one application of healing.
type HealingInput struct {
	Amount       int
	ImproveSteps int
}

// HealingOutcome bundles the resolved healing with the effective
// maximum used to cap it.
type HealingOutcome struct {
	Healing        combat.HealingResult `json:"healing"`
	EffectiveMaxHP int                  `json:"effective_max_hp"`
	Partial        bool                 `json:"partial"`
	Warnings       []string             `json:"warnings,omitempty"`
}

type service struct {
	modifiers  modifiers.Source
	thresholds *calculators.ThresholdCalculator
	scaling    swse.LevelScaling
	logger     *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Modifiers  modifiers.Source
	Thresholds *calculators.ThresholdCalculator
	Scaling    swse.LevelScaling
	Logger     *slog.Logger
}

// NewService creates a new resolution service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Modifiers == nil {
		panic("modifier source is required")
	}
	if cfg.Scaling != "" && !cfg.Scaling.IsValid() {
		panic(fmt.Sprintf("unknown level scaling %q", cfg.Scaling))
	}

	svc := &service{
		modifiers: cfg.Modifiers,
		scaling:   cfg.Scaling,
	}

	if cfg.Thresholds != nil {
		svc.thresholds = cfg.Thresholds
	} else {
		calc, err := calculators.NewThresholdCalculator(&calculators.ThresholdCalculatorConfig{
			Modifiers: cfg.Modifiers,
		})
		if err != nil {
			panic(err)
		}
		svc.thresholds = calc
	}

	if cfg.Logger != nil {
		svc.logger = cfg.Logger
	} else {
		svc.logger = slog.Default()
	}

	return svc
}

func (s *service) ResolveDamage(ctx context.Context, snap *entity.Snapshot, input *DamageInput) (*DamageOutcome, error) {
	if input == nil {
		return nil, errors.InvalidArgument("damage input is required")
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	out := &DamageOutcome{}

	threshold := s.thresholdTotal(ctx, snap, out)
	out.AbsorbPool = s.domainTotal(ctx, snap, absorbDomain, out)

	result, err := combat.ResolveWithOptions(combat.Input{
		HP:             snap.HP,
		MaxHP:          snap.MaxHP,
		BonusPool:      out.AbsorbPool,
		ConditionStep:  snap.ConditionStep,
		ThresholdTotal: threshold,
		DamageAmount:   input.Amount,
		DamageKind:     input.Kind,
		EntityKind:     snap.Kind,
	}, combat.Options{
		Glancing:        input.Glancing,
		DoubleThreshold: input.DoubleThreshold,
	})
	if err != nil {
		return nil, err
	}

	out.Damage = result
	return out, nil
}

func (s *service) ResolveHealing(ctx context.Context, snap *entity.Snapshot, input *HealingInput) (*HealingOutcome, error) {
	if input == nil {
		return nil, errors.InvalidArgument("healing input is required")
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	out := &HealingOutcome{}

	// An unknown maximum stays unknown; bonuses only raise a known one.
	if snap.MaxHP > 0 {
		bonus := s.domainTotal(ctx, snap, maxHPDomain, out)
		out.EffectiveMaxHP = snap.MaxHP + bonus
	}

	result, err := combat.ResolveHealing(combat.HealingInput{
		HP:            snap.HP,
		MaxHP:         out.EffectiveMaxHP,
		ConditionStep: snap.ConditionStep,
		Amount:        input.Amount,
		ImproveSteps:  input.ImproveSteps,
	})
	if err != nil {
		return nil, err
	}

	out.Healing = result
	return out, nil
}

func (s *service) Threshold(ctx context.Context, snap *entity.Snapshot) (*calculators.ThresholdResult, error) {
	return s.thresholds.Threshold(ctx, snap, calculators.ThresholdContext{Scaling: s.scaling})
}

func (s *service) AggregateAll(ctx context.Context, snap *entity.Snapshot) (map[string]int, error) {
	return s.modifiers.AggregateAll(ctx, snap)
}

func (s *service) AggregateTarget(ctx context.Context, snap *entity.Snapshot, target string) (int, error) {
	return s.modifiers.AggregateTarget(ctx, snap, target)
}

func (s *service) Detail(ctx context.Context, snap *entity.Snapshot, target string) (*modifiers.AggregationResult, error) {
	return s.modifiers.Detail(ctx, snap, target)
}

// thresholdTotal computes the damage threshold for the hit, falling back
// to the defensive baseline when the modifier aggregation fails.
func (s *service) thresholdTotal(ctx context.Context, snap *entity.Snapshot, out *DamageOutcome) int {
	result, err := s.thresholds.Threshold(ctx, snap, calculators.ThresholdContext{Scaling: s.scaling})
	if err != nil {
		s.logger.Warn("threshold aggregation failed, using baseline",
			"entity_id", snap.ID, "error", err)
		out.degrade(fmt.Sprintf("threshold modifiers unavailable: %v", err))

		base, baseErr := s.thresholds.BaseThreshold(snap, calculators.ThresholdContext{Scaling: s.scaling})
		if baseErr != nil {
			out.degrade(fmt.Sprintf("threshold baseline unavailable: %v", baseErr))
			return 0
		}
		out.Threshold = &calculators.ThresholdResult{Base: base, Total: base, Err: err}
		return base
	}

	out.Threshold = result
	if result.Err != nil {
		out.degrade(fmt.Sprintf("threshold modifiers unavailable: %v", result.Err))
	}
	return result.Total
}

// domainTotal aggregates one domain for the pipeline, degrading to zero
// when the lookup fails rather than aborting mid-turn.
func (s *service) domainTotal(ctx context.Context, snap *entity.Snapshot, target string, out partialOutcome) int {
	detail, err := s.modifiers.Detail(ctx, snap, target)
	if err == nil && detail.Err != nil {
		err = detail.Err
	}
	if err != nil {
		s.logger.Warn("domain aggregation failed, no modifier available",
			"entity_id", snap.ID, "target", target, "error", err)
		out.degrade(fmt.Sprintf("%s modifiers unavailable: %v", target, err))
		return 0
	}
	return detail.Total
}
