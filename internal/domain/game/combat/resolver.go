package combat

import (
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/shared"
)

// Resolve runs the damage pipeline with default options
func Resolve(in Input) (Result, error) {
	return ResolveWithOptions(in, Options{})
}

// ResolveWithOptions runs the phased damage pipeline: absorption, hit
// point reduction, threshold check, condition-track impact, terminal
// determination. The function is pure; identical inputs always yield
// identical results, and no phase performs I/O.
func ResolveWithOptions(in Input, opts Options) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	kind := in.EntityKind
	if kind == "" {
		kind = shared.EntityKindLiving
	}
	stepBefore := clampStep(in.ConditionStep)

	raw := in.DamageAmount
	if opts.Glancing {
		raw /= 2
	}

	result := Result{
		HPBefore:    in.HP,
		BonusBefore: in.BonusPool,
		RawDamage:   raw,
	}

	// Absorption: the pool soaks damage before hit points are touched
	remaining := raw - in.BonusPool
	if remaining < 0 {
		remaining = 0
	}
	result.BonusAfter = in.BonusPool - raw
	if result.BonusAfter < 0 {
		result.BonusAfter = 0
	}

	// Hit point reduction
	result.DamageToHP = remaining
	result.HPAfter = in.HP - remaining
	if result.HPAfter < 0 {
		result.HPAfter = 0
	}

	// The threshold compares against the raw damage, not the
	// post-absorption remainder. A hit that dealt nothing cannot
	// exceed it.
	result.ThresholdExceeded = raw > 0 && raw >= in.ThresholdTotal

	// Condition-track impact. Dropping to zero forces the bottom of
	// the track regardless of the threshold.
	stepAfter := stepBefore
	dropped := result.HPAfter <= 0
	switch {
	case dropped:
		stepAfter = entity.MaxConditionStep
	case result.ThresholdExceeded:
		shift := 1
		if opts.DoubleThreshold && in.ThresholdTotal > 0 && raw >= 2*in.ThresholdTotal {
			shift = 2
		}
		stepAfter = clampStep(stepBefore + shift)
	}
	result.ConditionAfter = stepAfter
	result.ConditionDelta = stepAfter - stepBefore

	// Terminal determination. A single call offers at most one rescue
	// opportunity; repeated calls are independent events.
	if dropped {
		result.Unconscious = true
		if result.ThresholdExceeded {
			result.RescueEligible = true
			switch kind {
			case shared.EntityKindConstruct:
				result.Destroyed = true
			default:
				result.Dead = true
			}
		}
	}

	return result, nil
}

// ResolveHealing applies hit point recovery and optional condition
// improvement. Healing never raises hit points above the maximum.
func ResolveHealing(in HealingInput) (HealingResult, error) {
	if err := in.Validate(); err != nil {
		return HealingResult{}, err
	}

	hpAfter := in.HP + in.Amount
	if in.MaxHP > 0 && hpAfter > in.MaxHP {
		hpAfter = in.MaxHP
	}

	return HealingResult{
		HPBefore:       in.HP,
		HPAfter:        hpAfter,
		Healed:         hpAfter - in.HP,
		ConditionAfter: clampStep(clampStep(in.ConditionStep) - in.ImproveSteps),
		Revived:        in.HP == 0 && hpAfter > 0,
	}, nil
}
