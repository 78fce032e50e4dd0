// Package combat implements damage and healing resolution as pure
// state-transition functions over snapshots of entity numeric state.
// Nothing here touches storage; callers commit results to the
// authoritative record themselves.
package combat

import (
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/shared"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
)

// Input is the numeric state a damage resolution consumes. Callers
// build it from an entity snapshot plus the aggregated absorption pool
// and threshold totals.
type Input struct {
	HP             int               `json:"hp"`
	MaxHP          int               `json:"max_hp"`
	BonusPool      int               `json:"bonus_pool"`
	ConditionStep  int               `json:"condition_step"`
	ThresholdTotal int               `json:"threshold_total"`
	DamageAmount   int               `json:"damage_amount"`
	DamageKind     shared.DamageKind `json:"damage_kind,omitempty"`
	EntityKind     shared.EntityKind `json:"entity_kind"`
}

// Validate checks the resolution call contract. Violations are
// programmer errors, not degradable data problems.
func (in Input) Validate() error {
	if in.DamageAmount < 0 {
		return errors.InvalidArgumentf("damage amount %d cannot be negative", in.DamageAmount)
	}
	if in.HP < 0 {
		return errors.InvalidArgumentf("hp %d cannot be negative", in.HP)
	}
	if in.MaxHP < 0 {
		return errors.InvalidArgumentf("max hp %d cannot be negative", in.MaxHP)
	}
	if in.BonusPool < 0 {
		return errors.InvalidArgumentf("bonus pool %d cannot be negative", in.BonusPool)
	}
	if in.EntityKind != "" && !in.EntityKind.IsValid() {
		return errors.InvalidArgumentf("unknown entity kind %q", in.EntityKind)
	}
	return nil
}

// Options adjusts resolution for special hit qualities. The glancing
// halving applies before every other phase, so the halved value is the
// raw damage all later comparisons use, the double-threshold check
// included.
type Options struct {
	// Glancing halves the incoming damage, rounding down
	Glancing bool

	// DoubleThreshold shifts the condition track two steps instead of
	// one when the raw damage reaches twice the threshold
	DoubleThreshold bool
}

// Result is the structured outcome of one damage resolution. The
// resolver mutates nothing; the caller decides what to commit.
type Result struct {
	HPBefore    int `json:"hp_before"`
	BonusBefore int `json:"bonus_before"`
	HPAfter     int `json:"hp_after"`
	BonusAfter  int `json:"bonus_after"`

	// RawDamage is the incoming damage after any glancing halving; the
	// threshold comparison uses this value, not the post-absorption
	// remainder.
	RawDamage  int `json:"raw_damage"`
	DamageToHP int `json:"damage_to_hp"`

	ThresholdExceeded bool `json:"threshold_exceeded"`
	ConditionDelta    int  `json:"condition_delta"`
	ConditionAfter    int  `json:"condition_after"`

	Unconscious    bool `json:"unconscious"`
	Dead           bool `json:"dead"`
	Destroyed      bool `json:"destroyed"`
	RescueEligible bool `json:"rescue_eligible"`
}

// HealingInput is the numeric state a healing resolution consumes
type HealingInput struct {
	HP            int `json:"hp"`
	MaxHP         int `json:"max_hp"`
	ConditionStep int `json:"condition_step"`
	Amount        int `json:"amount"`

	// ImproveSteps moves the condition track toward unharmed alongside
	// the hit point recovery
	ImproveSteps int `json:"improve_steps"`
}

// Validate checks the healing call contract
func (in HealingInput) Validate() error {
	if in.Amount < 0 {
		return errors.InvalidArgumentf("healing amount %d cannot be negative", in.Amount)
	}
	if in.ImproveSteps < 0 {
		return errors.InvalidArgumentf("improve steps %d cannot be negative", in.ImproveSteps)
	}
	if in.HP < 0 {
		return errors.InvalidArgumentf("hp %d cannot be negative", in.HP)
	}
	if in.MaxHP < 0 {
		return errors.InvalidArgumentf("max hp %d cannot be negative", in.MaxHP)
	}
	return nil
}

// HealingResult is the structured outcome of one healing resolution
type HealingResult struct {
	HPBefore       int  `json:"hp_before"`
	HPAfter        int  `json:"hp_after"`
	Healed         int  `json:"healed"`
	ConditionAfter int  `json:"condition_after"`
	Revived        bool `json:"revived"`
}

func clampStep(step int) int {
	if step < 0 {
		return 0
	}
	if step > entity.MaxConditionStep {
		return entity.MaxConditionStep
	}
	return step
}
