package swse

import (
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
)

// stepPenalties maps condition track steps to the penalty applied to
// attacks, defenses, and checks. The bottom step carries no number; a
// helpless entity is out of the fight entirely.
var stepPenalties = [entity.MaxConditionStep + 1]int{0, -1, -2, -5, -10, 0}

// conditionPenaltyTargets are the domains the track penalty lands on
var conditionPenaltyTargets = []string{
	"attack",
	"defense.reflex",
	"defense.fortitude",
	"defense.will",
	"initiative",
}

// ClampStep forces a step onto the track
func ClampStep(step int) int {
	if step < 0 {
		return 0
	}
	if step > entity.MaxConditionStep {
		return entity.MaxConditionStep
	}
	return step
}

// StepPenalty returns the numeric penalty at a track step. Steps off
// the track are clamped first.
func StepPenalty(step int) int {
	return stepPenalties[ClampStep(step)]
}

// IsHelpless reports whether the step is the bottom of the track
func IsHelpless(step int) bool {
	return ClampStep(step) == entity.MaxConditionStep
}

// WorsenStep moves an entity n steps down the track, clamped at helpless
func WorsenStep(step, n int) int {
	if n < 0 {
		n = 0
	}
	return ClampStep(ClampStep(step) + n)
}

// ImproveStep moves an entity n steps up the track, clamped at unharmed
func ImproveStep(step, n int) int {
	if n < 0 {
		n = 0
	}
	return ClampStep(ClampStep(step) - n)
}
