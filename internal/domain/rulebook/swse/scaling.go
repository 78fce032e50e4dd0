package swse

// LevelScaling selects how character level feeds the damage threshold
// baseline. Heroic characters count their full level; the half variant
// covers nonheroic stat blocks.
type LevelScaling string

const (
	ScalingFull LevelScaling = "full"
	ScalingHalf LevelScaling = "half"
)

// IsValid reports whether the scaling is one of the known variants
func (s LevelScaling) IsValid() bool {
	switch s {
	case ScalingFull, ScalingHalf:
		return true
	}
	return false
}

// ScaledLevel applies the scaling to a character level. An unset
// scaling counts the full level.
func ScaledLevel(level int, scaling LevelScaling) int {
	if scaling == ScalingHalf {
		return level / 2
	}
	return level
}
