package modifiers

import (
	"sort"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
)

// Resolve reduces contributions that already share one target to the
// subset that counts toward the total, under the domain's stacking rule.
// Disabled contributions never survive. The result is canonically
// ordered, so permuting the input never changes the outcome.
func Resolve(domain Domain, contribs []contribution.Contribution) []contribution.Contribution {
	enabled := make([]contribution.Contribution, 0, len(contribs))
	for _, c := range contribs {
		if c.Enabled {
			enabled = append(enabled, c)
		}
	}
	if len(enabled) == 0 {
		return nil
	}

	var survivors []contribution.Contribution
	switch domain.EffectiveRule() {
	case RuleExclusive:
		survivors = []contribution.Contribution{pickBest(enabled)}

	case RuleHighestOnly:
		for _, group := range groupByType(enabled) {
			survivors = append(survivors, pickBest(group))
		}

	case RuleStackUnlessSameSource:
		for _, group := range groupByType(enabled) {
			survivors = append(survivors, bestPerSource(group)...)
		}

	default:
		survivors = enabled
	}

	sortCanonical(survivors)
	return survivors
}

// Sum adds up the values of resolved contributions
func Sum(contribs []contribution.Contribution) int {
	total := 0
	for _, c := range contribs {
		total += c.Value
	}
	return total
}

// groupByType buckets contributions by stacking category. Bucket order
// does not matter to callers; every bucket is reduced independently.
func groupByType(contribs []contribution.Contribution) map[contribution.BonusType][]contribution.Contribution {
	groups := make(map[contribution.BonusType][]contribution.Contribution)
	for _, c := range contribs {
		groups[c.Type] = append(groups[c.Type], c)
	}
	return groups
}

// bestPerSource keeps the single best contribution per source. An empty
// source ID marks an anonymous one-off, which always stacks.
func bestPerSource(contribs []contribution.Contribution) []contribution.Contribution {
	var kept []contribution.Contribution
	bySource := make(map[string][]contribution.Contribution)
	for _, c := range contribs {
		if c.SourceID == "" {
			kept = append(kept, c)
			continue
		}
		bySource[c.SourceID] = append(bySource[c.SourceID], c)
	}
	for _, group := range bySource {
		kept = append(kept, pickBest(group))
	}
	return kept
}

// pickBest returns the winning contribution of a non-empty slot group
func pickBest(contribs []contribution.Contribution) contribution.Contribution {
	best := contribs[0]
	for _, c := range contribs[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}

// better reports whether a beats b for a single slot. Larger magnitude
// wins; ties fall to the larger signed value, then the lexically
// smaller source ID, then the smaller instance ID, so the winner never
// depends on collection order.
func better(a, b contribution.Contribution) bool {
	if a.Magnitude() != b.Magnitude() {
		return a.Magnitude() > b.Magnitude()
	}
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	if a.SourceID != b.SourceID {
		return a.SourceID < b.SourceID
	}
	return a.ID < b.ID
}

// sortCanonical orders contributions for display: priority first, then
// magnitude, then source and instance IDs as the final tie-breaks.
func sortCanonical(contribs []contribution.Contribution) {
	sort.Slice(contribs, func(i, j int) bool {
		a, b := contribs[i], contribs[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return better(a, b)
	})
}
