package swse

import (
	"context"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
)

// NewGrantProvider returns the provider that turns every grant carried
// by a snapshot into a contribution. Grants with an activation context
// are matched against the session facts here, at the provider boundary;
// non-matching grants come through disabled so breakdowns can still
// show them.
func NewGrantProvider(facts map[string]string) modifiers.NamedProvider {
	return modifiers.NamedProvider{
		Name: "grants",
		Provide: func(_ context.Context, snap *entity.Snapshot) ([]contribution.Contribution, error) {
			var out []contribution.Contribution
			for _, group := range snap.GrantGroups() {
				for _, g := range group.Grants {
					c := g.Contribution(group.Kind)
					if c.Enabled && !c.MatchesContext(facts) {
						c.Enabled = false
					}
					out = append(out, c)
				}
			}
			return out, nil
		},
	}
}

// NewConditionTrackProvider returns the provider that emits the track
// penalty for the snapshot's current condition step against each
// affected domain.
func NewConditionTrackProvider() modifiers.NamedProvider {
	return modifiers.NamedProvider{
		Name: "condition-track",
		Provide: func(_ context.Context, snap *entity.Snapshot) ([]contribution.Contribution, error) {
			penalty := StepPenalty(snap.ConditionStep)
			if penalty == 0 {
				return nil, nil
			}

			out := make([]contribution.Contribution, 0, len(conditionPenaltyTargets))
			for _, target := range conditionPenaltyTargets {
				out = append(out, contribution.NewBuilder(target).
					FromCondition("condition.track", "Condition Track").
					WithType(contribution.TypePenalty).
					WithValue(penalty).
					Build())
			}
			return out, nil
		},
	}
}

// DefaultProviders assembles the built-in provider set in the order the
// collector runs them
func DefaultProviders(facts map[string]string) []modifiers.NamedProvider {
	return []modifiers.NamedProvider{
		NewGrantProvider(facts),
		NewConditionTrackProvider(),
	}
}
