package contribution

import (
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
)

// SourceKind represents where a contribution comes from
type SourceKind string

const (
	SourceTrait     SourceKind = "trait"     // species traits, feats, talents
	SourceEquipment SourceKind = "equipment" // armor, weapons, attached items
	SourceCondition SourceKind = "condition" // condition-track and similar states
	SourceOverride  SourceKind = "override"  // one-off custom adjustments
	SourceTemporary SourceKind = "temporary" // short-lived effects
)

// IsValid reports whether the source kind is one of the known values
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceTrait, SourceEquipment, SourceCondition, SourceOverride, SourceTemporary:
		return true
	}
	return false
}

// BonusType is the stacking category of a contribution. The combination
// rule for each type lives in the domain catalog, not here.
type BonusType string

const (
	TypeUntyped      BonusType = "untyped"
	TypeCircumstance BonusType = "circumstance"
	TypeCompetence   BonusType = "competence"
	TypeMorale       BonusType = "morale"
	TypeEnhancement  BonusType = "enhancement"
	TypeEquipment    BonusType = "equipment"
	TypeInsight      BonusType = "insight"
	TypeDodge        BonusType = "dodge"
	TypeSize         BonusType = "size"
	TypePenalty      BonusType = "penalty"
	TypeRestriction  BonusType = "restriction"
)

// Contribution is one numeric effect instance from a single source
// targeting one named attribute domain.
type Contribution struct {
	ID          string            `json:"id"`
	SourceKind  SourceKind        `json:"source_kind"`
	SourceID    string            `json:"source_id"`
	SourceLabel string            `json:"source_label"`
	Target      string            `json:"target"`
	Type        BonusType         `json:"type"`
	Value       int               `json:"value"`
	Enabled     bool              `json:"enabled"`
	Priority    int               `json:"priority"` // display ordering only
	Context     map[string]string `json:"context,omitempty"`
}

// Validate checks the contribution satisfies the provider call contract
func (c *Contribution) Validate() error {
	if c.Target == "" {
		return errors.InvalidArgument("contribution must name a target domain")
	}
	if !c.SourceKind.IsValid() {
		return errors.InvalidArgumentf("contribution %q has unknown source kind %q", c.Target, c.SourceKind)
	}
	if c.Type == "" {
		return errors.InvalidArgumentf("contribution %q must carry a bonus type", c.Target)
	}
	return nil
}

// Magnitude returns the absolute value of the contribution
func (c Contribution) Magnitude() int {
	if c.Value < 0 {
		return -c.Value
	}
	return c.Value
}

// Label returns the display name for breakdowns, falling back to the source ID
func (c Contribution) Label() string {
	if c.SourceLabel != "" {
		return c.SourceLabel
	}
	return c.SourceID
}

// MatchesContext checks whether the contribution applies given a set of
// caller-known facts. An empty activation context always applies; otherwise
// every entry must be present and equal. The stacking resolver never calls
// this; conditional activation is the caller's decision.
func (c Contribution) MatchesContext(facts map[string]string) bool {
	if len(c.Context) == 0 {
		return true
	}

	for key, want := range c.Context {
		if got, ok := facts[key]; !ok || got != want {
			return false
		}
	}
	return true
}
