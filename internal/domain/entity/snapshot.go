package entity

import (
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/shared"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
)

// MaxConditionStep is the bottom of the condition track. Step 0 is
// unharmed, step 5 is helpless.
const MaxConditionStep = 5

// Snapshot is an immutable view of an entity at resolution time. The
// engine never writes to a snapshot; hosts build a fresh one whenever
// the underlying entity changes.
type Snapshot struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Kind shared.EntityKind `json:"kind"`

	Size            shared.SizeCategory `json:"size"`
	HeroicLevels    int                 `json:"heroic_levels"`
	NonheroicLevels int                 `json:"nonheroic_levels,omitempty"`

	HP            int `json:"hp"`
	MaxHP         int `json:"max_hp"`
	ConditionStep int `json:"condition_step"`

	// DefenseBase is the host-computed defense total the damage
	// threshold builds on, before any threshold contributions.
	DefenseBase int `json:"defense_base"`

	Traits    []Grant `json:"traits,omitempty"`
	Equipment []Grant `json:"equipment,omitempty"`
	Condition []Grant `json:"conditions,omitempty"`
	Temporary []Grant `json:"temporary,omitempty"`
	Overrides []Grant `json:"overrides,omitempty"`
}

// Grant is a single numeric effect carried by a snapshot, before it is
// turned into a contribution. Grants are grouped by the snapshot field
// they live in, which determines their source kind.
type Grant struct {
	SourceID string                 `json:"source_id"`
	Label    string                 `json:"label,omitempty"`
	Target   string                 `json:"target"`
	Type     contribution.BonusType `json:"type,omitempty"`
	Value    int                    `json:"value"`
	Disabled bool                   `json:"disabled,omitempty"`
	Priority int                    `json:"priority,omitempty"`
	When     map[string]string      `json:"when,omitempty"`
}

// Contribution converts the grant into a contribution of the given
// source kind. An empty bonus type becomes untyped.
func (g Grant) Contribution(kind contribution.SourceKind) contribution.Contribution {
	c := contribution.Contribution{
		SourceKind:  kind,
		SourceID:    g.SourceID,
		SourceLabel: g.Label,
		Target:      g.Target,
		Type:        g.Type,
		Value:       g.Value,
		Enabled:     !g.Disabled,
		Priority:    g.Priority,
	}
	if c.Type == "" {
		c.Type = contribution.TypeUntyped
	}
	if len(g.When) > 0 {
		c.Context = make(map[string]string, len(g.When))
		for k, v := range g.When {
			c.Context[k] = v
		}
	}
	return c
}

// GrantGroup pairs a grant list with the source kind it carries
type GrantGroup struct {
	Kind   contribution.SourceKind
	Grants []Grant
}

// GrantGroups returns every grant list on the snapshot with its source kind
func (s *Snapshot) GrantGroups() []GrantGroup {
	return []GrantGroup{
		{Kind: contribution.SourceTrait, Grants: s.Traits},
		{Kind: contribution.SourceEquipment, Grants: s.Equipment},
		{Kind: contribution.SourceCondition, Grants: s.Condition},
		{Kind: contribution.SourceTemporary, Grants: s.Temporary},
		{Kind: contribution.SourceOverride, Grants: s.Overrides},
	}
}

// CharacterLevel returns the combined heroic and nonheroic level
func (s *Snapshot) CharacterLevel() int {
	return s.HeroicLevels + s.NonheroicLevels
}

// Normalize fills zero-value enum fields with their defaults. Snapshots
// loaded from files routinely omit them.
func (s *Snapshot) Normalize() {
	if s.Kind == "" {
		s.Kind = shared.EntityKindLiving
	}
	if s.Size == "" {
		s.Size = shared.SizeMedium
	}
}

// Validate checks the snapshot satisfies the resolution call contract
func (s *Snapshot) Validate() error {
	if s == nil {
		return errors.InvalidArgument("snapshot cannot be nil")
	}
	if s.ID == "" {
		return errors.Validation("snapshot must have an id")
	}
	if s.Kind != "" && !s.Kind.IsValid() {
		return errors.Validationf("snapshot %s has unknown entity kind %q", s.ID, s.Kind)
	}
	if s.Size != "" && !s.Size.IsValid() {
		return errors.Validationf("snapshot %s has unknown size category %q", s.ID, s.Size)
	}
	if s.HeroicLevels < 0 || s.NonheroicLevels < 0 {
		return errors.Validationf("snapshot %s has negative levels", s.ID)
	}
	if s.MaxHP < 0 {
		return errors.Validationf("snapshot %s has negative max hp", s.ID)
	}
	if s.ConditionStep < 0 || s.ConditionStep > MaxConditionStep {
		return errors.Validationf("snapshot %s condition step %d outside track", s.ID, s.ConditionStep)
	}

	for _, group := range s.GrantGroups() {
		for i, g := range group.Grants {
			if g.Target == "" {
				return errors.Validationf("snapshot %s: %s grant %d has no target", s.ID, group.Kind, i)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	copied := *s
	copied.Traits = cloneGrants(s.Traits)
	copied.Equipment = cloneGrants(s.Equipment)
	copied.Condition = cloneGrants(s.Condition)
	copied.Temporary = cloneGrants(s.Temporary)
	copied.Overrides = cloneGrants(s.Overrides)
	return &copied
}

func cloneGrants(grants []Grant) []Grant {
	if grants == nil {
		return nil
	}

	copied := make([]Grant, len(grants))
	copy(copied, grants)
	for i, g := range grants {
		if g.When == nil {
			continue
		}
		when := make(map[string]string, len(g.When))
		for k, v := range g.When {
			when[k] = v
		}
		copied[i].When = when
	}
	return copied
}
