package contribution

// Builder provides a fluent interface for assembling contributions
type Builder struct {
	c Contribution
}

// NewBuilder starts a contribution against the given target domain.
// Contributions default to untyped and enabled.
func NewBuilder(target string) *Builder {
	return &Builder{
		c: Contribution{
			Target:  target,
			Type:    TypeUntyped,
			Enabled: true,
		},
	}
}

// FromTrait marks the contribution as granted by a species trait, feat, or talent
func (b *Builder) FromTrait(id, label string) *Builder {
	b.c.SourceKind = SourceTrait
	b.c.SourceID = id
	b.c.SourceLabel = label
	return b
}

// FromEquipment marks the contribution as granted by an equipped item
func (b *Builder) FromEquipment(id, label string) *Builder {
	b.c.SourceKind = SourceEquipment
	b.c.SourceID = id
	b.c.SourceLabel = label
	return b
}

// FromCondition marks the contribution as granted by an active condition
func (b *Builder) FromCondition(id, label string) *Builder {
	b.c.SourceKind = SourceCondition
	b.c.SourceID = id
	b.c.SourceLabel = label
	return b
}

// FromOverride marks the contribution as a one-off custom adjustment
func (b *Builder) FromOverride(id, label string) *Builder {
	b.c.SourceKind = SourceOverride
	b.c.SourceID = id
	b.c.SourceLabel = label
	return b
}

// FromTemporary marks the contribution as granted by a short-lived effect
func (b *Builder) FromTemporary(id, label string) *Builder {
	b.c.SourceKind = SourceTemporary
	b.c.SourceID = id
	b.c.SourceLabel = label
	return b
}

// WithID sets an explicit instance ID. Collectors stamp a generated ID
// onto contributions that leave this empty.
func (b *Builder) WithID(id string) *Builder {
	b.c.ID = id
	return b
}

// WithType sets the stacking category
func (b *Builder) WithType(t BonusType) *Builder {
	b.c.Type = t
	return b
}

// WithValue sets the signed magnitude
func (b *Builder) WithValue(v int) *Builder {
	b.c.Value = v
	return b
}

// WithPriority sets the display ordering hint
func (b *Builder) WithPriority(p int) *Builder {
	b.c.Priority = p
	return b
}

// Disabled marks the contribution as suppressed. Disabled contributions
// are still collected so breakdowns can show them.
func (b *Builder) Disabled() *Builder {
	b.c.Enabled = false
	return b
}

// WhenContext adds an activation fact the caller must supply for the
// contribution to apply
func (b *Builder) WhenContext(key, value string) *Builder {
	if b.c.Context == nil {
		b.c.Context = make(map[string]string)
	}
	b.c.Context[key] = value
	return b
}

// Build returns the assembled contribution
func (b *Builder) Build() Contribution {
	return b.c
}
