package shared

// EntityKind determines which terminal outcome a dropped entity reaches
type EntityKind string

const (
	// EntityKindLiving covers characters and creatures; they die
	EntityKindLiving EntityKind = "living"
	// EntityKindConstruct covers droids, vehicles, and objects; they are destroyed
	EntityKindConstruct EntityKind = "construct"
)

// IsValid reports whether the kind is one of the known values
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindLiving, EntityKindConstruct:
		return true
	}
	return false
}
