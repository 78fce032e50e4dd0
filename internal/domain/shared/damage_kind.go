package shared

// DamageKind tags the energy/physical category of a hit. The resolver
// records it on the outcome; interpretation (resistances, special rules)
// belongs to the caller.
type DamageKind string

const (
	DamageKindEnergy  DamageKind = "energy"
	DamageKindKinetic DamageKind = "kinetic"
	DamageKindIon     DamageKind = "ion"
	DamageKindSonic   DamageKind = "sonic"
	DamageKindFire    DamageKind = "fire"
	DamageKindStun    DamageKind = "stun"
	DamageKindUntyped DamageKind = ""
)
