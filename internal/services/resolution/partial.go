package resolution

// partialOutcome is the shared degradation surface of the outcome
// types. Degrading marks the outcome partial and records why.
type partialOutcome interface {
	degrade(warning string)
}

func (o *DamageOutcome) degrade(warning string) {
	o.Partial = true
	o.Warnings = append(o.Warnings, warning)
}

func (o *HealingOutcome) degrade(warning string) {
	o.Partial = true
	o.Warnings = append(o.Warnings, warning)
}
