package shared

// SizeCategory is the creature/vehicle size class
type SizeCategory string

const (
	SizeFine       SizeCategory = "fine"
	SizeDiminutive SizeCategory = "diminutive"
	SizeTiny       SizeCategory = "tiny"
	SizeSmall      SizeCategory = "small"
	SizeMedium     SizeCategory = "medium"
	SizeLarge      SizeCategory = "large"
	SizeHuge       SizeCategory = "huge"
	SizeGargantuan SizeCategory = "gargantuan"
	SizeColossal   SizeCategory = "colossal"
)

// IsValid reports whether the size is one of the known categories
func (s SizeCategory) IsValid() bool {
	switch s {
	case SizeFine, SizeDiminutive, SizeTiny, SizeSmall, SizeMedium,
		SizeLarge, SizeHuge, SizeGargantuan, SizeColossal:
		return true
	}
	return false
}
