package swse

import (
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/shared"
)

// sizeThresholdBonuses holds the damage threshold bonus per size class.
// Sizes below large grant nothing.
var sizeThresholdBonuses = map[shared.SizeCategory]int{
	shared.SizeLarge:      5,
	shared.SizeHuge:       10,
	shared.SizeGargantuan: 20,
	shared.SizeColossal:   50,
}

// SizeThresholdBonus returns the damage threshold bonus for a size class
func SizeThresholdBonus(size shared.SizeCategory) int {
	return sizeThresholdBonuses[size]
}
