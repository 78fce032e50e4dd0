package swse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepPenalty(t *testing.T) {
	tests := []struct {
		step int
		want int
	}{
		{0, 0},
		{1, -1},
		{2, -2},
		{3, -5},
		{4, -10},
		{5, 0},
		{-3, 0}, // clamped to unharmed
		{9, 0},  // clamped to helpless
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StepPenalty(tt.step), "step %d", tt.step)
	}
}

func TestClampStep(t *testing.T) {
	assert.Equal(t, 0, ClampStep(-1))
	assert.Equal(t, 3, ClampStep(3))
	assert.Equal(t, 5, ClampStep(11))
}

func TestIsHelpless(t *testing.T) {
	assert.False(t, IsHelpless(4))
	assert.True(t, IsHelpless(5))
	assert.True(t, IsHelpless(12))
}

func TestWorsenStep(t *testing.T) {
	assert.Equal(t, 1, WorsenStep(0, 1))
	assert.Equal(t, 4, WorsenStep(2, 2))
	assert.Equal(t, 5, WorsenStep(4, 3), "clamped at helpless")
	assert.Equal(t, 2, WorsenStep(2, -1), "negative shifts are ignored")
}

func TestImproveStep(t *testing.T) {
	assert.Equal(t, 3, ImproveStep(4, 1))
	assert.Equal(t, 0, ImproveStep(1, 5), "clamped at unharmed")
	assert.Equal(t, 4, ImproveStep(4, -2), "negative shifts are ignored")
}
