package swse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledLevel(t *testing.T) {
	assert.Equal(t, 7, ScaledLevel(7, ScalingFull))
	assert.Equal(t, 3, ScaledLevel(7, ScalingHalf))
	assert.Equal(t, 0, ScaledLevel(1, ScalingHalf))
	assert.Equal(t, 7, ScaledLevel(7, ""), "unset scaling counts the full level")
}

func TestLevelScalingIsValid(t *testing.T) {
	assert.True(t, ScalingFull.IsValid())
	assert.True(t, ScalingHalf.IsValid())
	assert.False(t, LevelScaling("double").IsValid())
	assert.False(t, LevelScaling("").IsValid())
}
