package swse

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
)

func TestNewCatalog(t *testing.T) {
	t.Run("rejects missing key", func(t *testing.T) {
		_, err := NewCatalog([]modifiers.Domain{{Rule: modifiers.RuleStack}})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rejects unknown rule", func(t *testing.T) {
		_, err := NewCatalog([]modifiers.Domain{{Key: "attack", Rule: modifiers.StackingRule("sometimes")}})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rejects duplicate keys", func(t *testing.T) {
		_, err := NewCatalog([]modifiers.Domain{
			{Key: "attack", Rule: modifiers.RuleExclusive},
			{Key: "attack", Rule: modifiers.RuleStack},
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rejects duplicate families", func(t *testing.T) {
		_, err := NewCatalog([]modifiers.Domain{
			{Key: "skill.*", Rule: modifiers.RuleHighestOnly},
			{Key: "skill.*", Rule: modifiers.RuleStack},
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestCatalogDomain(t *testing.T) {
	catalog, err := NewCatalog([]modifiers.Domain{
		{Key: "defense.reflex", Rule: modifiers.RuleHighestOnly},
		{Key: "skill.*", Rule: modifiers.RuleHighestOnly},
		{Key: "skill.use-the-force", Rule: modifiers.RuleStackUnlessSameSource},
	})
	require.NoError(t, err)

	t.Run("exact key wins", func(t *testing.T) {
		d, ok := catalog.Domain("skill.use-the-force")
		require.True(t, ok)
		assert.Equal(t, modifiers.RuleStackUnlessSameSource, d.Rule)
	})

	t.Run("family covers undefined members", func(t *testing.T) {
		d, ok := catalog.Domain("skill.stealth")
		require.True(t, ok)
		assert.Equal(t, "skill.stealth", d.Key)
		assert.Equal(t, modifiers.RuleHighestOnly, d.Rule)
	})

	t.Run("unknown key misses", func(t *testing.T) {
		_, ok := catalog.Domain("luck")
		assert.False(t, ok)

		_, ok = catalog.Domain("speed.fly")
		assert.False(t, ok)
	})
}

func TestCatalogKeys(t *testing.T) {
	catalog, err := NewCatalog([]modifiers.Domain{
		{Key: "skill.*", Rule: modifiers.RuleHighestOnly},
		{Key: "attack", Rule: modifiers.RuleExclusive},
		{Key: "defense.reflex", Rule: modifiers.RuleHighestOnly},
	})
	require.NoError(t, err)

	keys := catalog.Keys()
	assert.Equal(t, []string{"attack", "defense.reflex", "skill.*"}, keys)
	assert.True(t, sort.StringsAreSorted(keys))
}

func TestCatalogMerge(t *testing.T) {
	base := BuiltinCatalog()

	merged, err := base.Merge([]modifiers.Domain{
		{Key: "defense.reflex", Rule: modifiers.RuleStack},
		{Key: "carapace", Rule: modifiers.RuleStack},
	})
	require.NoError(t, err)

	d, ok := merged.Domain("defense.reflex")
	require.True(t, ok)
	assert.Equal(t, modifiers.RuleStack, d.Rule)

	_, ok = merged.Domain("carapace")
	assert.True(t, ok)

	// Untouched builtins survive the merge
	d, ok = merged.Domain("pool.absorb")
	require.True(t, ok)
	assert.Equal(t, modifiers.RuleExclusive, d.Rule)

	// The base catalog is not mutated
	d, _ = base.Domain("defense.reflex")
	assert.Equal(t, modifiers.RuleHighestOnly, d.Rule)
}

func TestBuiltinCatalog(t *testing.T) {
	catalog := BuiltinCatalog()

	tests := []struct {
		key  string
		rule modifiers.StackingRule
	}{
		{"attack", modifiers.RuleExclusive},
		{"defense.reflex", modifiers.RuleHighestOnly},
		{"defense.fortitude", modifiers.RuleHighestOnly},
		{"defense.will", modifiers.RuleHighestOnly},
		{"threshold", modifiers.RuleStack},
		{"pool.absorb", modifiers.RuleExclusive},
		{"hp.max", modifiers.RuleStack},
		{"skill.pilot", modifiers.RuleHighestOnly},
		{"speed.fly", modifiers.RuleHighestOnly},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d, ok := catalog.Domain(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.rule, d.Rule)
		})
	}

	t.Run("absorption pools never go negative", func(t *testing.T) {
		d, ok := catalog.Domain("pool.absorb")
		require.True(t, ok)
		require.NotNil(t, d.Cap)
		assert.Equal(t, 0, d.Cap.Clamp(-3))
	})
}
