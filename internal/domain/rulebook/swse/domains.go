// Package swse carries the Saga Edition rules data the engine consumes:
// the domain catalog, condition track, size tables, and the built-in
// contribution providers.
package swse

import (
	"sort"
	"strings"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/errors"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
)

// familySuffix marks a catalog entry that covers every key under a
// prefix, e.g. "skill.*" matches "skill.stealth".
const familySuffix = ".*"

// Catalog is the domain table used at resolution time. Lookups try the
// exact key first, then the longest matching family entry.
type Catalog struct {
	domains  map[string]modifiers.Domain
	families map[string]modifiers.Domain
}

var _ modifiers.Catalog = (*Catalog)(nil)

// NewCatalog builds a catalog from domain definitions
func NewCatalog(domains []modifiers.Domain) (*Catalog, error) {
	c := &Catalog{
		domains:  make(map[string]modifiers.Domain, len(domains)),
		families: make(map[string]modifiers.Domain),
	}

	for _, d := range domains {
		if d.Key == "" {
			return nil, errors.Validation("domain definition must have a key")
		}
		if d.Rule != "" && !d.Rule.IsValid() {
			return nil, errors.Validationf("domain %q has unknown stacking rule %q", d.Key, d.Rule)
		}

		if prefix, ok := strings.CutSuffix(d.Key, familySuffix); ok {
			if _, dup := c.families[prefix]; dup {
				return nil, errors.Validationf("duplicate domain family %q", d.Key)
			}
			c.families[prefix] = d
			continue
		}

		if _, dup := c.domains[d.Key]; dup {
			return nil, errors.Validationf("duplicate domain %q", d.Key)
		}
		c.domains[d.Key] = d
	}
	return c, nil
}

// Domain looks up a definition, synthesizing one from the family entry
// when only a family matches.
func (c *Catalog) Domain(key string) (modifiers.Domain, bool) {
	if d, ok := c.domains[key]; ok {
		return d, true
	}

	for prefix := key; ; {
		i := strings.LastIndex(prefix, ".")
		if i < 0 {
			return modifiers.Domain{}, false
		}
		prefix = prefix[:i]
		if family, ok := c.families[prefix]; ok {
			return modifiers.Domain{Key: key, Rule: family.Rule, Cap: family.Cap}, true
		}
	}
}

// Keys lists every defined key, families included, in sorted order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.domains)+len(c.families))
	for k := range c.domains {
		keys = append(keys, k)
	}
	for prefix := range c.families {
		keys = append(keys, prefix+familySuffix)
	}
	sort.Strings(keys)
	return keys
}

// Merge returns a new catalog with the overrides layered on top; an
// override replaces the entry sharing its key.
func (c *Catalog) Merge(overrides []modifiers.Domain) (*Catalog, error) {
	merged := make([]modifiers.Domain, 0, len(c.domains)+len(c.families)+len(overrides))
	overridden := make(map[string]bool, len(overrides))
	for _, d := range overrides {
		overridden[d.Key] = true
	}

	for _, d := range c.domains {
		if !overridden[d.Key] {
			merged = append(merged, d)
		}
	}
	for prefix, d := range c.families {
		if !overridden[prefix+familySuffix] {
			merged = append(merged, d)
		}
	}
	merged = append(merged, overrides...)
	return NewCatalog(merged)
}

func zero() *int {
	v := 0
	return &v
}

// BuiltinCatalog returns the stock Saga Edition domain table. Typed
// bonuses to defenses, attacks, and skills take the highest of a type;
// the overall attack slot and absorption pools are single-winner
// domains; hit point and threshold adjustments stack.
func BuiltinCatalog() *Catalog {
	c, err := NewCatalog([]modifiers.Domain{
		{Key: "attack", Rule: modifiers.RuleExclusive},
		{Key: "attack.melee", Rule: modifiers.RuleHighestOnly},
		{Key: "attack.ranged", Rule: modifiers.RuleHighestOnly},
		{Key: "defense.reflex", Rule: modifiers.RuleHighestOnly},
		{Key: "defense.fortitude", Rule: modifiers.RuleHighestOnly},
		{Key: "defense.will", Rule: modifiers.RuleHighestOnly},
		{Key: "threshold", Rule: modifiers.RuleStack},
		{Key: "pool.absorb", Rule: modifiers.RuleExclusive, Cap: &modifiers.Cap{Min: zero()}},
		{Key: "hp.max", Rule: modifiers.RuleStack},
		{Key: "initiative", Rule: modifiers.RuleHighestOnly},
		{Key: "damage", Rule: modifiers.RuleStackUnlessSameSource},
		{Key: "skill" + familySuffix, Rule: modifiers.RuleHighestOnly},
		{Key: "speed" + familySuffix, Rule: modifiers.RuleHighestOnly},
	})
	if err != nil {
		// The builtin table is static; a failure here is a programming error.
		panic(err)
	}
	return c
}
