package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/contribution"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/entity"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/rulebook/swse/calculators"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/services/resolution"
)

// printJSON writes v as indented JSON, the shape used by --format json.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func entityLabel(snap *entity.Snapshot) string {
	if snap.Name == "" {
		return snap.ID
	}
	return fmt.Sprintf("%s (%s)", snap.Name, snap.ID)
}

func contributionName(c contribution.Contribution) string {
	label := c.Label()
	if label == "" {
		return "unnamed"
	}
	if c.SourceID != "" && c.SourceID != label {
		return fmt.Sprintf("%s (%s)", label, c.SourceID)
	}
	return label
}

func breakdownName(e modifiers.BreakdownEntry) string {
	if e.Label == "" {
		return "unnamed"
	}
	if e.Source != "" && e.Source != e.Label {
		return fmt.Sprintf("%s (%s)", e.Label, e.Source)
	}
	return e.Label
}

func renderTotals(w io.Writer, snap *entity.Snapshot, totals map[string]int) {
	fmt.Fprintf(w, "Domain totals for %s\n\n", entityLabel(snap))
	if len(totals) == 0 {
		fmt.Fprintln(w, "  no contributions to any defined domain")
		return
	}

	keys := make([]string, 0, len(totals))
	width := 0
	for k := range totals {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "  %-*s  %+d\n", width, k, totals[k])
	}
}

func renderDetail(w io.Writer, snap *entity.Snapshot, result *modifiers.AggregationResult) {
	fmt.Fprintf(w, "Aggregation of %s for %s\n\n", result.Target, entityLabel(snap))

	if result.Err != nil {
		fmt.Fprintf(w, "  %v\n", result.Err)
		return
	}

	if len(result.Applied) == 0 {
		fmt.Fprintln(w, "  no contributions")
	}
	for _, c := range result.Applied {
		fmt.Fprintf(w, "  %+4d  %-12s  %s\n", c.Value, c.Type, contributionName(c))
	}
	fmt.Fprintf(w, "\nTotal: %+d\n", result.Total)
}

func renderThreshold(w io.Writer, snap *entity.Snapshot, result *calculators.ThresholdResult) {
	fmt.Fprintf(w, "Damage threshold for %s\n\n", entityLabel(snap))
	fmt.Fprintf(w, "  Baseline:  %d\n", result.Base)
	fmt.Fprintf(w, "  Modifiers: %+d\n", result.ModifierTotal)
	for _, e := range result.Breakdown {
		fmt.Fprintf(w, "    %+4d  %s\n", e.Value, breakdownName(e))
	}
	fmt.Fprintf(w, "  Total:     %d\n", result.Total)

	if result.Err != nil {
		fmt.Fprintf(w, "\n  warning: %v\n", result.Err)
	}
}

func renderDamage(w io.Writer, snap *entity.Snapshot, input *resolution.DamageInput, out *resolution.DamageOutcome) {
	fmt.Fprintf(w, "Damage resolution for %s\n\n", entityLabel(snap))

	kind := string(input.Kind)
	if kind == "" {
		kind = "untyped"
	}
	fmt.Fprintf(w, "  Damage:     %d %s", input.Amount, kind)
	if input.Glancing {
		fmt.Fprintf(w, " (glancing, resolved as %d)", out.Damage.RawDamage)
	}
	fmt.Fprintln(w)

	if out.Threshold != nil {
		fmt.Fprintf(w, "  Threshold:  %d\n", out.Threshold.Total)
	} else {
		fmt.Fprintln(w, "  Threshold:  unavailable")
	}

	if out.Damage.BonusBefore > 0 {
		fmt.Fprintf(w, "  Pool:       %d -> %d (absorbed %d)\n",
			out.Damage.BonusBefore, out.Damage.BonusAfter, out.Damage.BonusBefore-out.Damage.BonusAfter)
	}
	fmt.Fprintf(w, "  HP:         %d -> %d\n", out.Damage.HPBefore, out.Damage.HPAfter)

	conditionBefore := out.Damage.ConditionAfter - out.Damage.ConditionDelta
	if out.Damage.ThresholdExceeded {
		fmt.Fprintf(w, "  Condition:  %d -> %d (threshold exceeded)\n", conditionBefore, out.Damage.ConditionAfter)
	} else {
		fmt.Fprintf(w, "  Condition:  %d -> %d\n", conditionBefore, out.Damage.ConditionAfter)
	}

	var status []string
	if out.Damage.Unconscious {
		status = append(status, "unconscious")
	}
	if out.Damage.Dead {
		status = append(status, "dead")
	}
	if out.Damage.Destroyed {
		status = append(status, "destroyed")
	}
	if out.Damage.RescueEligible {
		status = append(status, "rescue eligible")
	}
	if len(status) > 0 {
		fmt.Fprintf(w, "  Status:     %s\n", strings.Join(status, ", "))
	}

	renderWarnings(w, out.Warnings)
}

func renderHealing(w io.Writer, snap *entity.Snapshot, input *resolution.HealingInput, out *resolution.HealingOutcome) {
	fmt.Fprintf(w, "Healing for %s\n\n", entityLabel(snap))
	fmt.Fprintf(w, "  Amount:     %d\n", input.Amount)

	if out.EffectiveMaxHP > 0 {
		fmt.Fprintf(w, "  HP:         %d -> %d (max %d)\n", out.Healing.HPBefore, out.Healing.HPAfter, out.EffectiveMaxHP)
	} else {
		fmt.Fprintf(w, "  HP:         %d -> %d (uncapped)\n", out.Healing.HPBefore, out.Healing.HPAfter)
	}
	fmt.Fprintf(w, "  Condition:  %d -> %d\n", snap.ConditionStep, out.Healing.ConditionAfter)

	if out.Healing.Revived {
		fmt.Fprintln(w, "  Status:     revived")
	}

	renderWarnings(w, out.Warnings)
}

func renderWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Warnings:")
	for _, warning := range warnings {
		fmt.Fprintf(w, "    - %s\n", warning)
	}
}

func renderDomains(w io.Writer, domains []modifiers.Domain) {
	fmt.Fprintf(w, "Domain catalog (%d domains)\n\n", len(domains))

	width := 0
	for _, d := range domains {
		if len(d.Key) > width {
			width = len(d.Key)
		}
	}
	for _, d := range domains {
		fmt.Fprintf(w, "  %-*s  %s%s\n", width, d.Key, d.EffectiveRule(), capLabel(d.Cap))
	}
}

func capLabel(c *modifiers.Cap) string {
	if c == nil {
		return ""
	}
	var bounds []string
	if c.Min != nil {
		bounds = append(bounds, fmt.Sprintf("min %d", *c.Min))
	}
	if c.Max != nil {
		bounds = append(bounds, fmt.Sprintf("max %d", *c.Max))
	}
	if len(bounds) == 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", strings.Join(bounds, ", "))
}
