package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/services/resolution"
)

// NewHealCommand creates the heal command.
func NewHealCommand(rootOpts *RootOptions) *cobra.Command {
	var improveSteps int

	cmd := &cobra.Command{
		Use:   "heal <snapshot.json> <amount>",
		Short: "Apply healing to a snapshot",
		Long: `Restore hit points, capped by the aggregated effective maximum,
and optionally improve the condition track.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid healing amount %q", args[1])
			}

			input := &resolution.HealingInput{
				Amount:       amount,
				ImproveSteps: improveSteps,
			}
			return runHeal(rootOpts, cmd, args[0], input)
		},
	}

	cmd.Flags().IntVar(&improveSteps, "improve", 0, "condition track steps to improve")

	return cmd
}

func runHeal(opts *RootOptions, cmd *cobra.Command, path string, input *resolution.HealingInput) error {
	snap, err := LoadSnapshot(path)
	if err != nil {
		return err
	}

	svc, err := buildService(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out, err := svc.ResolveHealing(cmd.Context(), snap, input)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return printJSON(cmd.OutOrStdout(), out)
	}
	renderHealing(cmd.OutOrStdout(), snap, input, out)
	return nil
}
