package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/domain/shared"
	"github.com/docflowGM/foundryvtt-swse-sub004/internal/services/resolution"
)

// NewDamageCommand creates the damage command.
func NewDamageCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		kind            string
		glancing        bool
		doubleThreshold bool
	)

	cmd := &cobra.Command{
		Use:   "damage <snapshot.json> <amount>",
		Short: "Resolve one hit against a snapshot",
		Long: `Run the full damage pipeline for one hit: absorption pool and
damage threshold are aggregated from the snapshot, then the damage is
applied and the condition track impact reported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid damage amount %q", args[1])
			}

			input := &resolution.DamageInput{
				Amount:          amount,
				Kind:            shared.DamageKind(kind),
				Glancing:        glancing,
				DoubleThreshold: doubleThreshold,
			}
			return runDamage(rootOpts, cmd, args[0], input)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "damage kind (energy|kinetic|ion|sonic|fire|stun)")
	cmd.Flags().BoolVar(&glancing, "glancing", false, "halve the damage before resolution")
	cmd.Flags().BoolVar(&doubleThreshold, "double-threshold", false, "shift two condition steps past twice the threshold")

	return cmd
}

func runDamage(opts *RootOptions, cmd *cobra.Command, path string, input *resolution.DamageInput) error {
	snap, err := LoadSnapshot(path)
	if err != nil {
		return err
	}

	svc, err := buildService(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out, err := svc.ResolveDamage(cmd.Context(), snap, input)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return printJSON(cmd.OutOrStdout(), out)
	}
	renderDamage(cmd.OutOrStdout(), snap, input, out)
	return nil
}
