package cli

import (
	"github.com/spf13/cobra"
)

// NewThresholdCommand creates the threshold command.
func NewThresholdCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threshold <snapshot.json>",
		Short: "Compute a snapshot's damage threshold",
		Long: `Compute the damage threshold: the defensive baseline from the
snapshot plus every aggregated threshold modifier, with breakdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThreshold(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runThreshold(opts *RootOptions, cmd *cobra.Command, path string) error {
	snap, err := LoadSnapshot(path)
	if err != nil {
		return err
	}

	svc, err := buildService(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	result, err := svc.Threshold(cmd.Context(), snap)
	if err != nil {
		return err
	}

	if opts.Format == "json" {
		return printJSON(cmd.OutOrStdout(), result)
	}
	renderThreshold(cmd.OutOrStdout(), snap, result)
	return nil
}
