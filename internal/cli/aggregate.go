package cli

import (
	"github.com/spf13/cobra"
)

// NewAggregateCommand creates the aggregate command.
func NewAggregateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate <snapshot.json> [target]",
		Short: "Aggregate modifier domains for a snapshot",
		Long: `Aggregate the snapshot's contributions into domain totals.

With a target, shows the stacking-resolved breakdown for that single
domain. Without one, totals every defined domain the snapshot touches.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAggregate(rootOpts, cmd, args)
		},
	}

	return cmd
}

func runAggregate(opts *RootOptions, cmd *cobra.Command, args []string) error {
	snap, err := LoadSnapshot(args[0])
	if err != nil {
		return err
	}

	svc, err := buildService(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 2 {
		detail, err := svc.Detail(ctx, snap, args[1])
		if err != nil {
			return err
		}
		if opts.Format == "json" {
			if detail.Err != nil {
				return printJSON(out, struct {
					Target string `json:"target"`
					Error  string `json:"error"`
				}{detail.Target, detail.Err.Error()})
			}
			return printJSON(out, detail)
		}
		renderDetail(out, snap, detail)
		return nil
	}

	totals, err := svc.AggregateAll(ctx, snap)
	if err != nil {
		return err
	}
	if opts.Format == "json" {
		return printJSON(out, totals)
	}
	renderTotals(out, snap, totals)
	return nil
}
