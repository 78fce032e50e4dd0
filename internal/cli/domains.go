package cli

import (
	"github.com/spf13/cobra"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/modifiers"
)

// NewDomainsCommand creates the domains command.
func NewDomainsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List the domain catalog with stacking rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDomains(rootOpts, cmd)
		},
	}

	return cmd
}

func runDomains(opts *RootOptions, cmd *cobra.Command) error {
	catalog, err := loadCatalog(opts)
	if err != nil {
		return err
	}

	keys := catalog.Keys()
	domains := make([]modifiers.Domain, 0, len(keys))
	for _, key := range keys {
		if d, ok := catalog.Domain(key); ok {
			domains = append(domains, d)
		}
	}

	if opts.Format == "json" {
		return printJSON(cmd.OutOrStdout(), domains)
	}
	renderDomains(cmd.OutOrStdout(), domains)
	return nil
}
