// Package cli implements the swse debug tool: snapshot aggregation,
// threshold and damage inspection over the resolution engine.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/docflowGM/foundryvtt-swse-sub004/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Engine wiring, seeded from config and overridable per run
	Catalog string
	Facts   []string
	Scaling string
	Timeout time.Duration
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the swse CLI.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	opts := &RootOptions{}

	defaultScaling := "full"
	defaultCatalog := ""
	if cfg != nil {
		defaultScaling = cfg.Engine.LevelScaling
		defaultCatalog = cfg.Engine.CatalogPath
		opts.Timeout = cfg.Engine.ProviderTimeout
	}

	cmd := &cobra.Command{
		Use:          "swse",
		Short:        "Saga Edition modifier stacking and damage resolution debugger",
		Long:         "Inspect modifier stacking, damage thresholds and damage resolution\nfor entity snapshots against the Saga Edition domain catalog.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose engine logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", defaultCatalog, "YAML domain catalog layered over the builtin table")
	cmd.PersistentFlags().StringArrayVar(&opts.Facts, "fact", nil, "session fact as key=value, repeatable")
	cmd.PersistentFlags().StringVar(&opts.Scaling, "scaling", defaultScaling, "threshold level scaling (full|half)")

	// Add subcommands
	cmd.AddCommand(NewAggregateCommand(opts))
	cmd.AddCommand(NewThresholdCommand(opts))
	cmd.AddCommand(NewDamageCommand(opts))
	cmd.AddCommand(NewHealCommand(opts))
	cmd.AddCommand(NewDomainsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
