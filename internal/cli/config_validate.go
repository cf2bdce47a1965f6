package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmap/internal/config"
	"github.com/rshade/carbonmap/internal/zone"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the active configuration (--config, or ~/.carbonmap/config.yaml).

This includes:
- Display domain and mix mode names
- Display precision range
- Logging format
- The state snapshot, when state.file is set`,
		Example: `  # Validate current configuration
  carbonmap config validate

  # Validate and show detailed information
  carbonmap config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.State.File != "" {
		snap, err := zone.LoadSnapshot(commandContext(cmd), cfg.State.File)
		if err != nil {
			return fmt.Errorf("state file validation failed: %w", err)
		}
		if verbose {
			cmd.Printf("State snapshot: %d zone(s)\n", len(snap.ZoneNames()))
		}
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Domain: %s (%s)\n", cfg.Domain(), cfg.Domain().Unit())
	cmd.Printf("  Mix mode: %s\n", cfg.MixMode())
	cmd.Printf("  Precision: %d\n", cfg.Display.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	if cfg.State.CountriesDir != "" {
		cmd.Printf("  Countries directory: %s\n", cfg.State.CountriesDir)
	}
}
