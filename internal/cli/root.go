package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonmap/internal/config"
	"github.com/rshade/carbonmap/internal/logging"
)

// isTerminal checks if the given file is a terminal.
//
//nolint:gochecknoglobals // Replaced in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonmap CLI.
// It loads configuration, wires up logging and adds the zone and config
// command groups.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "carbonmap",
		Short:         "Carbon intensity views over a zone state snapshot",
		Long:          "carbonmap: derive carbon intensity, energy mix ratios and history views from a carbon map state snapshot",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.carbonmap/config.yaml)")
	cmd.PersistentFlags().String("state", "", "state snapshot file (YAML or JSON)")
	cmd.PersistentFlags().String("countries", "", "directory with one <ZONE>.yaml country file per zone")
	cmd.AddCommand(newZoneCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Show the selected zone's current carbon intensity
  carbonmap zone show --state state.yaml

  # Show a specific history entry in production accounting, per capita
  carbonmap zone show --state state.yaml --zone DE --mode production --index 0 --domain population

  # List the zone's history as JSON
  carbonmap zone history --state state.yaml --output json

  # Browse a zone interactively
  carbonmap zone browse --state state.yaml --zone FR

  # Check the configuration file
  carbonmap config validate`

// loadConfig resolves the configuration from --config or the default file and
// makes it the global config for this invocation.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		config.InitGlobalConfig()
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}

// Execute runs the root command and returns its error.
func Execute(ver string) error {
	root := NewRootCmd(ver)
	if err := root.Execute(); err != nil {
		return fmt.Errorf("%s: %w", root.Name(), err)
	}
	return nil
}
