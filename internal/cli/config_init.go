package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmap/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes the default
// configuration to ~/.carbonmap/config.yaml (or $CARBONMAP_HOME/config.yaml).
func NewConfigInitCmd() *cobra.Command {
	var (
		force     bool
		stateFile string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create the configuration
  carbonmap config init

  # Point the configuration at a snapshot, overwriting an existing file
  carbonmap config init --state-file ~/maps/state.yaml --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, stateFile, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().StringVar(&stateFile, "state-file", "", "state snapshot to record as state.file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, stateFile string, force bool) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", path, statErr)
		}
	}

	cfg := config.Default()
	cfg.State.File = stateFile
	if err = cfg.Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)
	return nil
}
