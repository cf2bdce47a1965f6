package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonmap/internal/tui"
)

// errNotInteractive is returned by zone browse when stdin is not a terminal.
var errNotInteractive = errors.New("zone browse requires an interactive terminal; use zone show or zone history instead")

// NewZoneBrowseCmd creates the interactive zone browser command.
func NewZoneBrowseCmd() *cobra.Command {
	var f zoneFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the selected zone's history interactively",
		Long: `Opens a terminal view of the selected zone. Step through the history with the
arrow keys, toggle the mix mode with m and cycle the intensity domain with d.`,
		Example: `  carbonmap zone browse --state state.yaml --zone FR`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runZoneBrowse(cmd, &f)
		},
	}

	addSelectionFlags(cmd, &f)
	addDomainFlag(cmd, &f)

	return cmd
}

func runZoneBrowse(cmd *cobra.Command, f *zoneFlags) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNotInteractive
	}

	domain, err := f.resolveDomain()
	if err != nil {
		return err
	}

	snap, err := loadSelectedSnapshot(cmd, f)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	model := tui.NewZoneModel(ctx, snap, domain, precision())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running zone browser: %w", err)
	}
	return nil
}
