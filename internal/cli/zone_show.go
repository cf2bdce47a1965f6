package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/carbonmap/internal/selectors"
	"github.com/rshade/carbonmap/internal/tui"
)

// NewZoneShowCmd creates the zone show command, which prints the carbon
// intensity and energy mix ratios for the selected zone's current data point.
func NewZoneShowCmd() *cobra.Command {
	var f zoneFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show carbon intensity and mix ratios for the selected zone",
		Long: `Resolves the current data point for the selected zone and prints its carbon
intensity in the chosen domain together with the renewable and low-carbon
shares of primary energy.

The data point is the history entry at --index when given, otherwise the entry
whose year matches the current year.`,
		Example: `  # Current year for the zone stored in the snapshot
  carbonmap zone show --state state.yaml

  # First history entry for France, per unit of GDP
  carbonmap zone show --state state.yaml --zone FR --index 0 --domain gdp

  # Machine-readable output
  carbonmap zone show --state state.yaml --year 2015 -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runZoneShow(cmd, &f)
		},
	}

	addSelectionFlags(cmd, &f)
	addDomainFlag(cmd, &f)
	addOutputFlag(cmd, &f)
	cmd.Flags().IntVar(&f.index, "index", 0, "history index to select")
	cmd.Flags().IntVar(&f.year, "year", 0, "current year to match (clears the selected index)")
	cmd.Flags().BoolVar(&f.follow, "follow", false, "ignore the snapshot's selected index and follow the current year")
	cmd.MarkFlagsMutuallyExclusive("index", "year")
	cmd.MarkFlagsMutuallyExclusive("index", "follow")

	return cmd
}

func runZoneShow(cmd *cobra.Command, f *zoneFlags) error {
	if err := f.validateOutput(); err != nil {
		return err
	}
	domain, err := f.resolveDomain()
	if err != nil {
		return err
	}

	snap, err := loadSelectedSnapshot(cmd, f)
	if err != nil {
		return err
	}

	summary, err := selectors.ZoneSummary(snap, domain)
	if err != nil {
		return err
	}

	if f.output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), newSummaryJSON(summary))
	}

	cmd.Println(tui.RenderZoneHeader(summary))
	cmd.Println()
	cmd.Println(tui.RenderSummary(summary, precision()))
	return nil
}
