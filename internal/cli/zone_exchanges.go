package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmap/internal/selectors"
)

// NewZoneExchangesCmd creates the zone exchanges command, which lists the
// neighbouring zones the selected zone exchanges electricity with.
func NewZoneExchangesCmd() *cobra.Command {
	var f zoneFlags

	cmd := &cobra.Command{
		Use:   "exchanges",
		Short: "List exchange neighbours of the selected zone",
		Long: `Lists the union of exchange neighbours across the selected zone's history.
Exchanges are only reported in consumption mode; production mode lists none.`,
		Example: `  carbonmap zone exchanges --state state.yaml --zone DK`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runZoneExchanges(cmd, &f)
		},
	}

	addSelectionFlags(cmd, &f)
	addOutputFlag(cmd, &f)

	return cmd
}

func runZoneExchanges(cmd *cobra.Command, f *zoneFlags) error {
	if err := f.validateOutput(); err != nil {
		return err
	}

	snap, err := loadSelectedSnapshot(cmd, f)
	if err != nil {
		return err
	}

	keys := selectors.ZoneExchangeKeys(snap)
	if f.output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), map[string]any{
			"zone_name":     snap.Application.SelectedZoneName,
			"mix_mode":      snap.Application.ElectricityMixMode,
			"exchange_keys": keys,
		})
	}

	if len(keys) == 0 {
		cmd.Println("No exchanges for the selected zone")
		return nil
	}

	// Count the years each neighbour appears in.
	years := make(map[string]int, len(keys))
	for _, point := range selectors.ZoneHistory(snap) {
		for k := range point.Exchange {
			years[k]++
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ZONE\tYEARS")
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%d\n", k, years[k])
	}
	return w.Flush()
}
