package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmap/internal/cli/pagination"
	"github.com/rshade/carbonmap/internal/greenops"
	"github.com/rshade/carbonmap/internal/selectors"
	"github.com/rshade/carbonmap/internal/tui"
	"github.com/rshade/carbonmap/internal/zone"
)

// NewZoneHistoryCmd creates the zone history command.
func NewZoneHistoryCmd() *cobra.Command {
	var (
		f       zoneFlags
		params  pagination.Params
		sortStr string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the selected zone's yearly history",
		Example: `  # History with energy intensities
  carbonmap zone history --state state.yaml --zone DE

  # The five most carbon intensive years
  carbonmap zone history --state state.yaml --sort intensity:desc --limit 5

  # Production accounting, per capita, as JSON
  carbonmap zone history --state state.yaml --mode production --domain population -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			field, order, err := pagination.ParseSort(sortStr)
			if err != nil {
				return err
			}
			if err = pagination.CheckHistoryField(field); err != nil {
				return err
			}
			params.SortField, params.SortOrder = field, order
			return runZoneHistory(cmd, &f, params)
		},
	}

	addSelectionFlags(cmd, &f)
	addDomainFlag(cmd, &f)
	addOutputFlag(cmd, &f)
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of years to list (0 for all)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of years to skip")
	cmd.Flags().StringVar(&sortStr, "sort", "", "sort by year or intensity, optionally with :asc or :desc")

	return cmd
}

func runZoneHistory(cmd *cobra.Command, f *zoneFlags, params pagination.Params) error {
	if err := f.validateOutput(); err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
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

	rows, err := historyRows(snap, domain)
	if err != nil {
		return err
	}
	rows = pagination.SortHistory(rows, params.SortField, params.SortOrder)
	meta := pagination.NewMeta(params, len(rows))
	start, end := params.Window(len(rows))
	rows = rows[start:end]

	if f.output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), newHistoryJSON(snap, domain, rows, meta))
	}

	history := make([]zone.DataPoint, len(rows))
	datetimes := make([]time.Time, len(rows))
	for i, row := range rows {
		history[i] = *row.Point
		datetimes[i] = row.Datetime
	}

	table, err := tui.RenderHistoryTable(history, datetimes, domain, snap.Application.ElectricityMixMode, precision())
	if err != nil {
		return err
	}
	cmd.Println(table)
	if meta.HasMore {
		cmd.Printf("\nShowing %d of %d years\n", meta.Returned, meta.TotalItems)
	}
	cmd.Printf("\nHistory ends %s\n", selectors.ZoneHistoryEndTime(snap))
	return nil
}

// historyRows pairs each history point of the selected zone with its index,
// datetime and carbon intensity in domain.
func historyRows(s *zone.Snapshot, domain greenops.Domain) ([]pagination.HistoryRow, error) {
	history := selectors.ZoneHistory(s)
	datetimes := selectors.ZoneHistoryDatetimes(s)

	rows := make([]pagination.HistoryRow, len(history))
	for i := range history {
		intensity, err := greenops.CarbonIntensity(domain, s.Application.ElectricityMixMode, &history[i])
		if err != nil {
			return nil, err
		}
		rows[i] = pagination.HistoryRow{
			Index:     i,
			Point:     &history[i],
			Datetime:  datetimes[i],
			Intensity: intensity,
		}
	}
	return rows, nil
}
