package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonmap/internal/config"
	"github.com/rshade/carbonmap/internal/greenops"
	"github.com/rshade/carbonmap/internal/logging"
	"github.com/rshade/carbonmap/internal/zone"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// errNoStateFile is returned when neither --state nor the config names a snapshot.
var errNoStateFile = errors.New("no state snapshot given: use --state or set state.file in the config")

// zoneFlags are the selection flags shared by the zone subcommands.
type zoneFlags struct {
	zoneName string
	mode     string
	domain   string
	output   string
	index    int
	year     int
	follow   bool
}

// newZoneCmd creates the zone command group.
func newZoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Zone history, exchange and carbon intensity views",
	}
	cmd.AddCommand(
		NewZoneShowCmd(), NewZoneHistoryCmd(),
		NewZoneExchangesCmd(), NewZoneBrowseCmd(),
	)
	return cmd
}

// addSelectionFlags registers --zone and --mode on cmd.
func addSelectionFlags(cmd *cobra.Command, f *zoneFlags) {
	cmd.Flags().StringVar(&f.zoneName, "zone", "", "zone to select (default: snapshot's selected zone)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "electricity mix mode: consumption or production (default: snapshot, then config)")
}

// addDomainFlag registers --domain on cmd.
func addDomainFlag(cmd *cobra.Command, f *zoneFlags) {
	cmd.Flags().StringVar(&f.domain, "domain", "", "carbon intensity domain: energy, population or gdp (default: config)")
}

// addOutputFlag registers --output on cmd.
func addOutputFlag(cmd *cobra.Command, f *zoneFlags) {
	cmd.Flags().StringVarP(&f.output, "output", "o", outputTable, "output format: table or json")
}

// loadSelectedSnapshot loads the snapshot named by flags or config, merges the
// countries directory, and applies the command-line selection.
func loadSelectedSnapshot(cmd *cobra.Command, f *zoneFlags) (*zone.Snapshot, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	statePath, _ := cmd.Flags().GetString("state")
	if statePath == "" {
		statePath = cfg.State.File
	}
	if statePath == "" {
		return nil, errNoStateFile
	}

	snap, err := zone.LoadSnapshot(ctx, statePath)
	if err != nil {
		return nil, err
	}

	countriesDir, _ := cmd.Flags().GetString("countries")
	if countriesDir == "" {
		countriesDir = cfg.State.CountriesDir
	}
	if countriesDir != "" {
		countries, loadErr := zone.LoadCountries(ctx, countriesDir)
		if loadErr != nil {
			return nil, loadErr
		}
		snap = snap.MergeCountries(countries)
	}

	sel, err := f.selection(cmd, cfg, snap)
	if err != nil {
		return nil, err
	}
	snap = snap.WithSelection(sel)

	log.Debug().
		Str("operation", "load_snapshot").
		Str("state_file", statePath).
		Str("zone", snap.Application.SelectedZoneName).
		Str("mix_mode", snap.Application.ElectricityMixMode.String()).
		Msg("snapshot ready")

	if name := snap.Application.SelectedZoneName; name != "" && snap.Country(name) == nil {
		log.Warn().Str("zone", name).Msg("selected zone has no country record")
	}

	return snap, nil
}

// selection converts the flags into a zone.Selection. The mix mode falls back
// to the config only when the snapshot leaves it empty.
func (f *zoneFlags) selection(cmd *cobra.Command, cfg *config.Config, snap *zone.Snapshot) (zone.Selection, error) {
	var sel zone.Selection

	if f.zoneName != "" {
		sel.ZoneName = &f.zoneName
	}

	switch {
	case f.mode != "":
		mode, err := zone.ParseMixMode(f.mode)
		if err != nil {
			return sel, err
		}
		sel.MixMode = &mode
	case snap.Application.ElectricityMixMode == "":
		mode := cfg.MixMode()
		sel.MixMode = &mode
	}

	if flag := cmd.Flags().Lookup("index"); flag != nil && flag.Changed {
		sel.TimeIndex = &f.index
	}
	if flag := cmd.Flags().Lookup("year"); flag != nil && flag.Changed {
		sel.CurrentYear = &f.year
		sel.ClearIndex = true
	}
	if f.follow {
		sel.ClearIndex = true
	}
	return sel, nil
}

// resolveDomain returns the --domain flag value, or the configured domain.
func (f *zoneFlags) resolveDomain() (greenops.Domain, error) {
	if f.domain == "" {
		return config.GetGlobalConfig().Domain(), nil
	}
	return greenops.ParseDomain(f.domain)
}

// validateOutput rejects unknown --output values.
func (f *zoneFlags) validateOutput() error {
	switch f.output {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", f.output)
	}
}

// precision returns the configured display precision.
func precision() int {
	return config.GetGlobalConfig().Display.Precision
}

// commandContext returns cmd's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
