// Package zone holds the application state snapshot read by the selectors.
//
// A Snapshot mirrors the client-side state tree of the carbon map: the
// application slice (selected zone, mix mode, time index, current year) and
// the per-zone yearly series. Nothing in this package derives display values;
// see the selectors and greenops packages for that.
package zone

import (
	"math"
	"sort"
	"strings"
)

// MixMode selects consumption (import-adjusted) or production accounting.
type MixMode string

const (
	// MixModeConsumption reports figures adjusted for imports and exports.
	MixModeConsumption MixMode = "consumption"

	// MixModeProduction reports figures for generation within the zone only.
	MixModeProduction MixMode = "production"
)

// IsConsumption reports whether m is the consumption mix mode.
// Every other value, including the empty string, is treated as production.
func (m MixMode) IsConsumption() bool {
	return m == MixModeConsumption
}

// String returns the mix mode as stored in the snapshot.
func (m MixMode) String() string {
	return string(m)
}

// ParseMixMode parses a mix mode name case-insensitively.
func ParseMixMode(s string) (MixMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(MixModeConsumption):
		return MixModeConsumption, nil
	case string(MixModeProduction):
		return MixModeProduction, nil
	default:
		return "", &UnknownValueError{Kind: ErrUnknownMixMode, Value: s}
	}
}

// ApplicationState is the UI slice of the snapshot.
type ApplicationState struct {
	// SelectedZoneName is the zone shown in the side panel. Empty means none.
	SelectedZoneName string `yaml:"selectedZoneName" json:"selectedZoneName"`

	// ElectricityMixMode is the accounting mode used for display.
	ElectricityMixMode MixMode `yaml:"electricityMixMode" json:"electricityMixMode"`

	// SelectedZoneTimeIndex is the explicit history index picked on the
	// timeline. Nil means "follow CurrentYear".
	SelectedZoneTimeIndex *int `yaml:"selectedZoneTimeIndex" json:"selectedZoneTimeIndex"`

	// CurrentYear is matched against DataPoint.Year when no index is selected.
	CurrentYear int `yaml:"currentYear" json:"currentYear"`
}

// CountryRecord holds the data for one zone.
type CountryRecord struct {
	// Series is the yearly history in chronological order. Nil means no data.
	Series []DataPoint `yaml:"series" json:"series"`
}

// DataPoint is one yearly record for a zone.
//
// Optional numeric fields are pointers so that an absent value can be told
// apart from zero. Use Value to read them as NaN when absent.
type DataPoint struct {
	Year     int                `yaml:"year" json:"year"`
	Exchange map[string]float64 `yaml:"exchange,omitempty" json:"exchange,omitempty"`

	PrimaryEnergyConsumptionTWh map[string]float64 `yaml:"primaryEnergyConsumptionTWh,omitempty" json:"primaryEnergyConsumptionTWh,omitempty"`
	PrimaryEnergyProductionTWh  map[string]float64 `yaml:"primaryEnergyProductionTWh,omitempty" json:"primaryEnergyProductionTWh,omitempty"`

	TotalPrimaryEnergyConsumptionTWh *float64 `yaml:"totalPrimaryEnergyConsumptionTWh,omitempty" json:"totalPrimaryEnergyConsumptionTWh,omitempty"`
	TotalPrimaryEnergyProductionTWh  *float64 `yaml:"totalPrimaryEnergyProductionTWh,omitempty" json:"totalPrimaryEnergyProductionTWh,omitempty"`

	TotalFootprintMegatonsCO2 *float64 `yaml:"totalFootprintMegatonsCO2,omitempty" json:"totalFootprintMegatonsCO2,omitempty"`
	TotalEmissionsMegatonsCO2 *float64 `yaml:"totalEmissionsMegatonsCO2,omitempty" json:"totalEmissionsMegatonsCO2,omitempty"`

	TotalFootprintTonsCO2PerCapita *float64 `yaml:"totalFootprintTonsCO2PerCapita,omitempty" json:"totalFootprintTonsCO2PerCapita,omitempty"`
	TotalEmissionsTonsCO2PerCapita *float64 `yaml:"totalEmissionsTonsCO2PerCapita,omitempty" json:"totalEmissionsTonsCO2PerCapita,omitempty"`

	GDPMillionsCurrentUSD *float64 `yaml:"gdpMillionsCurrentUSD,omitempty" json:"gdpMillionsCurrentUSD,omitempty"`
}

// Value dereferences an optional field, returning NaN when it is absent.
func Value(f *float64) float64 {
	if f == nil {
		return math.NaN()
	}
	return *f
}

// Float returns a pointer to v. Handy for building data points in code.
func Float(v float64) *float64 {
	return &v
}

// Data is the data slice of the snapshot.
type Data struct {
	Countries map[string]*CountryRecord `yaml:"countries" json:"countries"`
}

// Snapshot is a read-only view of the application state tree.
type Snapshot struct {
	SchemaVersion string           `yaml:"schemaVersion,omitempty" json:"schemaVersion,omitempty"`
	Application   ApplicationState `yaml:"application" json:"application"`
	Data          Data             `yaml:"data" json:"data"`
}

// Country returns the record for name, or nil if the snapshot has none.
func (s *Snapshot) Country(name string) *CountryRecord {
	if s == nil || s.Data.Countries == nil {
		return nil
	}
	return s.Data.Countries[name]
}

// ZoneNames returns the zone names present in the snapshot in ascending order.
func (s *Snapshot) ZoneNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Data.Countries))
	for name := range s.Data.Countries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
