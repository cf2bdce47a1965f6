package greenops

import "slices"

// Scale factors applied to raw snapshot fields.
const (
	// EnergyIntensityScale converts Mt CO2 per TWh to g CO2 per kWh.
	EnergyIntensityScale = 1000.0

	// GDPIntensityScale converts Mt CO2 per million USD to t CO2 per million USD.
	GDPIntensityScale = 1e6
)

// Display units per domain.
const (
	UnitEnergy     = "gCO2eq/kWh"
	UnitPopulation = "tCO2eq/capita"
	UnitGDP        = "tCO2eq/M$"
)

// NuclearKey is the energy source key for nuclear generation. Nuclear counts
// as low-carbon but not as renewable.
const NuclearKey = "nuclear"

// NotAvailable is shown in place of values that could not be computed.
const NotAvailable = "n/a"

// FossilFuelKeys are the energy source keys classified as fossil fuels.
//
//nolint:gochecknoglobals // Read-only classification table.
var FossilFuelKeys = []string{"coal", "gas", "oil"}

// IsFossilFuel reports whether key is one of FossilFuelKeys.
func IsFossilFuel(key string) bool {
	return slices.Contains(FossilFuelKeys, key)
}
