package greenops

import (
	"github.com/rshade/carbonmap/internal/zone"
)

// energyRatio sums the per-source primary energy of data whose source key
// passes keep, divided by the zone total for the same mix mode.
func energyRatio(mode zone.MixMode, data *zone.DataPoint, keep func(string) bool) Ratio {
	if data == nil {
		return Ratio{}
	}

	bySource := data.PrimaryEnergyProductionTWh
	total := data.TotalPrimaryEnergyProductionTWh
	if mode.IsConsumption() {
		bySource = data.PrimaryEnergyConsumptionTWh
		total = data.TotalPrimaryEnergyConsumptionTWh
	}
	if bySource == nil {
		return Ratio{}
	}

	var sum float64
	for key, twh := range bySource {
		if keep(key) {
			sum += twh
		}
	}

	v := sum / zone.Value(total)
	return Ratio{Percentage: &v}
}

// RenewableRatio is the share of primary energy from sources that are neither
// fossil fuels nor nuclear.
func RenewableRatio(mode zone.MixMode, data *zone.DataPoint) Ratio {
	return energyRatio(mode, data, func(key string) bool {
		return !IsFossilFuel(key) && key != NuclearKey
	})
}

// LowCarbonRatio is the share of primary energy from non-fossil sources,
// nuclear included.
func LowCarbonRatio(mode zone.MixMode, data *zone.DataPoint) Ratio {
	return energyRatio(mode, data, func(key string) bool {
		return !IsFossilFuel(key)
	})
}
