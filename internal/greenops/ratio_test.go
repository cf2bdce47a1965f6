package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmap/internal/zone"
)

func productionMix() *zone.DataPoint {
	return &zone.DataPoint{
		PrimaryEnergyProductionTWh: map[string]float64{
			"solar":   10,
			"coal":    20,
			"nuclear": 10,
		},
		TotalPrimaryEnergyProductionTWh: zone.Float(40),
	}
}

func TestRenewableRatio(t *testing.T) {
	r := RenewableRatio(zone.MixModeProduction, productionMix())
	require.True(t, r.HasValue())
	assert.InDelta(t, 0.25, r.Value(), 1e-12)
}

func TestLowCarbonRatio(t *testing.T) {
	r := LowCarbonRatio(zone.MixModeProduction, productionMix())
	require.True(t, r.HasValue())
	assert.InDelta(t, 0.5, r.Value(), 1e-12)
}

func TestEnergyRatio_ConsumptionUsesConsumptionFields(t *testing.T) {
	data := productionMix()
	data.PrimaryEnergyConsumptionTWh = map[string]float64{"wind": 30, "gas": 10, "oil": 10}
	data.TotalPrimaryEnergyConsumptionTWh = zone.Float(60)

	r := RenewableRatio(zone.MixModeConsumption, data)
	require.True(t, r.HasValue())
	assert.InDelta(t, 0.5, r.Value(), 1e-12)

	r = LowCarbonRatio(zone.MixModeConsumption, data)
	require.True(t, r.HasValue())
	assert.InDelta(t, 0.5, r.Value(), 1e-12)
}

func TestEnergyRatio_NoValue(t *testing.T) {
	tests := []struct {
		name string
		mode zone.MixMode
		data *zone.DataPoint
	}{
		{name: "nil data", mode: zone.MixModeProduction, data: nil},
		{name: "missing production breakdown", mode: zone.MixModeProduction, data: &zone.DataPoint{
			TotalPrimaryEnergyProductionTWh: zone.Float(40),
		}},
		{name: "consumption breakdown missing while production present", mode: zone.MixModeConsumption, data: productionMix()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range []Ratio{RenewableRatio(tt.mode, tt.data), LowCarbonRatio(tt.mode, tt.data)} {
				assert.False(t, r.HasValue())
				assert.Nil(t, r.Percentage)
				assert.Zero(t, r.Value())
			}
		})
	}
}

// Callers must branch on HasValue: a computed ratio of zero and a missing
// ratio both read as 0 from Value.
func TestEnergyRatio_CallersBranchOnHasValue(t *testing.T) {
	describe := func(r Ratio) string {
		if !r.HasValue() {
			return "unknown"
		}
		return FormatRatio(r, 0)
	}

	allCoal := &zone.DataPoint{
		PrimaryEnergyProductionTWh:      map[string]float64{"coal": 5},
		TotalPrimaryEnergyProductionTWh: zone.Float(5),
	}

	assert.Equal(t, "0%", describe(RenewableRatio(zone.MixModeProduction, allCoal)))
	assert.Equal(t, "unknown", describe(RenewableRatio(zone.MixModeProduction, nil)))
}

func TestEnergyRatio_EmptyBreakdownIsZero(t *testing.T) {
	r := LowCarbonRatio(zone.MixModeProduction, &zone.DataPoint{
		PrimaryEnergyProductionTWh:      map[string]float64{},
		TotalPrimaryEnergyProductionTWh: zone.Float(10),
	})
	require.True(t, r.HasValue())
	assert.Zero(t, r.Value())
}

func TestEnergyRatio_MissingTotalIsNaN(t *testing.T) {
	r := RenewableRatio(zone.MixModeProduction, &zone.DataPoint{
		PrimaryEnergyProductionTWh: map[string]float64{"hydro": 5},
	})
	require.True(t, r.HasValue())
	assert.True(t, math.IsNaN(r.Value()))
}

func TestIsFossilFuel(t *testing.T) {
	for _, key := range FossilFuelKeys {
		assert.True(t, IsFossilFuel(key), key)
	}
	assert.False(t, IsFossilFuel(NuclearKey))
	assert.False(t, IsFossilFuel("solar"))
}
