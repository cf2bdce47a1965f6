package greenops

import (
	"github.com/rshade/carbonmap/internal/zone"
)

// CarbonIntensity computes the carbon intensity of data in the given domain
// and mix mode.
//
// A nil data point yields (nil, nil) without looking at the domain. Domains
// outside DomainEnergy, DomainPopulation and DomainGDP return a *DomainError
// wrapping ErrDomainNotImplemented. The per-capita domain reports its field
// as is, so an absent field yields nil. In the ratio domains missing fields
// read as NaN, so the result may be NaN or ±Inf; it is not checked.
//
//	ENERGY      consumption: footprint Mt / consumption TWh * 1000
//	            production:  emissions Mt / production TWh * 1000
//	POPULATION  consumption: footprint t per capita
//	            production:  emissions t per capita
//	GDP         consumption: footprint Mt / GDP M$ * 1e6
//	            production:  emissions Mt / GDP M$ * 1e6
func CarbonIntensity(domain Domain, mode zone.MixMode, data *zone.DataPoint) (*float64, error) {
	if data == nil {
		return nil, nil //nolint:nilnil // Absent data is not an error.
	}

	var v float64
	consumption := mode.IsConsumption()

	switch domain {
	case DomainEnergy:
		if consumption {
			v = zone.Value(data.TotalFootprintMegatonsCO2) /
				zone.Value(data.TotalPrimaryEnergyConsumptionTWh) * EnergyIntensityScale
		} else {
			v = zone.Value(data.TotalEmissionsMegatonsCO2) /
				zone.Value(data.TotalPrimaryEnergyProductionTWh) * EnergyIntensityScale
		}
	case DomainPopulation:
		perCapita := data.TotalEmissionsTonsCO2PerCapita
		if consumption {
			perCapita = data.TotalFootprintTonsCO2PerCapita
		}
		if perCapita == nil {
			return nil, nil //nolint:nilnil // The field is reported as is; absent stays absent.
		}
		v = *perCapita
	case DomainGDP:
		if consumption {
			v = zone.Value(data.TotalFootprintMegatonsCO2) /
				zone.Value(data.GDPMillionsCurrentUSD) * GDPIntensityScale
		} else {
			v = zone.Value(data.TotalEmissionsMegatonsCO2) /
				zone.Value(data.GDPMillionsCurrentUSD) * GDPIntensityScale
		}
	default:
		return nil, &DomainError{Domain: domain}
	}

	return &v, nil
}
