package selectors

import (
	"time"

	"github.com/rshade/carbonmap/internal/greenops"
	"github.com/rshade/carbonmap/internal/zone"
)

// Summary is everything the zone panel shows for the resolved data point.
// Intensity may point at NaN or ±Inf, so encode it through a wrapper that
// handles non-finite numbers rather than marshaling Summary directly.
type Summary struct {
	ZoneName      string
	MixMode       zone.MixMode
	Domain        string
	Unit          string
	HasData       bool
	Year          int
	TimeIndex     *int
	Intensity     *float64
	Renewable     greenops.Ratio
	LowCarbon     greenops.Ratio
	ExchangeKeys  []string
	HistoryLength int
	StartTime     *time.Time
	EndTime       string
}

// ZoneSummary collects the selector outputs for the selected zone in one
// record. When no data point resolves, HasData is false and the computed
// fields are left empty. Errors come only from CarbonIntensity.
func ZoneSummary(s *zone.Snapshot, domain greenops.Domain) (*Summary, error) {
	summary := &Summary{
		Domain:        domain.String(),
		Unit:          domain.Unit(),
		ExchangeKeys:  ZoneExchangeKeys(s),
		HistoryLength: len(ZoneHistory(s)),
		StartTime:     ZoneHistoryStartTime(s),
		EndTime:       ZoneHistoryEndTime(s),
	}
	if s != nil {
		summary.ZoneName = s.Application.SelectedZoneName
		summary.MixMode = s.Application.ElectricityMixMode
		summary.TimeIndex = s.Application.SelectedZoneTimeIndex
	}

	point := CurrentZoneData(s)
	if point == nil {
		return summary, nil
	}

	intensity, err := greenops.CarbonIntensity(domain, summary.MixMode, point)
	if err != nil {
		return nil, err
	}

	summary.HasData = true
	summary.Year = point.Year
	summary.Intensity = intensity
	summary.Renewable = greenops.RenewableRatio(summary.MixMode, point)
	summary.LowCarbon = greenops.LowCarbonRatio(summary.MixMode, point)
	return summary, nil
}
