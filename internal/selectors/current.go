package selectors

import (
	"github.com/rshade/carbonmap/internal/zone"
)

// CurrentZoneData resolves the data point the UI should display.
//
// With no zone selected it returns nil. With no time index selected it
// returns the first point whose year equals the current year, or nil. With a
// time index it returns the history entry at that index, or nil when the
// index is out of range.
func CurrentZoneData(s *zone.Snapshot) *zone.DataPoint {
	if s == nil || s.Application.SelectedZoneName == "" {
		return nil
	}

	idx := s.Application.SelectedZoneTimeIndex
	if idx == nil {
		record := s.Country(s.Application.SelectedZoneName)
		if record == nil || record.Series == nil {
			return nil
		}
		for i := range record.Series {
			if record.Series[i].Year == s.Application.CurrentYear {
				return &record.Series[i]
			}
		}
		return nil
	}

	history := ZoneHistory(s)
	if *idx < 0 || *idx >= len(history) {
		return nil
	}
	return &history[*idx]
}
