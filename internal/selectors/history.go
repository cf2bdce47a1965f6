package selectors

import (
	"sort"
	"strconv"
	"time"

	"github.com/rshade/carbonmap/internal/zone"
)

// HistoryEndTime is the fixed end of the history graph's time range. It is set
// explicitly so charts show missing trailing data instead of ending at the
// last data point.
const HistoryEndTime = "2019"

// ZoneHistory returns the series of the selected zone. The result is never
// nil: it is empty when no zone is selected or the zone has no series.
func ZoneHistory(s *zone.Snapshot) []zone.DataPoint {
	if s == nil || s.Application.SelectedZoneName == "" {
		return []zone.DataPoint{}
	}
	record := s.Country(s.Application.SelectedZoneName)
	if record == nil || record.Series == nil {
		return []zone.DataPoint{}
	}
	return record.Series
}

// ZoneExchangeKeys returns the sorted, distinct neighbour zones found in the
// exchange maps of the selected zone's history. Exchanges only apply to the
// consumption mix, so any other mode yields an empty slice.
func ZoneExchangeKeys(s *zone.Snapshot) []string {
	if s == nil || !s.Application.ElectricityMixMode.IsConsumption() {
		return []string{}
	}

	seen := make(map[string]struct{})
	for _, point := range ZoneHistory(s) {
		for key := range point.Exchange {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ZoneHistoryDatetimes maps each history point to January 1st (UTC) of its
// year. The result has the same length and order as ZoneHistory.
func ZoneHistoryDatetimes(s *zone.Snapshot) []time.Time {
	history := ZoneHistory(s)
	out := make([]time.Time, len(history))
	for i, point := range history {
		out[i] = yearStart(point.Year)
	}
	return out
}

// yearStart parses the year the way a date library parses a bare "YYYY"
// string, falling back to time.Date for years outside four digits.
func yearStart(year int) time.Time {
	if t, err := time.Parse("2006", strconv.Itoa(year)); err == nil {
		return t
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ZoneHistoryEndTime returns HistoryEndTime.
func ZoneHistoryEndTime(_ *zone.Snapshot) string {
	return HistoryEndTime
}

// ZoneHistoryStartTime returns nil: no explicit start time.
//
// TODO: return a start time 24h in the past once the neighbouring graphs use
// the same time scale; today that would make the graphs disagree.
func ZoneHistoryStartTime(_ *zone.Snapshot) *time.Time {
	return nil
}
