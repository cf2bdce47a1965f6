package cli

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/rshade/carbonmap/internal/cli/pagination"
	"github.com/rshade/carbonmap/internal/greenops"
	"github.com/rshade/carbonmap/internal/selectors"
	"github.com/rshade/carbonmap/internal/zone"
)

// jsonFloat carries an optional number into JSON output. NaN and infinities
// have no JSON encoding and are written as null.
type jsonFloat struct {
	v *float64
}

// MarshalJSON implements json.Marshaler.
func (f jsonFloat) MarshalJSON() ([]byte, error) {
	if f.v == nil || math.IsNaN(*f.v) || math.IsInf(*f.v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(*f.v)
}

type summaryJSON struct {
	ZoneName      string       `json:"zone_name"`
	MixMode       zone.MixMode `json:"mix_mode"`
	Domain        string       `json:"domain"`
	Unit          string       `json:"unit"`
	HasData       bool         `json:"has_data"`
	Year          int          `json:"year,omitempty"`
	TimeIndex     *int         `json:"time_index"`
	Intensity     jsonFloat    `json:"carbon_intensity"`
	Renewable     ratioJSON    `json:"renewable_ratio"`
	LowCarbon     ratioJSON    `json:"low_carbon_ratio"`
	ExchangeKeys  []string     `json:"exchange_keys"`
	HistoryLength int          `json:"history_length"`
	StartTime     *time.Time   `json:"start_time"`
	EndTime       string       `json:"end_time"`
}

type ratioJSON struct {
	Percentage jsonFloat `json:"percentage"`
}

type historyEntryJSON struct {
	Index     int                `json:"index"`
	Year      int                `json:"year"`
	Datetime  time.Time          `json:"datetime"`
	Intensity jsonFloat          `json:"carbon_intensity"`
	Exchange  map[string]float64 `json:"exchange,omitempty"`
}

type historyJSON struct {
	ZoneName  string             `json:"zone_name"`
	MixMode   zone.MixMode       `json:"mix_mode"`
	Domain    string             `json:"domain"`
	Unit      string             `json:"unit"`
	StartTime *time.Time         `json:"start_time"`
	EndTime   string             `json:"end_time"`
	Entries   []historyEntryJSON `json:"entries"`

	Pagination pagination.Meta `json:"pagination"`
}

func newSummaryJSON(s *selectors.Summary) summaryJSON {
	return summaryJSON{
		ZoneName:      s.ZoneName,
		MixMode:       s.MixMode,
		Domain:        s.Domain,
		Unit:          s.Unit,
		HasData:       s.HasData,
		Year:          s.Year,
		TimeIndex:     s.TimeIndex,
		Intensity:     jsonFloat{s.Intensity},
		Renewable:     newRatioJSON(s.Renewable),
		LowCarbon:     newRatioJSON(s.LowCarbon),
		ExchangeKeys:  s.ExchangeKeys,
		HistoryLength: s.HistoryLength,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
	}
}

func newRatioJSON(r greenops.Ratio) ratioJSON {
	return ratioJSON{Percentage: jsonFloat{r.Percentage}}
}

// newHistoryJSON builds the history document for rows of the selected zone.
func newHistoryJSON(s *zone.Snapshot, domain greenops.Domain, rows []pagination.HistoryRow, meta pagination.Meta) historyJSON {
	doc := historyJSON{
		ZoneName:   s.Application.SelectedZoneName,
		MixMode:    s.Application.ElectricityMixMode,
		Domain:     domain.String(),
		Unit:       domain.Unit(),
		StartTime:  selectors.ZoneHistoryStartTime(s),
		EndTime:    selectors.ZoneHistoryEndTime(s),
		Entries:    make([]historyEntryJSON, 0, len(rows)),
		Pagination: meta,
	}

	for _, row := range rows {
		doc.Entries = append(doc.Entries, historyEntryJSON{
			Index:     row.Index,
			Year:      row.Point.Year,
			Datetime:  row.Datetime,
			Intensity: jsonFloat{row.Intensity},
			Exchange:  row.Point.Exchange,
		})
	}
	return doc
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
