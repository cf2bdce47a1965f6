package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonmap/internal/zone"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
		errMsg  string
	}{
		{name: "zero value", params: Params{}},
		{name: "limit and offset", params: Params{Limit: 10, Offset: 20}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: true, errMsg: "limit cannot be negative"},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: true, errMsg: "offset cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		input     string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{"", "", SortOrderAsc, nil},
		{"year", "year", SortOrderAsc, nil},
		{"intensity:desc", "intensity", SortOrderDesc, nil},
		{" intensity : DESC ", "intensity", SortOrderDesc, nil},
		{"year:up", "", "", ErrInvalidSortOrder},
		{":asc", "", "", ErrEmptySortField},
		{"a:b:c", "", "", ErrInvalidSortFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			field, order, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		total     int
		wantStart int
		wantEnd   int
	}{
		{"all", Params{}, 5, 0, 5},
		{"limit", Params{Limit: 2}, 5, 0, 2},
		{"offset and limit", Params{Limit: 2, Offset: 4}, 5, 4, 5},
		{"offset past end", Params{Offset: 9}, 5, 5, 5},
		{"empty", Params{Limit: 3}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.params.Window(tt.total)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Limit: 2, Offset: 1}, 5)
	assert.Equal(t, Meta{Offset: 1, Limit: 2, Returned: 2, TotalItems: 5, HasMore: true}, meta)

	meta = NewMeta(Params{Offset: 3}, 5)
	assert.Equal(t, 2, meta.Returned)
	assert.False(t, meta.HasMore)
}

func historyRows() []HistoryRow {
	points := []zone.DataPoint{{Year: 2015}, {Year: 2016}, {Year: 2017}, {Year: 2018}}
	intensities := []*float64{zone.Float(300), nil, zone.Float(math.NaN()), zone.Float(100)}
	rows := make([]HistoryRow, len(points))
	for i := range points {
		rows[i] = HistoryRow{Index: i, Point: &points[i], Intensity: intensities[i]}
	}
	return rows
}

func indices(rows []HistoryRow) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Index
	}
	return out
}

func TestSortHistory(t *testing.T) {
	rows := historyRows()

	assert.Equal(t, []int{3, 2, 1, 0}, indices(SortHistory(rows, SortFieldYear, SortOrderDesc)))
	assert.Equal(t, []int{3, 0, 1, 2}, indices(SortHistory(rows, SortFieldIntensity, SortOrderAsc)))
	assert.Equal(t, []int{0, 3, 1, 2}, indices(SortHistory(rows, SortFieldIntensity, SortOrderDesc)))

	// Unknown or empty field keeps series order; the input is never reordered.
	assert.Equal(t, []int{0, 1, 2, 3}, indices(SortHistory(rows, "", SortOrderDesc)))
	assert.Equal(t, []int{0, 1, 2, 3}, indices(SortHistory(rows, "gdp", SortOrderDesc)))
	assert.Equal(t, []int{0, 1, 2, 3}, indices(rows))
}

func TestCheckHistoryField(t *testing.T) {
	require.NoError(t, CheckHistoryField(""))
	require.NoError(t, CheckHistoryField(SortFieldYear))
	require.ErrorIs(t, CheckHistoryField("savings"), ErrInvalidSortField)
}
