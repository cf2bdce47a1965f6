package pagination

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rshade/carbonmap/internal/zone"
)

// History sort fields.
const (
	SortFieldYear      = "year"
	SortFieldIntensity = "intensity"
)

// HistoryRow is one history point with its position in the zone's series.
type HistoryRow struct {
	Index     int
	Point     *zone.DataPoint
	Datetime  time.Time
	Intensity *float64
}

// ValidHistoryFields returns the fields SortHistory accepts.
func ValidHistoryFields() []string {
	return []string{SortFieldIntensity, SortFieldYear}
}

// CheckHistoryField returns an error wrapping ErrInvalidSortField for an
// unknown field. The empty field is valid and means series order.
func CheckHistoryField(field string) error {
	switch field {
	case "", SortFieldYear, SortFieldIntensity:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: %v)", ErrInvalidSortField, field, ValidHistoryFields())
	}
}

// SortHistory returns a sorted copy of rows. Rows without a finite intensity
// sort after every other row in both orders. An empty or unknown field
// returns rows unchanged.
func SortHistory(rows []HistoryRow, field, order string) []HistoryRow {
	if field == "" || CheckHistoryField(field) != nil {
		return rows
	}

	sorted := make([]HistoryRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if field == SortFieldIntensity {
			fi, fj := finite(sorted[i].Intensity), finite(sorted[j].Intensity)
			if fi != fj {
				return fi
			}
			if !fi {
				return false
			}
		}

		a, b := sortKey(sorted[i], field), sortKey(sorted[j], field)
		if order == SortOrderDesc {
			return a > b
		}
		return a < b
	})

	return sorted
}

func sortKey(row HistoryRow, field string) float64 {
	if field == SortFieldIntensity {
		return *row.Intensity
	}
	return float64(row.Point.Year)
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
