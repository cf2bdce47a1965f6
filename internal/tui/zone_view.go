package tui

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbonmap/internal/greenops"
	"github.com/rshade/carbonmap/internal/selectors"
	"github.com/rshade/carbonmap/internal/zone"
)

// Column widths for the history table.
const (
	yearColumnWidth     = 6
	dateColumnWidth     = 12
	intensityColWidth   = 24
	summaryLabelWidth   = 18
	maxExchangesPerLine = 8
)

// RenderZoneHeader renders the boxed title for a zone summary.
func RenderZoneHeader(summary *selectors.Summary) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	name := "No zone selected"
	if summary != nil && summary.ZoneName != "" {
		name = "Zone " + summary.ZoneName
	}
	return titleStyle.Render(name)
}

// RenderSummary renders the label/value block for a zone summary.
func RenderSummary(summary *selectors.Summary, precision int) string {
	muted := lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	if summary == nil {
		return muted.Render("No data")
	}

	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel).Width(summaryLabelWidth)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	var sb strings.Builder
	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	row("Mix mode:", valueStyle.Render(mixModeLabel(summary.MixMode)))

	if !summary.HasData {
		row("Year:", muted.Render("no data for selection"))
	} else {
		year := strconv.Itoa(summary.Year)
		if summary.TimeIndex == nil {
			year += muted.Render(" (current)")
		}
		row("Year:", valueStyle.Render(year))

		intensity := greenops.FormatIntensity(summary.Intensity, domainOf(summary), precision)
		row("Carbon intensity:", intensityStyle(summary).Render(intensity))
		row("Renewable:", valueStyle.Render(greenops.FormatRatio(summary.Renewable, precision)))
		row("Low-carbon:", valueStyle.Render(greenops.FormatRatio(summary.LowCarbon, precision)))
	}

	exchanges := muted.Render("none")
	if len(summary.ExchangeKeys) > 0 {
		exchanges = wrapList(summary.ExchangeKeys, maxExchangesPerLine, strings.Repeat(" ", summaryLabelWidth))
	}
	row("Exchanges:", exchanges)
	row("History:", fmt.Sprintf("%d points, until %s", summary.HistoryLength, summary.EndTime))

	return strings.TrimSuffix(sb.String(), "\n")
}

// RenderTimeline renders the history years with the current point highlighted.
func RenderTimeline(history []zone.DataPoint, current *zone.DataPoint) string {
	muted := lipgloss.NewStyle().Foreground(ColorMuted)
	if len(history) == 0 {
		return muted.Italic(true).Render("No history")
	}

	selected := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true).Underline(true)
	parts := make([]string, len(history))
	for i := range history {
		year := strconv.Itoa(history[i].Year)
		if current != nil && &history[i] == current {
			parts[i] = selected.Render("[" + year + "]")
			continue
		}
		parts[i] = muted.Render(year)
	}
	return strings.Join(parts, " ")
}

// RenderHistoryTable renders one row per history point: year, start date,
// intensity in domain and the exchange neighbours present that year.
func RenderHistoryTable(
	history []zone.DataPoint,
	datetimes []time.Time,
	domain greenops.Domain,
	mode zone.MixMode,
	precision int,
) (string, error) {
	muted := lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	if len(history) == 0 {
		return muted.Render("No history for the selected zone"), nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-*s%-*s%-*s%s",
		yearColumnWidth, "YEAR",
		dateColumnWidth, "DATE",
		intensityColWidth, "INTENSITY",
		"EXCHANGES")))
	sb.WriteString("\n")

	for i := range history {
		intensity, err := greenops.CarbonIntensity(domain, mode, &history[i])
		if err != nil {
			return "", err
		}

		date := ""
		if i < len(datetimes) {
			date = datetimes[i].Format(time.DateOnly)
		}

		sb.WriteString(fmt.Sprintf("%-*d%-*s%-*s%s\n",
			yearColumnWidth, history[i].Year,
			dateColumnWidth, date,
			intensityColWidth, greenops.FormatIntensity(intensity, domain, precision),
			strings.Join(sortedKeys(history[i].Exchange), ",")))
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func mixModeLabel(mode zone.MixMode) string {
	if mode.IsConsumption() {
		return "consumption"
	}
	return "production"
}

func domainOf(summary *selectors.Summary) greenops.Domain {
	d, err := greenops.ParseDomain(summary.Domain)
	if err != nil {
		return greenops.DomainEnergy
	}
	return d
}

// intensityStyle colours energy intensities by band; other domains have no
// reference bands and use the plain value colour.
func intensityStyle(summary *selectors.Summary) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	if summary.Intensity == nil || domainOf(summary) != greenops.DomainEnergy {
		return style
	}

	v := *summary.Intensity
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return style.Foreground(ColorMuted)
	case v < lowIntensity:
		return style.Foreground(ColorOK)
	case v < highIntensity:
		return style.Foreground(ColorWarning)
	default:
		return style.Foreground(ColorCritical)
	}
}

func wrapList(items []string, perLine int, indent string) string {
	var lines []string
	for start := 0; start < len(items); start += perLine {
		end := min(start+perLine, len(items))
		lines = append(lines, strings.Join(items[start:end], ", "))
	}
	return strings.Join(lines, ",\n"+indent)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
