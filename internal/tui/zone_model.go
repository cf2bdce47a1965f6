package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/carbonmap/internal/greenops"
	"github.com/rshade/carbonmap/internal/logging"
	"github.com/rshade/carbonmap/internal/selectors"
	"github.com/rshade/carbonmap/internal/zone"
)

// ZoneState is the lifecycle state of the zone browser.
type ZoneState int

const (
	// ZoneStateBrowsing is the normal interactive state.
	ZoneStateBrowsing ZoneState = iota
	// ZoneStateError indicates a selector returned an error.
	ZoneStateError
	// ZoneStateQuitting indicates the browser is exiting.
	ZoneStateQuitting
)

// Default dimensions for the zone browser.
const (
	zoneDefaultWidth  = 80
	zoneDefaultHeight = 24
)

// ZoneModel is the Bubble Tea model for browsing one zone's history.
//
// The model never edits the snapshot it was given: every key press derives a
// new snapshot through zone.Snapshot.WithSelection and recomputes the summary
// from it.
type ZoneModel struct {
	ctx       context.Context
	snapshot  *zone.Snapshot
	domain    greenops.Domain
	precision int

	summary *selectors.Summary
	state   ZoneState
	err     error

	keys zoneKeyMap
	help help.Model

	width  int
	height int
}

// NewZoneModel creates a browser over snapshot, showing intensities in domain.
func NewZoneModel(ctx context.Context, snapshot *zone.Snapshot, domain greenops.Domain, precision int) *ZoneModel {
	m := &ZoneModel{
		ctx:       ctx,
		snapshot:  snapshot,
		domain:    domain,
		precision: precision,
		keys:      defaultZoneKeyMap(),
		help:      help.New(),
		width:     zoneDefaultWidth,
		height:    zoneDefaultHeight,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m *ZoneModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *ZoneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *ZoneModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ZoneStateQuitting
		return m, tea.Quit

	case m.state == ZoneStateError:
		// Only quitting is possible from the error screen.
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.step(-1)

	case key.Matches(msg, m.keys.Next):
		m.step(1)

	case key.Matches(msg, m.keys.Follow):
		m.snapshot = m.snapshot.WithSelection(zone.Selection{ClearIndex: true})

	case key.Matches(msg, m.keys.ToggleMix):
		mode := zone.MixModeConsumption
		if m.snapshot.Application.ElectricityMixMode.IsConsumption() {
			mode = zone.MixModeProduction
		}
		m.snapshot = m.snapshot.WithSelection(zone.Selection{MixMode: &mode})

	case key.Matches(msg, m.keys.CycleDomain):
		domains := greenops.Domains()
		for i, d := range domains {
			if d == m.domain {
				m.domain = domains[(i+1)%len(domains)]
				break
			}
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// step moves the time index by delta, clamped to the history bounds. When no
// index is selected it starts from the point for the current year, or from
// the last point if that year has no data.
func (m *ZoneModel) step(delta int) {
	history := selectors.ZoneHistory(m.snapshot)
	if len(history) == 0 {
		return
	}

	idx := m.resolvedIndex(history)
	idx = max(0, min(len(history)-1, idx+delta))
	m.snapshot = m.snapshot.WithSelection(zone.Selection{TimeIndex: &idx})
}

func (m *ZoneModel) resolvedIndex(history []zone.DataPoint) int {
	if idx := m.snapshot.Application.SelectedZoneTimeIndex; idx != nil {
		return *idx
	}
	for i, point := range history {
		if point.Year == m.snapshot.Application.CurrentYear {
			return i
		}
	}
	return len(history) - 1
}

func (m *ZoneModel) refresh() {
	summary, err := selectors.ZoneSummary(m.snapshot, m.domain)
	if err != nil {
		logging.FromContext(m.ctx).Error().
			Str("component", "tui").
			Err(err).
			Msg("zone summary failed")
		m.err = err
		m.state = ZoneStateError
		return
	}
	m.summary = summary
}

// View renders the current view.
func (m *ZoneModel) View() string {
	switch m.state {
	case ZoneStateQuitting:
		return ""
	case ZoneStateError:
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	case ZoneStateBrowsing:
	}

	out := RenderZoneHeader(m.summary)
	out += "\n\n"
	out += RenderSummary(m.summary, m.precision)
	out += "\n\n"
	out += RenderTimeline(selectors.ZoneHistory(m.snapshot), selectors.CurrentZoneData(m.snapshot))
	out += "\n\n"
	out += m.help.View(m.keys)
	return out
}

// Snapshot returns the snapshot with the selection the user has made.
func (m *ZoneModel) Snapshot() *zone.Snapshot {
	return m.snapshot
}

// Summary returns the summary currently displayed.
func (m *ZoneModel) Summary() *selectors.Summary {
	return m.summary
}

// Domain returns the domain currently displayed.
func (m *ZoneModel) Domain() greenops.Domain {
	return m.domain
}
