package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the zone views.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
)

// Intensity bands for the energy domain, in gCO2eq/kWh.
const (
	lowIntensity  = 200.0
	highIntensity = 500.0
)
