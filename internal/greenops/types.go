// Package greenops computes carbon intensity and energy mix ratios for a zone.
//
// Intensities are normalized per unit of primary energy, per capita, or per
// unit of GDP, in either consumption (import-adjusted) or production
// accounting. Divisions are not guarded: missing or zero denominators yield
// NaN or ±Inf exactly as IEEE-754 division does.
package greenops

import (
	"fmt"
	"strings"
)

// Domain is the normalization basis for a carbon intensity.
type Domain int

const (
	// DomainEnergy expresses emissions per unit of primary energy.
	DomainEnergy Domain = iota

	// DomainPopulation expresses emissions per capita.
	DomainPopulation

	// DomainGDP expresses emissions per unit of GDP.
	DomainGDP
)

// String returns the lowercase name used in config files and flags.
func (d Domain) String() string {
	switch d {
	case DomainEnergy:
		return "energy"
	case DomainPopulation:
		return "population"
	case DomainGDP:
		return "gdp"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// Unit returns the display unit of intensities in this domain.
func (d Domain) Unit() string {
	switch d {
	case DomainEnergy:
		return UnitEnergy
	case DomainPopulation:
		return UnitPopulation
	case DomainGDP:
		return UnitGDP
	default:
		return ""
	}
}

// Domains lists the recognized domains in display order.
func Domains() []Domain {
	return []Domain{DomainEnergy, DomainPopulation, DomainGDP}
}

// ParseDomain parses a domain name case-insensitively.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "energy":
		return DomainEnergy, nil
	case "population", "capita":
		return DomainPopulation, nil
	case "gdp":
		return DomainGDP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
}

// Ratio is the share of a zone's primary energy that passes a source filter.
//
// A zero Ratio carries no value: the data point or its per-source breakdown
// was missing. Callers must check HasValue before reading Value.
type Ratio struct {
	// Percentage is the ratio in [0, 1] for well-formed data, nil when unknown.
	Percentage *float64 `json:"percentage"`
}

// HasValue reports whether the ratio was computed.
func (r Ratio) HasValue() bool {
	return r.Percentage != nil
}

// Value returns the ratio, or 0 when HasValue is false.
func (r Ratio) Value() float64 {
	if r.Percentage == nil {
		return 0
	}
	return *r.Percentage
}
