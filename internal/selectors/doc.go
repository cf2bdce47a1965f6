// Package selectors derives display-ready values from a zone.Snapshot.
//
// Every function is pure: it reads the snapshot passed in and returns a new
// value without mutating anything or keeping state between calls. Missing
// optional state (no selected zone, no series, an out-of-range index) is
// reported as a nil pointer or an empty slice, never as an error.
//
// A selected zone that has no entry in the snapshot's country map is treated
// the same as a zone without series.
package selectors
