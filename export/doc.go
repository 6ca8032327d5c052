// Package export writes fitted peak parameters to the two flat CSV tables
// consumed downstream: a per-peak detail table appended across sessions and
// a fixed-width per-file area summary.
package export
