// Package probe extracts quality-relevant media attributes from movie
// directories via ffprobe.
//
// The Prober interface is the seam the rest of the tool depends on, so
// tests substitute a stub and never shell out. Descriptors use explicit
// enums with documented defaults for missing data instead of exposing raw
// ffprobe fields.
package probe
