// Package namerules converts messy release-style directory names into a
// canonical "Title (Year)" form.
//
// Transformation is an ordered, data-driven table of stripping rules run
// to a fixed point, followed by year extraction and connector-aware title
// casing. The engine is pure and idempotent: canonical names pass through
// unchanged, and names with no recognizable structure degrade to trimmed,
// capitalized text without a year.
package namerules
