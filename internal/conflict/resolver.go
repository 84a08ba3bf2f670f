// Package conflict decides which of two same-named directories survives.
// The resolver only reports decisions; applying them is the execution
// layer's job.
package conflict

import (
	"github.com/paranoidi/tidyflix/internal/scanner"
)

// Reason explains why a directory was chosen for removal.
type Reason int

const (
	// MediaPresence means exactly one side had media files.
	MediaPresence Reason = iota
	// SizeComparison means the smaller side lost.
	SizeComparison
	// Tie means both sides were byte-identical in size; the source loses
	// by policy.
	Tie
)

func (r Reason) String() string {
	switch r {
	case MediaPresence:
		return "media presence"
	case SizeComparison:
		return "size comparison"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Decision names the survivor and removal target of a name collision.
type Decision struct {
	Survivor scanner.DirectoryCandidate
	Removed  scanner.DirectoryCandidate
	Reason   Reason
}

// Resolve adjudicates a collision between a source directory (the one
// being renamed) and an existing destination. Policy, in order: the side
// with media survives when only one has it; otherwise the larger side
// survives; on an exact size tie the destination survives, since it is
// already in place.
func Resolve(source, destination scanner.DirectoryCandidate) Decision {
	if source.HasMedia != destination.HasMedia {
		if source.HasMedia {
			return Decision{Survivor: source, Removed: destination, Reason: MediaPresence}
		}
		return Decision{Survivor: destination, Removed: source, Reason: MediaPresence}
	}

	switch {
	case source.TotalSizeBytes > destination.TotalSizeBytes:
		return Decision{Survivor: source, Removed: destination, Reason: SizeComparison}
	case source.TotalSizeBytes < destination.TotalSizeBytes:
		return Decision{Survivor: destination, Removed: source, Reason: SizeComparison}
	default:
		return Decision{Survivor: destination, Removed: source, Reason: Tie}
	}
}
