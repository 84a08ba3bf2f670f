package conflict

import (
	"testing"

	"github.com/paranoidi/tidyflix/internal/scanner"
)

func TestResolveMediaPresenceWins(t *testing.T) {
	withMedia := scanner.DirectoryCandidate{Path: "/lib/a", HasMedia: true, TotalSizeBytes: 10}
	empty := scanner.DirectoryCandidate{Path: "/lib/b", HasMedia: false, TotalSizeBytes: 9000}

	decision := Resolve(withMedia, empty)
	if decision.Removed.Path != "/lib/b" || decision.Reason != MediaPresence {
		t.Fatalf("media-bearing source should survive: %+v", decision)
	}

	decision = Resolve(empty, withMedia)
	if decision.Removed.Path != "/lib/b" || decision.Reason != MediaPresence {
		t.Fatalf("media-bearing destination should survive: %+v", decision)
	}
}

func TestResolveSizeComparison(t *testing.T) {
	small := scanner.DirectoryCandidate{Path: "/lib/small", HasMedia: true, TotalSizeBytes: 100}
	large := scanner.DirectoryCandidate{Path: "/lib/large", HasMedia: true, TotalSizeBytes: 200}

	decision := Resolve(small, large)
	if decision.Survivor.Path != "/lib/large" || decision.Reason != SizeComparison {
		t.Fatalf("larger destination should survive: %+v", decision)
	}

	decision = Resolve(large, small)
	if decision.Survivor.Path != "/lib/large" || decision.Reason != SizeComparison {
		t.Fatalf("larger source should survive: %+v", decision)
	}
}

func TestResolveTieRemovesSource(t *testing.T) {
	source := scanner.DirectoryCandidate{Path: "/lib/source", TotalSizeBytes: 500}
	destination := scanner.DirectoryCandidate{Path: "/lib/dest", TotalSizeBytes: 500}

	decision := Resolve(source, destination)
	if decision.Removed.Path != "/lib/source" || decision.Reason != Tie {
		t.Fatalf("exact tie should remove the source: %+v", decision)
	}
}

func TestResolveNeverRemovesMediaForEmpty(t *testing.T) {
	// Even a much larger empty directory loses to a tiny one with media.
	tinyMedia := scanner.DirectoryCandidate{Path: "/lib/tiny", HasMedia: true, TotalSizeBytes: 1}
	hugeEmpty := scanner.DirectoryCandidate{Path: "/lib/huge", HasMedia: false, TotalSizeBytes: 1 << 40}

	decision := Resolve(tinyMedia, hugeEmpty)
	if decision.Survivor.Path != "/lib/tiny" {
		t.Fatalf("directory with media must survive: %+v", decision)
	}
}
