package dedup

import (
	"sort"

	"github.com/paranoidi/tidyflix/internal/scanner"
	"github.com/paranoidi/tidyflix/internal/scoring"
)

// RankedMember pairs a candidate with its quality score. Rank is the
// 1-based position within the group after sorting.
type RankedMember struct {
	Candidate scanner.DirectoryCandidate
	Score     scoring.Score
	Rank      int
}

// GroupReport is one duplicate group with its members in keep-first order.
type GroupReport struct {
	Group   MovieGroup
	Members []RankedMember
}

// Session orchestrates grouping, scoring, and ranking. It holds no UI
// state and performs no I/O; candidates must arrive already probed.
type Session struct {
	grouping *GroupingEngine
	scorer   *scoring.Scorer
}

// NewSession builds a Session over the given engine and scorer.
func NewSession(grouping *GroupingEngine, scorer *scoring.Scorer) *Session {
	return &Session{grouping: grouping, scorer: scorer}
}

// BuildReport groups the candidates and returns one report per duplicate
// group, excluding singletons. Members are ranked best-first: descending
// score total, unscoreable entries last, ties broken by larger total size
// and then by path string so output is fully reproducible.
func (s *Session) BuildReport(candidates []scanner.DirectoryCandidate) []GroupReport {
	reports := make([]GroupReport, 0)
	for _, group := range s.grouping.Group(candidates) {
		if len(group.Members) < 2 {
			continue
		}

		members := make([]RankedMember, 0, len(group.Members))
		for _, candidate := range group.Members {
			members = append(members, RankedMember{
				Candidate: candidate,
				Score:     s.scorer.Score(candidate.Descriptors, candidate.TotalSizeBytes),
			})
		}
		sort.Slice(members, func(i, j int) bool {
			return memberLess(members[i], members[j])
		})
		for i := range members {
			members[i].Rank = i + 1
		}
		reports = append(reports, GroupReport{Group: group, Members: members})
	}
	return reports
}

// memberLess orders a before b when a should be kept over b.
func memberLess(a, b RankedMember) bool {
	if a.Score.Unscoreable != b.Score.Unscoreable {
		return !a.Score.Unscoreable
	}
	if a.Score.Total != b.Score.Total {
		return a.Score.Total > b.Score.Total
	}
	if a.Candidate.TotalSizeBytes != b.Candidate.TotalSizeBytes {
		return a.Candidate.TotalSizeBytes > b.Candidate.TotalSizeBytes
	}
	return a.Candidate.Path < b.Candidate.Path
}
