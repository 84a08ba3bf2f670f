// Package dedup partitions directory candidates into duplicate groups and
// ranks the members of each group by media quality.
package dedup

import (
	"sort"
	"strings"

	"github.com/paranoidi/tidyflix/internal/namerules"
	"github.com/paranoidi/tidyflix/internal/scanner"
)

// MovieGroup is a set of candidates sharing one canonical title+year key.
type MovieGroup struct {
	Key     string
	Title   string
	Year    int
	Members []scanner.DirectoryCandidate
}

// GroupingEngine partitions candidates by normalized name.
type GroupingEngine struct {
	normalizer *namerules.Engine
}

// NewGroupingEngine builds an engine over the given normalizer.
func NewGroupingEngine(normalizer *namerules.Engine) *GroupingEngine {
	return &GroupingEngine{normalizer: normalizer}
}

// Group partitions candidates into movie groups. Every candidate lands in
// exactly one group. A name that normalizes to an empty title gets a
// singleton group keyed on its own path, so unrelated junk-named
// directories never merge under an empty key. Output is ordered by
// descending member count, ties broken by key string.
func (g *GroupingEngine) Group(candidates []scanner.DirectoryCandidate) []MovieGroup {
	byKey := make(map[string]*MovieGroup)
	order := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		normalized := g.normalizer.Normalize(candidate.RawName)
		key := normalized.Key
		if strings.TrimSpace(normalized.Title) == "" {
			key = "\x00unmatched|" + candidate.Path
		}
		group, ok := byKey[key]
		if !ok {
			group = &MovieGroup{Key: key, Title: normalized.Title, Year: normalized.Year}
			byKey[key] = group
			order = append(order, key)
		}
		group.Members = append(group.Members, candidate)
	}

	groups := make([]MovieGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Members) != len(groups[j].Members) {
			return len(groups[i].Members) > len(groups[j].Members)
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
