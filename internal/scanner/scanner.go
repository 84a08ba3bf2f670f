// Package scanner builds directory candidates for duplicate analysis.
// It lists the immediate subdirectories of a target path, records their
// size and file counts, and probes each one's media files through a
// bounded worker pool. Candidates are immutable once built.
package scanner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/paranoidi/tidyflix/internal/fileutil"
	"github.com/paranoidi/tidyflix/internal/logging"
	"github.com/paranoidi/tidyflix/internal/probe"
	"github.com/paranoidi/tidyflix/internal/services"
)

// DirectoryCandidate is one subdirectory under consideration.
// ExternalSubLangs lists languages of standalone subtitle files; embedded
// subtitle streams arrive later through Descriptors.
type DirectoryCandidate struct {
	Path             string
	RawName          string
	TotalSizeBytes   int64
	FileCount        int
	SubdirCount      int
	HasMedia         bool
	ExternalSubLangs []string
	Descriptors      []probe.Descriptor
}

// Scanner lists and probes candidate directories.
type Scanner struct {
	prober     probe.Prober
	isMedia    func(string) bool
	isSubtitle func(string) bool
	workers    int
	logger     *slog.Logger
}

// New builds a Scanner. workers bounds concurrent probe calls; values
// below 1 are treated as 1. isSubtitle may be nil when external subtitle
// detection is not wanted.
func New(prober probe.Prober, isMedia, isSubtitle func(string) bool, workers int, logger *slog.Logger) *Scanner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{prober: prober, isMedia: isMedia, isSubtitle: isSubtitle, workers: workers, logger: logger}
}

// List returns a candidate for every immediate subdirectory of root,
// sorted by path. No probing happens here; Descriptors is left nil.
func (s *Scanner) List(root string) ([]DirectoryCandidate, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrExecution, "scan directory", "read target directory", err)
	}

	candidates := make([]DirectoryCandidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		stats := fileutil.DirectoryStats(path)
		candidates = append(candidates, DirectoryCandidate{
			Path:             path,
			RawName:          entry.Name(),
			TotalSizeBytes:   stats.SizeBytes,
			FileCount:        stats.FileCount,
			SubdirCount:      stats.DirCount,
			HasMedia:         fileutil.ContainsFile(path, s.isMedia),
			ExternalSubLangs: s.subtitleLangs(path),
		})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Path < candidates[j].Path })
	return candidates, nil
}

// Probe fills in media descriptors for each candidate using the bounded
// worker pool. Results land in a pre-sized slice indexed by candidate, so
// output order never depends on probe completion order. Probe failures
// leave the candidate unscoreable rather than failing the scan. onDone,
// if non-nil, is called once per finished candidate for progress display.
func (s *Scanner) Probe(ctx context.Context, candidates []DirectoryCandidate, onDone func()) []DirectoryCandidate {
	probed := make([]DirectoryCandidate, len(candidates))
	copy(probed, candidates)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				descriptors, err := s.prober.Probe(ctx, probed[i].Path)
				if err != nil {
					s.logger.Warn("media probe failed",
						logging.String("directory", probed[i].Path),
						logging.Error(err))
				} else {
					probed[i].Descriptors = descriptors
				}
				if onDone != nil {
					onDone()
				}
			}
		}()
	}

dispatch:
	for i := range probed {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	return probed
}

// subtitleLangs walks a candidate for standalone subtitle files and
// derives each one's language from the filename, e.g. "movie.en.srt"
// yields EN. Files without a language marker report UNK.
func (s *Scanner) subtitleLangs(dir string) []string {
	if s.isSubtitle == nil {
		return nil
	}
	seen := make(map[string]bool)
	var langs []string
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() || !s.isSubtitle(entry.Name()) {
			return nil
		}
		lang := subtitleLang(entry.Name())
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
		return nil
	})
	sort.Strings(langs)
	return langs
}

func subtitleLang(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	marker := strings.TrimPrefix(filepath.Ext(base), ".")
	if len(marker) < 2 || len(marker) > 3 {
		return "UNK"
	}
	for _, r := range marker {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "UNK"
		}
	}
	return strings.ToUpper(marker)
}
