package scanner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/paranoidi/tidyflix/internal/probe"
)

type fakeProber struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]probe.Descriptor
	fail    map[string]bool
}

func (f *fakeProber) Probe(_ context.Context, dir string) ([]probe.Descriptor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dir)
	if f.fail[filepath.Base(dir)] {
		return nil, errors.New("probe failure")
	}
	return f.results[filepath.Base(dir)], nil
}

func isMediaName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".mkv")
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestListBuildsSortedCandidates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Zebra Movie (2020)", "movie.mkv"), 100)
	writeFile(t, filepath.Join(root, "Alpha Movie (2019)", "notes.txt"), 10)
	writeFile(t, filepath.Join(root, "loose-file.mkv"), 5)

	s := New(&fakeProber{}, isMediaName, nil, 2, nil)
	candidates, err := s.List(root)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2 (loose files excluded)", len(candidates))
	}
	if candidates[0].RawName != "Alpha Movie (2019)" || candidates[1].RawName != "Zebra Movie (2020)" {
		t.Fatalf("candidates not sorted by path: %q, %q", candidates[0].RawName, candidates[1].RawName)
	}
	if candidates[0].HasMedia {
		t.Error("text-only directory reported HasMedia")
	}
	if !candidates[1].HasMedia {
		t.Error("directory with .mkv did not report HasMedia")
	}
	if candidates[1].TotalSizeBytes != 100 {
		t.Errorf("TotalSizeBytes = %d, want 100", candidates[1].TotalSizeBytes)
	}
}

func TestListCollectsExternalSubtitleLanguages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Movie (2020)", "movie.mkv"), 10)
	writeFile(t, filepath.Join(root, "Movie (2020)", "movie.en.srt"), 5)
	writeFile(t, filepath.Join(root, "Movie (2020)", "movie.fi.srt"), 5)
	writeFile(t, filepath.Join(root, "Movie (2020)", "movie.srt"), 5)

	isSubtitle := func(name string) bool {
		return strings.HasSuffix(strings.ToLower(name), ".srt")
	}
	s := New(&fakeProber{}, isMediaName, isSubtitle, 2, nil)
	candidates, err := s.List(root)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := strings.Join(candidates[0].ExternalSubLangs, ",")
	if got != "EN,FI,UNK" {
		t.Fatalf("ExternalSubLangs = %q, want EN,FI,UNK", got)
	}
}

func TestSubtitleLang(t *testing.T) {
	cases := map[string]string{
		"movie.en.srt":        "EN",
		"movie.eng.srt":       "ENG",
		"movie.srt":           "UNK",
		"Some.Movie.2020.srt": "UNK",
		"movie.forced.en.srt": "EN",
		"movie.x.srt":         "UNK",
	}
	for name, want := range cases {
		if got := subtitleLang(name); got != want {
			t.Errorf("subtitleLang(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestListMissingRootFails(t *testing.T) {
	s := New(&fakeProber{}, isMediaName, nil, 2, nil)
	if _, err := s.List(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestProbeFillsDescriptorsInCandidateOrder(t *testing.T) {
	prober := &fakeProber{
		results: map[string][]probe.Descriptor{
			"a": {{HeightPx: 1080}},
			"b": {{HeightPx: 2160}},
			"c": {{HeightPx: 720}},
		},
	}
	candidates := []DirectoryCandidate{
		{Path: "/lib/a", RawName: "a"},
		{Path: "/lib/b", RawName: "b"},
		{Path: "/lib/c", RawName: "c"},
	}

	var done int
	s := New(prober, isMediaName, nil, 3, nil)
	probed := s.Probe(context.Background(), candidates, func() { done++ })

	if probed[0].Descriptors[0].HeightPx != 1080 ||
		probed[1].Descriptors[0].HeightPx != 2160 ||
		probed[2].Descriptors[0].HeightPx != 720 {
		t.Fatalf("descriptors not aligned with candidate order: %+v", probed)
	}
	if done != 3 {
		t.Errorf("progress callback ran %d times, want 3", done)
	}
}

func TestProbeFailureLeavesCandidateUnscoreable(t *testing.T) {
	prober := &fakeProber{
		results: map[string][]probe.Descriptor{"good": {{HeightPx: 1080}}},
		fail:    map[string]bool{"bad": true},
	}
	candidates := []DirectoryCandidate{
		{Path: "/lib/bad", RawName: "bad"},
		{Path: "/lib/good", RawName: "good"},
	}

	s := New(prober, isMediaName, nil, 2, nil)
	probed := s.Probe(context.Background(), candidates, nil)

	if probed[0].Descriptors != nil {
		t.Error("failed probe should leave Descriptors nil")
	}
	if len(probed[1].Descriptors) != 1 {
		t.Error("successful probe lost its descriptors")
	}
}

func TestProbeDoesNotMutateInput(t *testing.T) {
	prober := &fakeProber{results: map[string][]probe.Descriptor{"a": {{HeightPx: 480}}}}
	candidates := []DirectoryCandidate{{Path: "/lib/a", RawName: "a"}}

	s := New(prober, isMediaName, nil, 1, nil)
	s.Probe(context.Background(), candidates, nil)

	if candidates[0].Descriptors != nil {
		t.Fatal("Probe mutated its input slice")
	}
}

func TestProbeStopsDispatchOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prober := &fakeProber{}
	candidates := []DirectoryCandidate{
		{Path: "/lib/a", RawName: "a"},
		{Path: "/lib/b", RawName: "b"},
	}

	s := New(prober, isMediaName, nil, 1, nil)
	s.Probe(ctx, candidates, nil)

	// With a cancelled context, dispatch may stop before any job is
	// handed out; it must never hang.
	if len(prober.calls) > len(candidates) {
		t.Fatalf("probe called %d times for %d candidates", len(prober.calls), len(candidates))
	}
}
