package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/paranoidi/tidyflix/internal/dedup"
	"github.com/paranoidi/tidyflix/internal/probe"
	"github.com/paranoidi/tidyflix/internal/scanner"
	"github.com/paranoidi/tidyflix/internal/scoring"
)

func testReport(t *testing.T) dedup.GroupReport {
	t.Helper()
	return dedup.GroupReport{
		Group: dedup.MovieGroup{Title: "Some Movie", Year: 2021},
		Members: []dedup.RankedMember{
			{
				Rank: 1,
				Candidate: scanner.DirectoryCandidate{
					RawName:          "Some.Movie.2021.2160p.HDR",
					TotalSizeBytes:   8 << 30,
					ExternalSubLangs: []string{"SWE"},
					Descriptors: []probe.Descriptor{{
						HeightPx:      2160,
						Codec:         probe.CodecH265,
						HDR:           true,
						SubtitleLangs: []string{"ENG", "FIN"},
					}},
				},
				Score: scoring.Score{Total: 452},
			},
			{
				Rank: 2,
				Candidate: scanner.DirectoryCandidate{
					RawName:        "Some Movie (2021)",
					TotalSizeBytes: 700 << 20,
				},
				Score: scoring.Score{Unscoreable: true},
			},
		},
	}
}

func TestRenderGroupShowsRanksAndTags(t *testing.T) {
	rendered := renderGroup(testReport(t), nil)

	for _, want := range []string{"Some Movie (2021)", "2160p", "H265", "HDR", "452", "SWE,ENG,FIN", "8.0 GiB"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered group missing %q:\n%s", want, rendered)
		}
	}
	if !strings.Contains(rendered, "-") {
		t.Error("unscoreable member should render a dash score")
	}
}

func TestRenderGroupFiltersLanguages(t *testing.T) {
	rendered := renderGroup(testReport(t), []string{"fin"})

	if strings.Contains(rendered, "ENG") {
		t.Errorf("language filter leaked ENG:\n%s", rendered)
	}
	if !strings.Contains(rendered, "FIN") {
		t.Errorf("language filter dropped FIN:\n%s", rendered)
	}
}

func TestPromptGroupChoice(t *testing.T) {
	cases := []struct {
		input string
		want  groupChoice
	}{
		{"2\n", groupChoice{keep: 2}},
		{"\n", groupChoice{keep: 1}},
		{"s\n", groupChoice{action: groupSkip}},
		{"skip\n", groupChoice{action: groupSkip}},
		{"d\n", groupChoice{action: groupDone}},
		{"a\n", groupChoice{action: groupDeleteAll}},
		{"q\n", groupChoice{action: groupQuit}},
		{"", groupChoice{action: groupSkip}},
		{"9\n0\nbogus\n", groupChoice{action: groupSkip}},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		got := promptGroupChoice(bufio.NewReader(strings.NewReader(tc.input)), &out, "Some Movie (2021)", 3)
		if got != tc.want {
			t.Errorf("promptGroupChoice(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestPromptsShareBufferedInput(t *testing.T) {
	// Piped input like "1\ny\n" must survive from the group prompt to the
	// final confirmation; a second reader over the same source would find
	// the buffered 'y' already consumed.
	reader := bufio.NewReader(strings.NewReader("1\ny\n"))
	var out bytes.Buffer

	choice := promptGroupChoice(reader, &out, "Some Movie (2021)", 2)
	if choice != (groupChoice{keep: 1}) {
		t.Fatalf("group choice = %+v, want keep 1", choice)
	}
	if !confirm(reader, &out, "Apply these deletions?", false) {
		t.Fatal("piped 'y' answer lost between prompts")
	}
}

func TestGroupLabelWithoutYear(t *testing.T) {
	label := groupLabel(dedup.MovieGroup{Title: "Undated"})
	if label != "Undated" {
		t.Errorf("label = %q", label)
	}
}
