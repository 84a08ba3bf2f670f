package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/paranoidi/tidyflix/internal/dedup"
	"github.com/paranoidi/tidyflix/internal/namerules"
	"github.com/paranoidi/tidyflix/internal/plan"
	"github.com/paranoidi/tidyflix/internal/probe"
	"github.com/paranoidi/tidyflix/internal/scanner"
	"github.com/paranoidi/tidyflix/internal/scoring"
)

type duplicatesOptions struct {
	languages []string
	yes       bool
	dryRun    bool
}

func runDuplicates(cmd *cobra.Command, ctx *commandContext, dir string, opts *duplicatesOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.ensureLogger()
	out := cmd.OutOrStdout()

	prober := probe.NewFFProbe(cfg.Probe.Binary,
		time.Duration(cfg.Probe.TimeoutSeconds)*time.Second, cfg.HasMediaExtension)
	if probeErr := prober.Available(); probeErr != nil {
		fmt.Fprintf(out, "warning: %v; entries will rank by size only\n", probeErr)
	}

	scan := scanner.New(prober, cfg.HasMediaExtension, cfg.HasSubtitleExtension, cfg.Probe.Workers, logger)
	candidates, err := scan.List(dir)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(out, "No subdirectories found.")
		return nil
	}

	var bar *progressbar.ProgressBar
	onDone := func() {}
	if ctx.colorEnabled() {
		bar = progressbar.Default(int64(len(candidates)), "Probing")
		onDone = func() { _ = bar.Add(1) }
	}
	probed := scan.Probe(cmd.Context(), candidates, onDone)
	if bar != nil {
		_ = bar.Finish()
	}

	engine := namerules.New(namerules.Options{
		ExtraNoiseTokens: cfg.Normalize.ExtraNoiseTokens,
		MinYear:          cfg.Normalize.MinYear,
	})
	session := dedup.NewSession(dedup.NewGroupingEngine(engine), scoring.New(cfg.Scoring))
	reports := session.BuildReport(probed)
	if len(reports) == 0 {
		fmt.Fprintln(out, "No duplicates found.")
		return nil
	}

	var mutation plan.Plan
	reader := bufio.NewReader(cmd.InOrStdin())
groups:
	for _, report := range reports {
		fmt.Fprintln(out, renderGroup(report, opts.languages))

		choice := groupChoice{keep: 1}
		if !opts.yes {
			choice = promptGroupChoice(reader, out, groupLabel(report.Group), len(report.Members))
		}
		switch choice.action {
		case groupSkip:
			continue
		case groupDone:
			break groups
		case groupQuit:
			fmt.Fprintln(out, "Aborted.")
			return nil
		case groupDeleteAll:
			for _, member := range report.Members {
				mutation.AddDelete(member.Candidate.Path, "duplicate group discarded")
			}
		default:
			for i, member := range report.Members {
				if i+1 == choice.keep {
					continue
				}
				mutation.AddDelete(member.Candidate.Path, "duplicate of "+report.Members[choice.keep-1].Candidate.RawName)
			}
		}
	}

	if mutation.Empty() {
		fmt.Fprintln(out, "Nothing to delete.")
		return nil
	}
	fmt.Fprintf(out, "\nPlanned deletions (%d):\n", len(mutation.Actions))
	for _, action := range mutation.Actions {
		fmt.Fprintf(out, "  %s\n", action.Describe())
	}
	if !opts.yes && !opts.dryRun {
		if !confirm(reader, out, "Apply these deletions?", false) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	executor := plan.NewExecutor(dir, opts.dryRun, logger)
	results, err := executor.Apply(&mutation)
	if err != nil {
		return err
	}
	applied := 0
	for _, result := range results {
		if result.Err == nil {
			applied++
		}
	}
	if opts.dryRun {
		fmt.Fprintf(out, "Dry run: %d deletions planned.\n", applied)
	} else {
		fmt.Fprintf(out, "Deleted %d of %d.\n", applied, len(results))
	}
	return nil
}

// groupAction is what the user chose to do with one duplicate group.
type groupAction int

const (
	groupKeep groupAction = iota
	groupSkip
	groupDone
	groupDeleteAll
	groupQuit
)

// groupChoice is the parsed answer to a per-group prompt. keep is the
// 1-based member to retain and only meaningful for groupKeep.
type groupChoice struct {
	keep   int
	action groupAction
}

// promptGroupChoice asks which member of a group to keep. Besides a plain
// number, s skips the group, d stops prompting and leaves the remaining
// groups untouched, a discards every member, and q aborts the run.
// Unparsable input re-prompts up to three times and then skips the group.
func promptGroupChoice(in *bufio.Reader, out io.Writer, label string, members int) groupChoice {
	for attempt := 0; attempt < 3; attempt++ {
		fmt.Fprintf(out, "Keep which entry of %q? (1-%d, s=skip, d=done, a=delete all, q=quit) [1]: ", label, members)
		line, err := in.ReadString('\n')
		switch answer := strings.ToLower(strings.TrimSpace(line)); answer {
		case "":
			if err != nil {
				// EOF with no pending input: leave the group alone rather
				// than invent a decision.
				return groupChoice{action: groupSkip}
			}
			return groupChoice{keep: 1}
		case "s", "skip":
			return groupChoice{action: groupSkip}
		case "d", "done":
			return groupChoice{action: groupDone}
		case "a", "all":
			return groupChoice{action: groupDeleteAll}
		case "q", "quit":
			return groupChoice{action: groupQuit}
		default:
			if choice, convErr := strconv.Atoi(answer); convErr == nil && choice >= 1 && choice <= members {
				return groupChoice{keep: choice}
			}
			fmt.Fprintf(out, "enter 1-%d, s, d, a, or q\n", members)
		}
		if err != nil {
			break
		}
	}
	return groupChoice{action: groupSkip}
}

func renderGroup(report dedup.GroupReport, languages []string) string {
	rows := make([][]string, 0, len(report.Members))
	for _, member := range report.Members {
		rows = append(rows, []string{
			fmt.Sprintf("%d", member.Rank),
			member.Candidate.RawName,
			formatSize(member.Candidate.TotalSizeBytes),
			scoreCell(member.Score),
			tagCell(member.Candidate.Descriptors),
			languageCell(member.Candidate, languages),
		})
	}
	return tableSpec{
		title:        groupLabel(report.Group),
		headers:      []string{"#", "Directory", "Size", "Score", "Tags", "Subs"},
		rows:         rows,
		rightAligned: []int{1, 3, 4},
	}.render()
}

func groupLabel(group dedup.MovieGroup) string {
	if group.Year > 0 {
		return fmt.Sprintf("%s (%d)", group.Title, group.Year)
	}
	return group.Title
}

func scoreCell(score scoring.Score) string {
	if score.Unscoreable {
		return "-"
	}
	return fmt.Sprintf("%d", score.Total)
}

// tagCell summarizes the best descriptor's visible attributes.
func tagCell(descriptors []probe.Descriptor) string {
	if len(descriptors) == 0 {
		return ""
	}
	best := descriptors[0]
	for _, desc := range descriptors[1:] {
		if desc.HeightPx > best.HeightPx {
			best = desc
		}
	}
	tags := make([]string, 0, 4)
	if best.HeightPx > 0 {
		tags = append(tags, fmt.Sprintf("%dp", best.HeightPx))
	}
	if best.Codec != probe.CodecUnknown {
		tags = append(tags, best.Codec.String())
	}
	if best.HDR {
		tags = append(tags, "HDR")
	}
	if best.Audio == probe.AudioLossless {
		tags = append(tags, "lossless")
	}
	return strings.Join(tags, " ")
}

// languageCell lists subtitle languages from external files and embedded
// streams, optionally filtered to the requested set. Display only; never
// affects ranking.
func languageCell(candidate scanner.DirectoryCandidate, filter []string) string {
	wanted := make(map[string]bool, len(filter))
	for _, lang := range filter {
		wanted[strings.ToUpper(strings.TrimSpace(lang))] = true
	}
	all := append([]string{}, candidate.ExternalSubLangs...)
	for _, desc := range candidate.Descriptors {
		all = append(all, desc.SubtitleLangs...)
	}
	seen := make(map[string]bool)
	langs := make([]string, 0, 4)
	for _, lang := range all {
		if seen[lang] {
			continue
		}
		if len(wanted) > 0 && !wanted[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	return strings.Join(langs, ",")
}
