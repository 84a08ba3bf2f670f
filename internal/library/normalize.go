package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paranoidi/tidyflix/internal/conflict"
	"github.com/paranoidi/tidyflix/internal/fileutil"
	"github.com/paranoidi/tidyflix/internal/logging"
	"github.com/paranoidi/tidyflix/internal/namerules"
	"github.com/paranoidi/tidyflix/internal/plan"
	"github.com/paranoidi/tidyflix/internal/scanner"
	"github.com/paranoidi/tidyflix/internal/services"
	"github.com/paranoidi/tidyflix/internal/textutil"
)

// RenameOutcome describes what normalization wants to do with one
// directory. Conflict is set when the target name is already taken and a
// survivor had to be adjudicated. Err is set when the rename was refused.
type RenameOutcome struct {
	Source     scanner.DirectoryCandidate
	Normalized namerules.Normalized
	NewName    string
	Conflict   *conflict.Decision
	Err        error
}

// NormalizeResult pairs the per-directory outcomes with the mutation plan
// they imply.
type NormalizeResult struct {
	Outcomes []RenameOutcome
	Plan     plan.Plan
}

// Normalize inspects every immediate subdirectory of root and plans the
// renames that bring each name to canonical form. Name collisions are
// resolved through the conflict policy: the loser is planned for deletion
// and, when the source survives, the rename follows. Case-only renames on
// a case-insensitive filesystem are refused rather than risk clobbering.
// explain populates the rule trail on each outcome.
func (l *Library) Normalize(root string, explain bool) (*NormalizeResult, error) {
	candidates, err := l.listCandidates(root)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]scanner.DirectoryCandidate, len(candidates))
	for _, candidate := range candidates {
		byName[candidate.RawName] = candidate
	}
	caseInsensitive := fileutil.IsCaseInsensitive(root)

	result := &NormalizeResult{}
	// claimed tracks names already taken by earlier planned renames so two
	// sources never race for the same target within one run.
	claimed := make(map[string]bool)

	for _, candidate := range candidates {
		var normalized namerules.Normalized
		if explain {
			normalized = l.engine.Explain(candidate.RawName)
		} else {
			normalized = l.engine.Normalize(candidate.RawName)
		}
		newName := textutil.SanitizeFileName(normalized.Canonical)
		if newName == "" || newName == candidate.RawName {
			continue
		}
		outcome := RenameOutcome{Source: candidate, Normalized: normalized, NewName: newName}

		if strings.EqualFold(newName, candidate.RawName) && caseInsensitive {
			outcome.Err = services.Wrap(services.ErrValidation, "normalize",
				"case-only rename refused on case-insensitive filesystem", nil)
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		target := filepath.Join(root, newName)
		destination, exists := byName[newName]
		if !exists {
			if _, statErr := os.Lstat(target); statErr == nil {
				destination = scanner.DirectoryCandidate{
					Path:           target,
					RawName:        newName,
					TotalSizeBytes: fileutil.DirectorySize(target),
					HasMedia:       fileutil.ContainsFile(target, l.cfg.HasMediaExtension),
				}
				exists = true
			}
		}

		switch {
		case claimed[newName]:
			outcome.Err = services.Wrap(services.ErrValidation, "normalize",
				"target name already claimed by another rename", nil)
		case exists:
			decision := conflict.Resolve(candidate, destination)
			outcome.Conflict = &decision
			result.Plan.AddDelete(decision.Removed.Path, "conflict loser, "+decision.Reason.String())
			if decision.Survivor.Path == candidate.Path {
				result.Plan.AddRename(candidate.Path, target, "normalize")
				claimed[newName] = true
			}
			l.logger.Info("name collision resolved",
				logging.String("survivor", decision.Survivor.Path),
				logging.String("removed", decision.Removed.Path),
				logging.String("reason", decision.Reason.String()))
		default:
			result.Plan.AddRename(candidate.Path, target, "normalize")
			claimed[newName] = true
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	return result, nil
}

func (l *Library) listCandidates(root string) ([]scanner.DirectoryCandidate, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrExecution, "normalize", "read target directory", err)
	}
	candidates := make([]scanner.DirectoryCandidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		candidates = append(candidates, scanner.DirectoryCandidate{
			Path:           path,
			RawName:        entry.Name(),
			TotalSizeBytes: fileutil.DirectorySize(path),
			HasMedia:       fileutil.ContainsFile(path, l.cfg.HasMediaExtension),
		})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Path < candidates[j].Path })
	return candidates, nil
}
