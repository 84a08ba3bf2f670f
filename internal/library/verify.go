package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paranoidi/tidyflix/internal/fileutil"
	"github.com/paranoidi/tidyflix/internal/plan"
	"github.com/paranoidi/tidyflix/internal/services"
)

// Offender is a subdirectory with no media content. Protected offenders
// contain archive files and are reported but never planned for deletion.
type Offender struct {
	Path      string
	Name      string
	Protected bool
}

// VerifyResult lists media-less directories and, when deletion was
// requested, the plan that removes the unprotected ones.
type VerifyResult struct {
	Checked   int
	Offenders []Offender
	Plan      plan.Plan
}

// Verify checks that every immediate subdirectory of root contains at
// least one media file anywhere in its tree. Disc images and Blu-ray
// stream files count as media here even when scoring ignores them. With
// deleteOffenders, unprotected offenders are planned for removal.
func (l *Library) Verify(root string, deleteOffenders bool) (*VerifyResult, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrExecution, "verify", "read target directory", err)
	}

	result := &VerifyResult{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		result.Checked++
		path := filepath.Join(root, entry.Name())
		if fileutil.ContainsFile(path, l.verifyMediaName) {
			continue
		}
		offender := Offender{
			Path:      path,
			Name:      entry.Name(),
			Protected: fileutil.ContainsFile(path, l.cfg.HasArchiveExtension),
		}
		result.Offenders = append(result.Offenders, offender)
		if deleteOffenders && !offender.Protected {
			result.Plan.AddDelete(path, "no media content")
		}
	}
	sort.Slice(result.Offenders, func(i, j int) bool {
		return result.Offenders[i].Path < result.Offenders[j].Path
	})
	return result, nil
}

// verifyMediaName is the media test for verification: the configured
// extensions plus disc formats.
func (l *Library) verifyMediaName(name string) bool {
	if l.cfg.HasMediaExtension(name) {
		return true
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".iso", ".bdmv", ".m2ts":
		return true
	}
	return false
}
