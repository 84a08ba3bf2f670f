package library

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/paranoidi/tidyflix/internal/plan"
	"github.com/paranoidi/tidyflix/internal/services"
)

// CleanedFile is one unwanted file slated for removal.
type CleanedFile struct {
	Path      string
	SizeBytes int64
}

// CleanResult lists the files clean wants gone and the plan that removes
// them.
type CleanResult struct {
	Files          []CleanedFile
	TotalSizeBytes int64
	Plan           plan.Plan
}

// Clean walks root recursively and plans removal of files with unwanted
// extensions. Text files under Blu-ray structures or Java archives are
// kept, since those trees use .txt files as part of their layout.
func (l *Library) Clean(root string) (*CleanResult, error) {
	result := &CleanResult{}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !l.cfg.HasUnwantedExtension(entry.Name()) {
			return nil
		}
		if isTextFile(entry.Name()) && underProtectedTree(path) {
			return nil
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			return nil
		}
		result.Files = append(result.Files, CleanedFile{Path: path, SizeBytes: info.Size()})
		result.TotalSizeBytes += info.Size()
		result.Plan.AddDelete(path, "unwanted file")
		return nil
	})
	if err != nil {
		return nil, services.Wrap(services.ErrExecution, "clean", "walk target directory", err)
	}
	return result, nil
}

func isTextFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".txt")
}

// underProtectedTree reports whether any path component marks a structure
// whose text files are load-bearing.
func underProtectedTree(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		upper := strings.ToUpper(part)
		if upper == "BDMV" || upper == "JAR" {
			return true
		}
	}
	return false
}
