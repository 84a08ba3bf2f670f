package library

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/paranoidi/tidyflix/internal/plan"
	"github.com/paranoidi/tidyflix/internal/services"
)

// OrganizedFile is one loose media file and the directory it moves into.
type OrganizedFile struct {
	Path    string
	DirName string
	Skipped bool
}

// OrganizeResult lists the planned moves. Skipped entries had an existing
// destination directory and are left alone.
type OrganizeResult struct {
	Files []OrganizedFile
	Plan  plan.Plan
}

// Organize finds media files sitting directly in root and plans a move of
// each into a directory named after the file, with separators restored to
// spaces. Existing destinations are never merged into.
func (l *Library) Organize(root string) (*OrganizeResult, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, services.Wrap(services.ErrExecution, "organize", "read target directory", err)
	}

	result := &OrganizeResult{}
	for _, entry := range entries {
		if entry.IsDir() || !l.cfg.HasMediaExtension(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		dirName := organizeDirName(entry.Name())
		file := OrganizedFile{Path: path, DirName: dirName}

		dirPath := filepath.Join(root, dirName)
		if _, statErr := os.Lstat(dirPath); statErr == nil {
			file.Skipped = true
			result.Files = append(result.Files, file)
			continue
		}
		result.Plan.AddRename(path, filepath.Join(dirPath, entry.Name()), "organize")
		result.Files = append(result.Files, file)
	}
	return result, nil
}

// organizeDirName derives the directory name for a loose file: extension
// dropped, dots and underscores turned back into spaces.
func organizeDirName(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	base = strings.NewReplacer(".", " ", "_", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}
