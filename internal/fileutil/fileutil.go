// Package fileutil provides the filesystem inspection helpers the
// planning layer relies on: directory sizing, recursive media detection,
// and the case-insensitivity probe that guards case-only renames.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Stats summarizes a directory tree.
type Stats struct {
	SizeBytes int64
	FileCount int
	DirCount  int
}

// DirectorySize returns the total size of all regular files under path.
// Inaccessible entries are skipped; symlinks are not followed.
func DirectorySize(path string) int64 {
	var total int64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			total += DirectorySize(child)
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		total += info.Size()
	}
	return total
}

// DirectoryStats walks the tree under path and returns aggregate counts.
func DirectoryStats(path string) Stats {
	var stats Stats
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if p == path {
			return nil
		}
		if d.IsDir() {
			stats.DirCount++
			return nil
		}
		stats.FileCount++
		if info, err := d.Info(); err == nil && info.Mode().IsRegular() {
			stats.SizeBytes += info.Size()
		}
		return nil
	})
	return stats
}

// ContainsFile reports whether any file under path satisfies match.
// The walk stops at the first hit.
func ContainsFile(path string, match func(name string) bool) bool {
	found := false
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if found {
			return fs.SkipAll
		}
		if !d.IsDir() && match(d.Name()) {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found
}

// IsCaseInsensitive probes whether the filesystem holding dir treats names
// case-insensitively (Samba/CIFS mounts commonly do). Probe failures report
// false: the filesystem is assumed case-sensitive when it cannot be tested.
func IsCaseInsensitive(dir string) bool {
	probe, err := os.CreateTemp(dir, ".tidyflix_case_probe_*")
	if err != nil {
		return false
	}
	lower := probe.Name()
	_ = probe.Close()
	defer os.Remove(lower)

	upper := filepath.Join(filepath.Dir(lower), strings.ToUpper(filepath.Base(lower)))
	if upper == lower {
		return false
	}
	_, err = os.Stat(upper)
	return err == nil
}
