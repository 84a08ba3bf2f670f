package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDirectorySizeSumsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mkv"), 100)
	writeFile(t, filepath.Join(dir, "sub", "b.srt"), 50)

	if got := DirectorySize(dir); got != 150 {
		t.Fatalf("expected 150 bytes, got %d", got)
	}
}

func TestDirectoryStats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mkv"), 10)
	writeFile(t, filepath.Join(dir, "extras", "b.txt"), 5)

	stats := DirectoryStats(dir)
	if stats.FileCount != 2 {
		t.Errorf("expected 2 files, got %d", stats.FileCount)
	}
	if stats.DirCount != 1 {
		t.Errorf("expected 1 subdirectory, got %d", stats.DirCount)
	}
	if stats.SizeBytes != 15 {
		t.Errorf("expected 15 bytes, got %d", stats.SizeBytes)
	}
}

func TestContainsFileStopsAtFirstMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "deep", "movie.mkv"), 1)

	isMKV := func(name string) bool { return strings.HasSuffix(name, ".mkv") }
	if !ContainsFile(dir, isMKV) {
		t.Fatal("expected nested media file to be found")
	}
	if ContainsFile(dir, func(name string) bool { return strings.HasSuffix(name, ".iso") }) {
		t.Fatal("did not expect an iso match")
	}
}

func TestDirectorySizeMissingDirIsZero(t *testing.T) {
	if got := DirectorySize(filepath.Join(t.TempDir(), "missing")); got != 0 {
		t.Fatalf("expected 0 for missing directory, got %d", got)
	}
}
