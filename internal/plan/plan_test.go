package plan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paranoidi/tidyflix/internal/services"
)

func TestPlanAssignsUniqueIDs(t *testing.T) {
	var p Plan
	first := p.AddRename("/lib/a", "/lib/b", "normalize")
	second := p.AddDelete("/lib/c", "duplicate")

	if first == "" || second == "" || first == second {
		t.Fatalf("action IDs not unique: %q, %q", first, second)
	}
	if len(p.Actions) != 2 {
		t.Fatalf("plan has %d actions, want 2", len(p.Actions))
	}
}

func TestApplyRenameAndDelete(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "Old Name")
	dst := filepath.Join(root, "New Name")
	victim := filepath.Join(root, "victim")
	for _, dir := range []string{src, victim} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	var p Plan
	p.AddRename(src, dst, "")
	p.AddDelete(victim, "")

	exec := NewExecutor(root, false, nil)
	results, err := exec.Apply(&p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("rename target missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Errorf("rename source still present")
	}
	if _, err := os.Stat(victim); !os.IsNotExist(err) {
		t.Errorf("deleted directory still present")
	}
	if _, err := os.Stat(filepath.Join(root, lockFileName)); !os.IsNotExist(err) {
		t.Errorf("lock file left behind")
	}
}

func TestApplyDryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "keep")
	if err := os.MkdirAll(src, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var p Plan
	p.AddDelete(src, "")

	exec := NewExecutor(root, true, nil)
	results, err := exec.Apply(&p)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if results[0].Err != nil {
		t.Fatalf("dry-run action reported error: %v", results[0].Err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("dry run deleted the directory: %v", err)
	}
}

func TestApplyRefusesExistingRenameTarget(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	for _, dir := range []string{src, dst} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	var p Plan
	p.AddRename(src, dst, "")

	exec := NewExecutor(root, false, nil)
	results, err := exec.Apply(&p)
	if err == nil {
		t.Fatal("expected failure for existing target")
	}
	if !errors.Is(results[0].Err, services.ErrExecution) {
		t.Fatalf("result error = %v, want ErrExecution", results[0].Err)
	}
	if _, statErr := os.Stat(src); statErr != nil {
		t.Fatalf("source vanished despite refused rename: %v", statErr)
	}
}

func TestApplyContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "good")
	if err := os.MkdirAll(good, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var p Plan
	p.AddRename(filepath.Join(root, "missing"), filepath.Join(root, "elsewhere"), "")
	p.AddDelete(good, "")

	exec := NewExecutor(root, false, nil)
	results, err := exec.Apply(&p)
	if err == nil {
		t.Fatal("expected aggregate error")
	}
	if results[0].Err == nil {
		t.Error("first action should have failed")
	}
	if results[1].Err != nil {
		t.Errorf("second action should have run: %v", results[1].Err)
	}
	if _, statErr := os.Stat(good); !os.IsNotExist(statErr) {
		t.Error("second action did not take effect")
	}
}

func TestApplyEmptyPlanIsNoop(t *testing.T) {
	exec := NewExecutor(t.TempDir(), false, nil)
	results, err := exec.Apply(&Plan{})
	if err != nil || results != nil {
		t.Fatalf("empty plan: results=%v err=%v", results, err)
	}
}
