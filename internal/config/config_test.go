package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, _, loaded, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded {
		t.Fatal("expected no file to be loaded")
	}
	if cfg.Probe.Workers != defaultProbeWorkers {
		t.Fatalf("expected default workers, got %d", cfg.Probe.Workers)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[probe]\nworkers = 9\n\n[normalize]\nextra_noise_tokens = [\"JUNK\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded || resolved != path {
		t.Fatalf("expected %s to load, got %s loaded=%v", path, resolved, loaded)
	}
	if cfg.Probe.Workers != 9 {
		t.Fatalf("override lost: %d", cfg.Probe.Workers)
	}
	if cfg.Probe.Binary != defaultProbeBinary {
		t.Fatalf("default binary lost: %s", cfg.Probe.Binary)
	}
	if cfg.Scoring.Resolution2160 != defaultResolution2160 {
		t.Fatalf("default scoring lost: %d", cfg.Scoring.Resolution2160)
	}
	if len(cfg.Normalize.ExtraNoiseTokens) != 1 || cfg.Normalize.ExtraNoiseTokens[0] != "JUNK" {
		t.Fatalf("noise tokens lost: %v", cfg.Normalize.ExtraNoiseTokens)
	}
}

func TestValidateRejectsDominanceViolation(t *testing.T) {
	cfg := Default()
	cfg.Scoring.CodecAV1 = 500
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected dominance violation to fail validation")
	}
}

func TestExtensionHelpers(t *testing.T) {
	cfg := Default()
	if !cfg.HasMediaExtension("Movie.MKV") {
		t.Error("expected .MKV to match media extensions")
	}
	if cfg.HasMediaExtension("notes.txt") {
		t.Error("did not expect .txt to match media extensions")
	}
	if !cfg.HasUnwantedExtension("readme.TXT") {
		t.Error("expected .TXT to match unwanted extensions")
	}
	if !cfg.HasArchiveExtension("part01.rar") {
		t.Error("expected .rar to match archive extensions")
	}
	if !cfg.HasSubtitleExtension("movie.en.srt") {
		t.Error("expected .srt to match subtitle extensions")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected second write to fail")
	}
}
