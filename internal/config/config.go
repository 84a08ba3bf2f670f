package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Probe contains configuration for media inspection.
type Probe struct {
	Binary         string `toml:"binary"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Workers        int    `toml:"workers"`
}

// Extensions lists the file extensions each operation cares about. All
// entries are matched case-insensitively and include the leading dot.
type Extensions struct {
	Media    []string `toml:"media"`
	Subtitle []string `toml:"subtitle"`
	Archive  []string `toml:"archive"`
	Unwanted []string `toml:"unwanted"`
}

// Scoring holds the weighted-factor policy used to rank duplicate
// directories. The values are policy, not physics: resolution tiers must
// stay far enough apart that no combination of codec, HDR, audio, and
// efficiency adjustments can bridge the gap between two tiers.
type Scoring struct {
	Resolution2160 int `toml:"resolution_2160"`
	Resolution1440 int `toml:"resolution_1440"`
	Resolution1080 int `toml:"resolution_1080"`
	Resolution720  int `toml:"resolution_720"`
	Resolution480  int `toml:"resolution_480"`

	CodecAV1   int `toml:"codec_av1"`
	CodecH265  int `toml:"codec_h265"`
	CodecH264  int `toml:"codec_h264"`
	CodecOther int `toml:"codec_other"`

	HDRBonus      int `toml:"hdr_bonus"`
	LosslessBonus int `toml:"lossless_bonus"`

	// Size-efficiency adjustment. Thresholds are expressed in GiB for a
	// 1080p release and scale quadratically with resolution height.
	EfficiencyAdjust int     `toml:"efficiency_adjust"`
	EfficientGiB1080 float64 `toml:"efficient_gib_1080"`
	BloatedGiB1080   float64 `toml:"bloated_gib_1080"`
}

// Normalize contains configuration for the directory-name rule engine.
type Normalize struct {
	// ExtraNoiseTokens extends the built-in token table (resolution,
	// source, codec, and release-group markers) with site-specific junk.
	ExtraNoiseTokens []string `toml:"extra_noise_tokens"`
	// MinYear bounds plausible release years; the upper bound is always
	// the current year plus one.
	MinYear int `toml:"min_year"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config is the root configuration for tidyflix.
type Config struct {
	Probe      Probe      `toml:"probe"`
	Extensions Extensions `toml:"extensions"`
	Scoring    Scoring    `toml:"scoring"`
	Normalize  Normalize  `toml:"normalize"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the standard location of the user config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tidyflix", "config.toml"), nil
}

// ExpandPath resolves a leading ~ against the current user's home directory
// and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", trimmed, err)
	}
	return abs, nil
}

// Load reads configuration from the provided path, falling back to the
// default location and then to built-in defaults when no file exists.
// It returns the config, the path that was consulted, and whether a file
// was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolved := strings.TrimSpace(path)
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, "", false, err
		}
		resolved = defaultPath
	} else {
		expanded, err := ExpandPath(resolved)
		if err != nil {
			return nil, "", false, err
		}
		resolved = expanded
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if strings.TrimSpace(path) != "" {
			return nil, resolved, false, fmt.Errorf("config file %s does not exist", resolved)
		}
		if err := cfg.Validate(); err != nil {
			return nil, resolved, false, err
		}
		return &cfg, resolved, false, nil
	case err != nil:
		return nil, resolved, false, fmt.Errorf("read config %s: %w", resolved, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, resolved, false, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, resolved, true, err
	}
	return &cfg, resolved, true, nil
}

// WriteSample writes the embedded sample configuration to path, creating
// parent directories as needed. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file %s already exists", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", expanded, err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// HasMediaExtension reports whether name carries one of the configured
// media extensions.
func (c *Config) HasMediaExtension(name string) bool {
	return hasExtension(name, c.Extensions.Media)
}

// HasSubtitleExtension reports whether name carries one of the configured
// subtitle extensions.
func (c *Config) HasSubtitleExtension(name string) bool {
	return hasExtension(name, c.Extensions.Subtitle)
}

// HasArchiveExtension reports whether name carries one of the configured
// archive extensions.
func (c *Config) HasArchiveExtension(name string) bool {
	return hasExtension(name, c.Extensions.Archive)
}

// HasUnwantedExtension reports whether name carries one of the extensions
// the clean operation removes.
func (c *Config) HasUnwantedExtension(name string) bool {
	return hasExtension(name, c.Extensions.Unwanted)
}

func hasExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
