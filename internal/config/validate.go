package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateScoring(); err != nil {
		return err
	}
	if err := c.validateNormalize(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateProbe() error {
	if strings.TrimSpace(c.Probe.Binary) == "" {
		return errors.New("probe.binary must be set")
	}
	if c.Probe.TimeoutSeconds <= 0 {
		return errors.New("probe.timeout_seconds must be positive")
	}
	if c.Probe.Workers <= 0 {
		return errors.New("probe.workers must be positive")
	}
	return nil
}

func (c *Config) validateScoring() error {
	s := c.Scoring
	tiers := []int{s.Resolution480, s.Resolution720, s.Resolution1080, s.Resolution1440, s.Resolution2160}
	minGap := tiers[0]
	for i := 1; i < len(tiers); i++ {
		gap := tiers[i] - tiers[i-1]
		if gap <= 0 {
			return errors.New("scoring resolution tiers must strictly increase")
		}
		if gap < minGap {
			minGap = gap
		}
	}
	// Resolution must dominate every sub-factor combined, otherwise ranking
	// loses its documented strict ordering.
	subFactors := s.CodecAV1 + s.HDRBonus + s.LosslessBonus + s.EfficiencyAdjust
	if subFactors >= minGap {
		return fmt.Errorf("scoring: codec+hdr+audio+efficiency (%d) must stay below the smallest resolution tier gap (%d)", subFactors, minGap)
	}
	if s.CodecAV1 < s.CodecH265 || s.CodecH265 < s.CodecH264 || s.CodecH264 < s.CodecOther {
		return errors.New("scoring codec values must be ordered av1 >= h265 >= h264 >= other")
	}
	if s.EfficientGiB1080 <= 0 || s.BloatedGiB1080 <= c.Scoring.EfficientGiB1080 {
		return errors.New("scoring: bloated_gib_1080 must exceed efficient_gib_1080, both positive")
	}
	return nil
}

func (c *Config) validateNormalize() error {
	if c.Normalize.MinYear < 1800 {
		return errors.New("normalize.min_year is implausibly old")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
