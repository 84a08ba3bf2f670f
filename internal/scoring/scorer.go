// Package scoring ranks movie directories by media quality.
//
// The model is a weighted-factor sum with a documented strict dominance
// order: resolution tier outweighs codec, codec outweighs the HDR and
// audio bonuses, and the size-efficiency adjustment is only ever a
// tie-breaker between otherwise comparable releases. Weights come from
// configuration; config.Validate enforces the dominance invariant.
package scoring

import (
	"github.com/paranoidi/tidyflix/internal/config"
	"github.com/paranoidi/tidyflix/internal/probe"
)

// Factor is one named contribution to a quality score.
type Factor struct {
	Name   string
	Points int
}

// Score is the comparable result of scoring one directory.
type Score struct {
	Total int
	// Breakdown lists each factor's contribution in evaluation order.
	Breakdown []Factor
	// Unscoreable marks directories with no probed media; they rank below
	// every scoreable directory regardless of Total.
	Unscoreable bool
}

// Scorer computes quality scores using configured weights. The zero value
// is not usable; construct with New.
type Scorer struct {
	weights config.Scoring
}

// New builds a Scorer from the configured weights.
func New(weights config.Scoring) *Scorer {
	return &Scorer{weights: weights}
}

// Score rates a directory from its media descriptors and total size.
// It is a pure function: identical inputs always produce identical
// results. An empty descriptor set yields an unscoreable floor result
// rather than an error.
func (s *Scorer) Score(descriptors []probe.Descriptor, totalSizeBytes int64) Score {
	if len(descriptors) == 0 {
		return Score{Unscoreable: true}
	}

	// Multi-file releases score by their best single file; the size
	// factor still considers the directory as a whole.
	best := descriptors[0]
	bestPoints := s.descriptorPoints(best)
	for _, desc := range descriptors[1:] {
		if points := s.descriptorPoints(desc); points > bestPoints {
			best, bestPoints = desc, points
		}
	}

	breakdown := []Factor{
		{Name: "resolution", Points: s.resolutionPoints(best.HeightPx)},
		{Name: "codec", Points: s.codecPoints(best.Codec)},
		{Name: "hdr", Points: s.hdrPoints(best)},
		{Name: "audio", Points: s.audioPoints(best)},
		{Name: "efficiency", Points: s.efficiencyPoints(best.HeightPx, totalSizeBytes)},
	}

	total := 0
	for _, factor := range breakdown {
		total += factor.Points
	}
	return Score{Total: total, Breakdown: breakdown}
}

func (s *Scorer) descriptorPoints(desc probe.Descriptor) int {
	return s.resolutionPoints(desc.HeightPx) + s.codecPoints(desc.Codec) + s.hdrPoints(desc) + s.audioPoints(desc)
}

// resolutionPoints buckets the frame height into the nearest standard tier
// at or below it. Heights under the lowest tier, and unknown heights,
// score zero.
func (s *Scorer) resolutionPoints(heightPx int) int {
	switch {
	case heightPx >= 2000:
		return s.weights.Resolution2160
	case heightPx >= 1400:
		return s.weights.Resolution1440
	case heightPx >= 1000:
		return s.weights.Resolution1080
	case heightPx >= 700:
		return s.weights.Resolution720
	case heightPx >= 440:
		return s.weights.Resolution480
	default:
		return 0
	}
}

func (s *Scorer) codecPoints(codec probe.Codec) int {
	switch codec {
	case probe.CodecAV1:
		return s.weights.CodecAV1
	case probe.CodecH265:
		return s.weights.CodecH265
	case probe.CodecH264:
		return s.weights.CodecH264
	case probe.CodecOther:
		return s.weights.CodecOther
	default:
		return 0
	}
}

func (s *Scorer) hdrPoints(desc probe.Descriptor) int {
	if desc.HDR {
		return s.weights.HDRBonus
	}
	return 0
}

func (s *Scorer) audioPoints(desc probe.Descriptor) int {
	if desc.Audio == probe.AudioLossless {
		return s.weights.LosslessBonus
	}
	return 0
}

const gib = 1 << 30

// efficiencyPoints rewards compact encodes and penalizes bloated ones.
// Thresholds are configured in GiB for a 1080p release and scale with the
// square of the height ratio, since pixel count grows quadratically.
// Unknown resolutions and unknown sizes get no adjustment.
func (s *Scorer) efficiencyPoints(heightPx int, totalSizeBytes int64) int {
	height := nominalHeight(heightPx)
	if height == 0 || totalSizeBytes <= 0 {
		return 0
	}
	scale := float64(height) / 1080.0
	scale *= scale

	efficient := int64(s.weights.EfficientGiB1080 * scale * gib)
	bloated := int64(s.weights.BloatedGiB1080 * scale * gib)
	switch {
	case totalSizeBytes <= efficient:
		return s.weights.EfficiencyAdjust
	case totalSizeBytes >= bloated:
		return -s.weights.EfficiencyAdjust
	default:
		return 0
	}
}

func nominalHeight(heightPx int) int {
	switch {
	case heightPx >= 2000:
		return 2160
	case heightPx >= 1400:
		return 1440
	case heightPx >= 1000:
		return 1080
	case heightPx >= 700:
		return 720
	case heightPx >= 440:
		return 480
	default:
		return 0
	}
}
