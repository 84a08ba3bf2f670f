package scoring

import (
	"testing"

	"github.com/paranoidi/tidyflix/internal/config"
	"github.com/paranoidi/tidyflix/internal/probe"
)

const testGiB = int64(1 << 30)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
	return New(cfg.Scoring)
}

func TestScoreEmptyDescriptorsIsUnscoreable(t *testing.T) {
	scorer := newTestScorer(t)

	score := scorer.Score(nil, 4*testGiB)
	if !score.Unscoreable {
		t.Fatal("expected unscoreable result for empty descriptor set")
	}
	if score.Total != 0 {
		t.Fatalf("unscoreable total = %d, want 0", score.Total)
	}
}

func TestResolutionDominatesCodecAndBonuses(t *testing.T) {
	scorer := newTestScorer(t)

	// A bare 1080p H.264 SDR release must still outrank a fully loaded
	// 720p release.
	plain1080 := scorer.Score([]probe.Descriptor{{
		HeightPx: 1080,
		Codec:    probe.CodecH264,
	}}, 6*testGiB)
	loaded720 := scorer.Score([]probe.Descriptor{{
		HeightPx: 720,
		Codec:    probe.CodecAV1,
		HDR:      true,
		Audio:    probe.AudioLossless,
	}}, testGiB)

	if plain1080.Total <= loaded720.Total {
		t.Fatalf("1080p total %d should exceed loaded 720p total %d", plain1080.Total, loaded720.Total)
	}
}

func TestCodecOrdering(t *testing.T) {
	scorer := newTestScorer(t)

	codecs := []probe.Codec{probe.CodecOther, probe.CodecH264, probe.CodecH265, probe.CodecAV1}
	previous := -1
	for _, codec := range codecs {
		score := scorer.Score([]probe.Descriptor{{HeightPx: 1080, Codec: codec}}, 5*testGiB)
		if score.Total <= previous {
			t.Fatalf("codec %v total %d not greater than previous %d", codec, score.Total, previous)
		}
		previous = score.Total
	}
}

func TestEfficiencyBreaksTieAt2160p(t *testing.T) {
	scorer := newTestScorer(t)

	desc := probe.Descriptor{HeightPx: 2160, Codec: probe.CodecH265}
	compact := scorer.Score([]probe.Descriptor{desc}, 6*testGiB)
	larger := scorer.Score([]probe.Descriptor{desc}, 9*testGiB)

	// The efficient threshold for 2160p is 2 GiB scaled by (2160/1080)^2,
	// so 8 GiB. The 6 GiB encode earns the bonus and wins the tie.
	if compact.Total <= larger.Total {
		t.Fatalf("compact total %d should exceed larger total %d", compact.Total, larger.Total)
	}
}

func TestEfficiencyPenalizesBloat(t *testing.T) {
	scorer := newTestScorer(t)

	desc := probe.Descriptor{HeightPx: 1080, Codec: probe.CodecH264}
	normal := scorer.Score([]probe.Descriptor{desc}, 5*testGiB)
	bloated := scorer.Score([]probe.Descriptor{desc}, 12*testGiB)

	if bloated.Total >= normal.Total {
		t.Fatalf("bloated total %d should be below normal total %d", bloated.Total, normal.Total)
	}
}

func TestEfficiencyIgnoresUnknownResolution(t *testing.T) {
	scorer := newTestScorer(t)

	score := scorer.Score([]probe.Descriptor{{Codec: probe.CodecH264}}, 30*testGiB)
	for _, factor := range score.Breakdown {
		if factor.Name == "efficiency" && factor.Points != 0 {
			t.Fatalf("efficiency adjustment %d for unknown resolution, want 0", factor.Points)
		}
	}
}

func TestMultiFileReleaseScoresByBestFile(t *testing.T) {
	scorer := newTestScorer(t)

	multi := scorer.Score([]probe.Descriptor{
		{HeightPx: 480, Codec: probe.CodecOther},
		{HeightPx: 1080, Codec: probe.CodecH265, HDR: true},
	}, 5*testGiB)
	single := scorer.Score([]probe.Descriptor{
		{HeightPx: 1080, Codec: probe.CodecH265, HDR: true},
	}, 5*testGiB)

	if multi.Total != single.Total {
		t.Fatalf("multi-file total %d, want best-file total %d", multi.Total, single.Total)
	}
}

func TestBreakdownSumsToTotal(t *testing.T) {
	scorer := newTestScorer(t)

	score := scorer.Score([]probe.Descriptor{{
		HeightPx: 2160,
		Codec:    probe.CodecAV1,
		HDR:      true,
		Audio:    probe.AudioLossless,
	}}, 7*testGiB)

	sum := 0
	for _, factor := range score.Breakdown {
		sum += factor.Points
	}
	if sum != score.Total {
		t.Fatalf("breakdown sum %d != total %d", sum, score.Total)
	}
	if len(score.Breakdown) != 5 {
		t.Fatalf("breakdown has %d factors, want 5", len(score.Breakdown))
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := newTestScorer(t)

	descs := []probe.Descriptor{{HeightPx: 1080, Codec: probe.CodecH265, HDR: true}}
	first := scorer.Score(descs, 4*testGiB)
	second := scorer.Score(descs, 4*testGiB)
	if first.Total != second.Total || first.Unscoreable != second.Unscoreable {
		t.Fatalf("scores differ across runs: %+v vs %+v", first, second)
	}
}
