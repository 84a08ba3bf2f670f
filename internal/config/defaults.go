package config

const (
	defaultProbeBinary         = "ffprobe"
	defaultProbeTimeoutSeconds = 20
	defaultProbeWorkers        = 4
	defaultMinYear             = 1900
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"

	defaultResolution2160 = 400
	defaultResolution1440 = 320
	defaultResolution1080 = 240
	defaultResolution720  = 160
	defaultResolution480  = 80

	defaultCodecAV1   = 40
	defaultCodecH265  = 30
	defaultCodecH264  = 20
	defaultCodecOther = 8

	defaultHDRBonus      = 12
	defaultLosslessBonus = 8

	defaultEfficiencyAdjust = 5
	defaultEfficientGiB1080 = 2.0
	defaultBloatedGiB1080   = 10.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Probe: Probe{
			Binary:         defaultProbeBinary,
			TimeoutSeconds: defaultProbeTimeoutSeconds,
			Workers:        defaultProbeWorkers,
		},
		Extensions: Extensions{
			Media:    []string{".mkv", ".mp4", ".avi", ".mov"},
			Subtitle: []string{".srt", ".sub", ".ass", ".ssa", ".vtt", ".idx", ".sup", ".smi", ".rt", ".sbv"},
			Archive:  []string{".rar", ".par2"},
			Unwanted: []string{".txt", ".exe", ".url"},
		},
		Scoring: Scoring{
			Resolution2160:   defaultResolution2160,
			Resolution1440:   defaultResolution1440,
			Resolution1080:   defaultResolution1080,
			Resolution720:    defaultResolution720,
			Resolution480:    defaultResolution480,
			CodecAV1:         defaultCodecAV1,
			CodecH265:        defaultCodecH265,
			CodecH264:        defaultCodecH264,
			CodecOther:       defaultCodecOther,
			HDRBonus:         defaultHDRBonus,
			LosslessBonus:    defaultLosslessBonus,
			EfficiencyAdjust: defaultEfficiencyAdjust,
			EfficientGiB1080: defaultEfficientGiB1080,
			BloatedGiB1080:   defaultBloatedGiB1080,
		},
		Normalize: Normalize{
			MinYear: defaultMinYear,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// applyDefaults fills zero values left after unmarshalling a partial file.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Probe.Binary == "" {
		c.Probe.Binary = def.Probe.Binary
	}
	if c.Probe.TimeoutSeconds <= 0 {
		c.Probe.TimeoutSeconds = def.Probe.TimeoutSeconds
	}
	if c.Probe.Workers <= 0 {
		c.Probe.Workers = def.Probe.Workers
	}
	if len(c.Extensions.Media) == 0 {
		c.Extensions.Media = def.Extensions.Media
	}
	if len(c.Extensions.Subtitle) == 0 {
		c.Extensions.Subtitle = def.Extensions.Subtitle
	}
	if len(c.Extensions.Archive) == 0 {
		c.Extensions.Archive = def.Extensions.Archive
	}
	if len(c.Extensions.Unwanted) == 0 {
		c.Extensions.Unwanted = def.Extensions.Unwanted
	}
	if c.Normalize.MinYear <= 0 {
		c.Normalize.MinYear = def.Normalize.MinYear
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Scoring == (Scoring{}) {
		c.Scoring = def.Scoring
	}
}
