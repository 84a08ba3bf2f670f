package probe

// Codec identifies the video codec family of a media file.
type Codec int

const (
	CodecUnknown Codec = iota
	CodecOther
	CodecH264
	CodecH265
	CodecAV1
)

func (c Codec) String() string {
	switch c {
	case CodecAV1:
		return "AV1"
	case CodecH265:
		return "H265"
	case CodecH264:
		return "H264"
	case CodecOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// AudioCodec groups audio codecs by fidelity class.
type AudioCodec int

const (
	AudioUnknown AudioCodec = iota
	AudioLossy
	AudioLossless
)

func (a AudioCodec) String() string {
	switch a {
	case AudioLossless:
		return "Lossless"
	case AudioLossy:
		return "Lossy"
	default:
		return "Unknown"
	}
}

// Descriptor captures the quality-relevant attributes of one media file.
// Fields that cannot be determined keep their zero value: HeightPx 0 means
// unknown resolution.
type Descriptor struct {
	Path          string
	Codec         Codec
	HeightPx      int
	HDR           bool
	Audio         AudioCodec
	Container     string
	SizeBytes     int64
	SubtitleLangs []string
}
