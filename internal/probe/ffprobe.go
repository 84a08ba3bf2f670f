package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Prober inspects a directory and returns a descriptor per media file
// found inside it. Implementations must not block indefinitely; failures
// degrade to an empty result rather than an error wherever possible.
type Prober interface {
	Probe(ctx context.Context, dir string) ([]Descriptor, error)
}

// FFProbe inspects media files by shelling out to ffprobe.
type FFProbe struct {
	Binary  string
	Timeout time.Duration
	// IsMedia filters directory entries down to probe-worthy files.
	IsMedia func(name string) bool
}

// NewFFProbe builds a prober with the given binary and per-file timeout.
func NewFFProbe(binary string, timeout time.Duration, isMedia func(string) bool) *FFProbe {
	if strings.TrimSpace(binary) == "" {
		binary = "ffprobe"
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &FFProbe{Binary: binary, Timeout: timeout, IsMedia: isMedia}
}

// Probe walks dir for media files and inspects each one. Files that fail
// inspection are skipped; the error return is reserved for an unreadable
// directory.
func (f *FFProbe) Probe(ctx context.Context, dir string) ([]Descriptor, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && f.IsMedia != nil && f.IsMedia(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(files)

	descriptors := make([]Descriptor, 0, len(files))
	for _, file := range files {
		if ctx.Err() != nil {
			return descriptors, ctx.Err()
		}
		desc, err := f.inspect(ctx, file)
		if err != nil {
			continue
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}

func (f *FFProbe) inspect(ctx context.Context, path string) (Descriptor, error) {
	probeCtx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, f.Binary,
		"-v", "error", "-hide_banner",
		"-show_format", "-show_streams",
		"-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		return Descriptor{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var result result
	if err := json.Unmarshal(output, &result); err != nil {
		return Descriptor{}, fmt.Errorf("ffprobe parse %s: %w", path, err)
	}
	return result.descriptor(path), nil
}

// result mirrors the subset of ffprobe JSON output that descriptor
// construction needs.
type result struct {
	Streams []stream `json:"streams"`
	Format  format   `json:"format"`
}

type stream struct {
	CodecType      string     `json:"codec_type"`
	CodecName      string     `json:"codec_name"`
	Profile        string     `json:"profile"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	ColorTransfer  string     `json:"color_transfer"`
	ColorPrimaries string     `json:"color_primaries"`
	Tags           streamTags `json:"tags"`
}

type streamTags struct {
	Language string `json:"language"`
}

type format struct {
	FormatName string `json:"format_name"`
	Size       string `json:"size"`
}

func (r result) descriptor(path string) Descriptor {
	desc := Descriptor{
		Path:      path,
		Container: firstToken(r.Format.FormatName),
		SizeBytes: parseSize(r.Format.Size),
	}

	for _, s := range r.Streams {
		switch strings.ToLower(s.CodecType) {
		case "video":
			if desc.Codec == CodecUnknown {
				desc.Codec = classifyCodec(s.CodecName)
			}
			if s.Height > desc.HeightPx {
				desc.HeightPx = s.Height
			}
			if isHDR(s) {
				desc.HDR = true
			}
		case "audio":
			if classified := classifyAudio(s); classified > desc.Audio {
				desc.Audio = classified
			}
		case "subtitle":
			lang := strings.ToUpper(strings.TrimSpace(s.Tags.Language))
			if lang == "" {
				lang = "UNK"
			}
			desc.SubtitleLangs = appendUnique(desc.SubtitleLangs, lang)
		}
	}
	sort.Strings(desc.SubtitleLangs)
	return desc
}

func classifyCodec(name string) Codec {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return CodecUnknown
	case "av1":
		return CodecAV1
	case "hevc", "h265":
		return CodecH265
	case "h264", "avc":
		return CodecH264
	default:
		return CodecOther
	}
}

// losslessAudio lists codec names that always carry lossless audio. DTS is
// handled separately because only the HD MA profile is lossless.
var losslessAudio = map[string]struct{}{
	"truehd": {},
	"flac":   {},
	"mlp":    {},
	"alac":   {},
}

func classifyAudio(s stream) AudioCodec {
	name := strings.ToLower(strings.TrimSpace(s.CodecName))
	if name == "" {
		return AudioUnknown
	}
	if _, ok := losslessAudio[name]; ok {
		return AudioLossless
	}
	if strings.HasPrefix(name, "pcm_") {
		return AudioLossless
	}
	if name == "dts" && strings.Contains(strings.ToUpper(s.Profile), "DTS-HD MA") {
		return AudioLossless
	}
	return AudioLossy
}

func isHDR(s stream) bool {
	switch strings.ToLower(s.ColorTransfer) {
	case "smpte2084", "arib-std-b67":
		return true
	}
	return strings.ToLower(s.ColorPrimaries) == "bt2020"
}

func parseSize(value string) int64 {
	size, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || size < 0 {
		return 0
	}
	return size
}

func firstToken(formatName string) string {
	name, _, _ := strings.Cut(strings.TrimSpace(formatName), ",")
	return name
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

// ErrUnavailable indicates the ffprobe binary could not be located.
var ErrUnavailable = errors.New("ffprobe unavailable")

// Available checks that the configured binary can be resolved.
func (f *FFProbe) Available() error {
	if _, err := exec.LookPath(f.Binary); err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, f.Binary)
	}
	return nil
}
