package namerules

import (
	"regexp"
	"strings"
)

// rule is one entry in the ordered stripping table. Rules are pure string
// transforms; the engine runs the table to a fixed point so order-sensitive
// interactions stay explicit and each rule stays testable in isolation.
type rule struct {
	name  string
	apply func(string) string
}

var (
	separatorRe   = regexp.MustCompile(`[._]+|\s{2,}`)
	bracketRe     = regexp.MustCompile(`[\[\{(]([^\]\})]*)[\]\})]`)
	yearTokenRe   = regexp.MustCompile(`^\d{4}$`)
	yearScanRe    = regexp.MustCompile(`\b\d{4}\b`)
	groupSuffixRe = regexp.MustCompile(`-[A-Za-z0-9]+$`)
	edgeJunkRe    = regexp.MustCompile(`^[^A-Za-z0-9]+|[^A-Za-z0-9]+$`)
	spaceRunRe    = regexp.MustCompile(`\s+`)

	resolutionRe = tokenPattern(
		"480p", "576p", "720p", "1080p", "1080i", "1440p", "2160p", "4k", "uhd",
	)
	sourceRe = tokenPattern(
		"bluray", "blu-ray", "bdrip", "brrip", "web-dl", "webdl", "webrip",
		"hdtv", "dvdrip", "remux", "hdrip", "hdcam", "amzn", "nf",
		"dsnp", "hulu", "atvp",
	)
	codecRe = tokenPattern(
		"x264", "x265", "h264", "h265", "h\\.264", "h\\.265", "hevc", "avc", "av1",
		"xvid", "divx", "10bit", "8bit", "hdr10\\+", "hdr10", "hdr", "dv", "dovi", "sdr",
	)
	audioRe = tokenPattern(
		"aac", "ac3", "eac3", "dd5\\.1", "ddp5\\.1", "dts-hd", "dts", "truehd",
		"atmos", "flac", "mp3", "opus", "7\\.1", "5\\.1", "2\\.0",
	)
	editionRe = tokenPattern(
		"repack", "rerip",
	)

	// Dictionary-word release tags. "Charlotte's Web (2006)" and
	// "Internal Affairs (1990)" are titles; WEB and INTERNAL after the
	// year are metadata. These strip only past the year position.
	sourceWordRe = tokenPattern(
		"web", "dvd",
	)
	editionWordRe = tokenPattern(
		"proper", "extended", "unrated", "uncut", "limited", "internal",
		"theatrical", "remastered", "imax", "multi", "dual",
	)
)

// tokenPattern builds a case-insensitive whole-token matcher for the given
// alternatives. Tokens are bounded by start/end, whitespace, or hyphens so
// "web" cannot eat the middle of a word.
func tokenPattern(tokens ...string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[\s-])(` + strings.Join(tokens, "|") + `)($|[\s-])`)
}

func stripTokens(re *regexp.Regexp) func(string) string {
	return func(text string) string {
		// Replace with a single space and let the whitespace rule collapse
		// the leftovers; repeated application reaches a fixed point because
		// matches never reappear.
		return re.ReplaceAllString(text, " ")
	}
}

// builtinJunk lists site banners and tracker tags removed as literal,
// case-insensitive substrings before any token splitting happens.
var builtinJunk = []string{
	"www.UIndex.org    -    ",
	"[TGx]",
	"[EtHD]",
	"[rarbg]",
	"[norar]",
	"[no-rar]",
	"DDLValley.COOL",
	"[www.YYeTs.net]",
	"Rarbg.Com-",
	"[ www.torrentday.com ]",
}

// defaultRules assembles the ordered rule table. extraJunk extends the
// builtin junk substrings with config-supplied ones.
func defaultRules(extraJunk []string, minYear int, maxYear int) []rule {
	junk := make([]*regexp.Regexp, 0, len(builtinJunk)+len(extraJunk))
	for _, s := range append(append([]string{}, builtinJunk...), extraJunk...) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		junk = append(junk, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(s)))
	}

	return []rule{
		{name: "junk-substrings", apply: func(text string) string {
			for _, re := range junk {
				text = re.ReplaceAllString(text, " ")
			}
			return text
		}},
		{name: "separators", apply: func(text string) string {
			return separatorRe.ReplaceAllString(text, " ")
		}},
		{name: "brackets", apply: unwrapBrackets(minYear, maxYear)},
		{name: "resolution-tags", apply: stripTokens(resolutionRe)},
		{name: "source-tags", apply: stripTokens(sourceRe)},
		{name: "codec-tags", apply: stripTokens(codecRe)},
		{name: "audio-tags", apply: stripTokens(audioRe)},
		{name: "edition-tags", apply: stripTokens(editionRe)},
		{name: "source-words", apply: stripTokensAfterYear(sourceWordRe, minYear, maxYear)},
		{name: "edition-words", apply: stripTokensAfterYear(editionWordRe, minYear, maxYear)},
		{name: "group-suffix", apply: stripGroupSuffix(minYear, maxYear)},
		{name: "edge-junk", apply: func(text string) string {
			return edgeJunkRe.ReplaceAllString(text, "")
		}},
		{name: "whitespace", apply: func(text string) string {
			return strings.TrimSpace(spaceRunRe.ReplaceAllString(text, " "))
		}},
	}
}

// unwrapBrackets removes bracketed metadata groups. A group whose entire
// content is a plausible year survives as a bare year token so canonical
// "Title (Year)" names round-trip unchanged.
func unwrapBrackets(minYear, maxYear int) func(string) string {
	return func(text string) string {
		return bracketRe.ReplaceAllStringFunc(text, func(match string) string {
			inner := strings.TrimSpace(match[1 : len(match)-1])
			if year, ok := parseYear(inner, minYear, maxYear); ok {
				return " " + itoa(year) + " "
			}
			return " "
		})
	}
}

// stripTokensAfterYear removes tokens only in the text following the last
// plausible year. Release metadata trails the year, so a matching word
// before it is part of the title and survives.
func stripTokensAfterYear(re *regexp.Regexp, minYear, maxYear int) func(string) string {
	return func(text string) string {
		end := -1
		for _, loc := range yearScanRe.FindAllStringIndex(text, -1) {
			if _, ok := parseYear(text[loc[0]:loc[1]], minYear, maxYear); ok {
				end = loc[1]
			}
		}
		if end < 0 {
			return text
		}
		return text[:end] + re.ReplaceAllString(text[end:], " ")
	}
}

// stripGroupSuffix drops a trailing -GROUP marker, but only when the rest
// of the name still carries a plausible year. Hyphenated titles without a
// year ("Spider-Man") must survive untouched.
func stripGroupSuffix(minYear, maxYear int) func(string) string {
	return func(text string) string {
		loc := groupSuffixRe.FindStringIndex(text)
		if loc == nil {
			return text
		}
		head := text[:loc[0]]
		if !containsYearToken(head, minYear, maxYear) {
			return text
		}
		return head
	}
}

func containsYearToken(text string, minYear, maxYear int) bool {
	for _, token := range strings.Fields(text) {
		if _, ok := parseYear(token, minYear, maxYear); ok {
			return true
		}
	}
	return false
}

func parseYear(token string, minYear, maxYear int) (int, bool) {
	if !yearTokenRe.MatchString(token) {
		return 0, false
	}
	year := 0
	for _, r := range token {
		year = year*10 + int(r-'0')
	}
	if year < minYear || year > maxYear {
		return 0, false
	}
	return year, true
}

func itoa(year int) string {
	digits := [4]byte{}
	for i := 3; i >= 0; i-- {
		digits[i] = byte('0' + year%10)
		year /= 10
	}
	return string(digits[:])
}
