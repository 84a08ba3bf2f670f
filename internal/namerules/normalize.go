package namerules

import (
	"fmt"
	"strings"
	"time"
)

// Step records one rule application for explain mode.
type Step struct {
	Rule   string
	Before string
	After  string
}

// Normalized is the canonical form of a raw directory name.
type Normalized struct {
	Title     string
	Year      int    // 0 when no plausible year was found
	Canonical string // "Title (Year)", or "Title" without a year
	Key       string // lowercase grouping key: "title|year" or "title"
	Trail     []Step // populated only in explain mode
}

// Options configures an Engine.
type Options struct {
	// ExtraNoiseTokens extends the builtin junk-substring table.
	ExtraNoiseTokens []string
	// MinYear bounds plausible release years. Zero means 1900.
	MinYear int
	// Now supplies the clock for the upper year bound; nil means time.Now.
	Now func() time.Time
}

// Engine applies the ordered rule table and derives title, year, and
// grouping key. Normalization is pure and total: any input produces a
// best-effort result, never an error.
type Engine struct {
	rules   []rule
	minYear int
	maxYear int
}

// maxRulePasses bounds the fixed-point iteration; rule interactions settle
// in two or three passes in practice.
const maxRulePasses = 10

// New builds an Engine from the given options.
func New(opts Options) *Engine {
	minYear := opts.MinYear
	if minYear <= 0 {
		minYear = 1900
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	maxYear := now().Year() + 1
	return &Engine{
		rules:   defaultRules(opts.ExtraNoiseTokens, minYear, maxYear),
		minYear: minYear,
		maxYear: maxYear,
	}
}

// Normalize converts a raw directory name into its canonical form.
func (e *Engine) Normalize(raw string) Normalized {
	return e.normalize(raw, false)
}

// Explain is Normalize with a recorded rule trail. The trail is purely
// observational; results are identical to Normalize.
func (e *Engine) Explain(raw string) Normalized {
	return e.normalize(raw, true)
}

func (e *Engine) normalize(raw string, explain bool) Normalized {
	text := raw
	var trail []Step

	for pass := 0; pass < maxRulePasses; pass++ {
		before := text
		for _, r := range e.rules {
			prev := text
			text = r.apply(text)
			if explain && text != prev {
				trail = append(trail, Step{Rule: r.name, Before: prev, After: text})
			}
		}
		if text == before {
			break
		}
	}

	title, year := e.splitTitleYear(text)
	title = titleCase(title)

	result := Normalized{Title: title, Year: year, Trail: trail}
	if year > 0 {
		result.Canonical = fmt.Sprintf("%s (%d)", title, year)
		result.Key = fmt.Sprintf("%s|%d", strings.ToLower(title), year)
	} else {
		result.Canonical = title
		result.Key = strings.ToLower(title)
	}
	return result
}

// splitTitleYear finds the release year and the title preceding it. When
// several plausible year tokens remain, the last one wins: release years
// trail titles, and earlier tokens are usually part of the title itself
// ("2001 A Space Odyssey"). A year with nothing before it is treated as
// title text, not as a release year.
func (e *Engine) splitTitleYear(text string) (string, int) {
	fields := strings.Fields(text)
	yearIdx := -1
	year := 0
	for i, token := range fields {
		if parsed, ok := parseYear(token, e.minYear, e.maxYear); ok {
			yearIdx = i
			year = parsed
		}
	}
	if yearIdx <= 0 {
		return strings.Join(fields, " "), 0
	}
	return strings.Join(fields[:yearIdx], " "), year
}
