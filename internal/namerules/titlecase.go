package namerules

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// connectorWords stay lowercase inside a title, matching common English
// title-casing conventions. The first word is always capitalized.
var connectorWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {}, "by": {},
	"for": {}, "from": {}, "in": {}, "nor": {}, "of": {}, "off": {}, "on": {},
	"or": {}, "out": {}, "per": {}, "the": {}, "to": {}, "up": {}, "via": {},
	"with": {},
}

var wordCaser = cases.Title(language.Und)

// titleCase capitalizes each word of a title while keeping connector words
// lowercase (except at the start) and preserving short all-caps acronyms
// like "II", "USA", or "VIII".
func titleCase(title string) string {
	words := strings.Fields(title)
	for i, word := range words {
		lower := strings.ToLower(word)
		if _, connector := connectorWords[lower]; connector && i > 0 {
			words[i] = lower
			continue
		}
		if isShortAcronym(word) {
			continue
		}
		words[i] = wordCaser.String(lower)
	}
	return strings.Join(words, " ")
}

func isShortAcronym(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || len(runes) > 4 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
