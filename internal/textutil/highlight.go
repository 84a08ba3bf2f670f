package textutil

import (
	"github.com/jedib0t/go-pretty/v6/text"
)

// HighlightChanges colors the differing middle of two strings: removed text
// in red on the original, inserted text in green on the modified version.
// Identical strings pass through untouched.
func HighlightChanges(original, modified string) (string, string) {
	if original == modified {
		return original, modified
	}

	prefix := commonPrefix(original, modified)
	suffix := commonSuffix(original[prefix:], modified[prefix:])

	removed := original[prefix : len(original)-suffix]
	inserted := modified[prefix : len(modified)-suffix]

	head := original[:prefix]
	tail := original[len(original)-suffix:]

	highlightedOriginal := head + text.FgRed.Sprint(removed) + tail
	highlightedModified := head + text.FgGreen.Sprint(inserted) + tail
	return highlightedOriginal, highlightedModified
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
