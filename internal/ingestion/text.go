// Package ingestion turns uploaded resume documents into normalized plain text.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	horizontalWS = regexp.MustCompile(`[ \t]+`)
	newlineRuns  = regexp.MustCompile(` *\n[\s]*`)
)

// PreprocessText strips control and symbol code points from resume text and
// collapses whitespace. Runs of spaces/tabs become a single space, runs of
// newlines become a single newline, and the result is trimmed. Normalizing
// already-normalized text is a no-op, and empty or blank input yields "".
//
// Removed code points: C0 controls except tab/newline/carriage-return, the C1
// range, the Unicode specials block, the private use area (icon fonts), misc
// symbols, dingbats, variation selectors, zero-width characters, and the
// replacement character.
func PreprocessText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = strings.Map(dropBannedRune, text)

	// Normalize line endings before collapsing runs.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = horizontalWS.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}

// dropBannedRune returns -1 for code points the normalizer removes.
func dropBannedRune(r rune) rune {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return r
	case r < 0x20 || r == 0x7F: // C0 controls and DEL
		return -1
	case r >= 0x80 && r <= 0x9F: // C1 controls
		return -1
	case r >= 0x200B && r <= 0x200D: // zero-width characters
		return -1
	case r == 0xFEFF: // zero-width no-break space / BOM
		return -1
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return -1
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
		return -1
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return -1
	case r >= 0xE000 && r <= 0xF8FF: // private use area (FontAwesome et al.)
		return -1
	case r >= 0xFFF0 && r <= 0xFFFF: // specials block, incl. U+FFFD
		return -1
	}
	return r
}

// SplitLines splits normalized text into lines.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// CleanLine trims a single line and collapses internal whitespace.
func CleanLine(line string) string {
	return horizontalWS.ReplaceAllString(strings.TrimSpace(line), " ")
}
