// Package personal extracts identity fields from normalized resume text.
package personal

import (
	"regexp"
	"strings"

	"github.com/resumelab/resume-analyzer/internal/ingestion"
	"github.com/resumelab/resume-analyzer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\b(?:\+?1[-\s]?)?\(?([0-9]{3})\)?[-\s]?([0-9]{3})[-\s]?([0-9]{4})\b`)

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+/?`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+/?`)

	// namePattern matches a capitalized two-to-four word line.
	namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z]+(?:\s+[a-zA-Z]+){1,3}$`)
	nameWord    = regexp.MustCompile(`^[a-zA-Z-]+$`)
	digitRun    = regexp.MustCompile(`\d{3,}`)

	addressPattern = regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z\s,]+(?:Street|St|Avenue|Ave|Road|Rd|Lane|Ln|Drive|Dr|Boulevard|Blvd)\b`)
)

// firstLinesScanned caps how far into the document the primary name heuristic looks.
const firstLinesScanned = 5

// Extract populates the identity fields of info from normalized text.
// Each field is set at most once; the first matching pattern wins and later
// strategies never overwrite an already-populated field.
func Extract(info *types.PersonalInfo, text string) {
	if info.Email == "" {
		info.Email = emailPattern.FindString(text)
	}
	if info.PhoneNumber == "" {
		info.PhoneNumber = phonePattern.FindString(text)
	}
	if info.LinkedInURL == "" {
		info.LinkedInURL = linkedinPattern.FindString(text)
	}
	if info.GitHubURL == "" {
		info.GitHubURL = githubPattern.FindString(text)
	}
	if info.FullName == "" {
		info.FullName = extractName(text)
	}
	if info.Address == "" {
		info.Address = ExtractAddress(text)
	}
}

// extractName runs the name cascade: a strict heuristic over the first few
// lines, then a permissive scan of the whole document. The first strategy to
// produce a candidate wins.
func extractName(text string) string {
	if name := nameFromFirstLines(text); name != "" {
		return name
	}
	return nameFromAnyLine(text)
}

func nameFromFirstLines(text string) string {
	lines := ingestion.SplitLines(text)
	for i := 0; i < len(lines) && i < firstLinesScanned; i++ {
		line := ingestion.CleanLine(lines[i])
		if isLikelyName(line) {
			return line
		}
	}
	return ""
}

// isLikelyName reports whether a line passes the strict name heuristic.
func isLikelyName(line string) bool {
	if line == "" {
		return false
	}
	if disqualified(line) || len(line) < 4 || len(line) > 50 {
		return false
	}
	return namePattern.MatchString(line)
}

// nameFromAnyLine is the permissive fallback: any 2-4 word line where the
// first word is capitalized, all words are alphabetic (hyphens allowed) and
// no word is shorter than 2 characters.
func nameFromAnyLine(text string) string {
	for _, raw := range ingestion.SplitLines(text) {
		line := ingestion.CleanLine(raw)
		if line == "" || disqualified(line) || len(line) <= 2 || len(line) >= 50 {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		ok := true
		for i, word := range words {
			if len(word) < 2 || !nameWord.MatchString(word) {
				ok = false
				break
			}
			if i == 0 && (word[0] < 'A' || word[0] > 'Z') {
				ok = false
				break
			}
		}
		if ok {
			return line
		}
	}
	return ""
}

// disqualified rejects lines that cannot be a person's name at any cascade
// stage: an email marker, a URL marker, or 3+ consecutive digits.
func disqualified(line string) bool {
	return strings.Contains(line, "@") ||
		strings.Contains(line, "http") ||
		strings.Contains(line, "www") ||
		digitRun.MatchString(line)
}

// ExtractAddress returns the first line containing a house number followed by
// a street-type suffix, or "" when no line matches. It is independent of the
// mandatory extraction chain and usable standalone.
func ExtractAddress(text string) string {
	for _, raw := range ingestion.SplitLines(text) {
		if addressPattern.MatchString(raw) {
			return strings.TrimSpace(raw)
		}
	}
	return ""
}
