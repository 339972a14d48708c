package skills

import (
	"regexp"
	"strings"
)

// Confidence scoring constants. These are heuristic values carried over from
// the production scoring tables; they are deliberately not tuned further.
const (
	baseConfidence    = 0.6
	contextBonus      = 0.1
	suffixBonus       = 0.1
	proficiencyBonus  = 0.2
	maxConfidence     = 1.0
	requiredSkillBump = 0.2
)

// Record is one extracted skill. It mirrors types.SkillRecord but keeps the
// package free of a dependency cycle with the profile aggregate.
type Record struct {
	Name       string
	Category   string
	Confidence float64
	Mentions   int
}

// Extract scans normalized text against the fixed catalogue and returns one
// record per (skill, category) pair present. Matching is case-insensitive and
// word-boundary anchored so "Java" does not fire inside "JavaScript"; names
// that legitimately overlap are listed separately in the catalogue.
func Extract(text string) []Record {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var records []Record
	for _, entry := range catalog {
		for _, skill := range entry.Skills {
			re := wholeWord(skill)
			mentions := len(re.FindAllStringIndex(lower, -1))
			if mentions == 0 {
				continue
			}
			records = append(records, Record{
				Name:       skill,
				Category:   entry.Category,
				Confidence: Confidence(lower, skill),
				Mentions:   mentions,
			})
		}
	}
	return records
}

// ExtractSoft returns the soft skills present in the text.
func ExtractSoft(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range softSkills {
		if wholeWord(skill).MatchString(lower) {
			found = append(found, skill)
		}
	}
	return found
}

// Confidence computes the heuristic confidence for a skill found in lowered
// text: 0.6 base, +0.1 per adjacent positive context phrase, +0.1 for a
// variant suffix, +0.2 for an "expert"/"advanced" prefix, clamped to 1.0.
// The proficiency prefix supersedes the "expert" context bonus for the same
// phrase so it is not counted twice.
func Confidence(loweredText, skill string) float64 {
	lowerSkill := strings.ToLower(skill)
	confidence := baseConfidence

	prefixed := strings.Contains(loweredText, "expert "+lowerSkill) ||
		strings.Contains(loweredText, "advanced "+lowerSkill)

	for _, ctx := range positiveContexts {
		before := strings.Contains(loweredText, ctx+" "+lowerSkill)
		after := strings.Contains(loweredText, lowerSkill+" "+ctx)
		if ctx == "expert" && prefixed {
			before = false
		}
		if before || after {
			confidence += contextBonus
		}
	}

	for _, suffix := range variantSuffixes {
		if strings.Contains(loweredText, lowerSkill+suffix) {
			confidence += suffixBonus
			break
		}
	}

	if prefixed {
		confidence += proficiencyBonus
	}

	if confidence > maxConfidence {
		return maxConfidence
	}
	return confidence
}

// MatchRequired computes an average-confidence score in [0,1] for a list of
// required skills against the original (non-normalized) resume text. A skill
// contributes its confidence when present as a whole word, zero otherwise;
// an empty requirement list scores 0.0.
func MatchRequired(text string, required []string) float64 {
	if len(required) == 0 {
		return 0.0
	}

	lower := strings.ToLower(text)
	total := 0.0
	for _, skill := range required {
		lowerSkill := strings.ToLower(skill)
		if !wholeWord(lowerSkill).MatchString(lower) {
			continue
		}
		confidence := baseConfidence
		if strings.Contains(lower, "experience "+lowerSkill) ||
			strings.Contains(lower, lowerSkill+" experience") {
			confidence += requiredSkillBump
		}
		if confidence > maxConfidence {
			confidence = maxConfidence
		}
		total += confidence
	}
	return total / float64(len(required))
}

// wholeWord builds a case-insensitive word-boundary pattern for a literal
// skill name.
func wholeWord(skill string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
}
