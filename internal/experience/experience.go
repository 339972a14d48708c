// Package experience derives total years of experience and a seniority level
// from resume text.
package experience

import (
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/resumelab/resume-analyzer/internal/ingestion"
	"github.com/resumelab/resume-analyzer/internal/types"
)

const earliestPlausibleYear = 1990

var (
	yearPattern     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	explicitPattern = regexp.MustCompile(`(?i)(\d+)\s+years?\s+(?:of\s+)?(?:experience|work)`)
	yearRange       = regexp.MustCompile(`(?i)\b((?:19|20)\d{2})\s*[-–]\s*((?:19|20)\d{2}|present|current)\b`)

	sectionKeywords = []string{
		"experience", "work history", "employment", "career", "professional",
	}
	sectionBoundaries = []string{"education", "skills", "projects"}

	titleKeywords = []string{
		"developer", "engineer", "manager", "analyst", "consultant", "architect",
		"designer", "specialist", "lead", "senior", "junior", "associate",
		"director", "vp", "cto", "ceo",
	}
)

// Result holds everything the calculator writes back to a profile.
type Result struct {
	TotalYears int
	Seniority  string
	Records    []types.ExperienceRecord
}

// Calculate derives years of experience from text. The year-span of all
// plausible 4-digit years is reconciled with the first explicit
// "N years experience" mention by taking the larger of the two. The
// calculator never fails: any internal error degrades to zero years and
// entry-level seniority.
func Calculate(text string) (result Result) {
	result.Seniority = types.SeniorityEntry

	defer func() {
		if r := recover(); r != nil {
			log.Printf("experience: calculation failed, using defaults: %v", r)
			result = Result{Seniority: types.SeniorityEntry}
		}
	}()

	currentYear := time.Now().Year()
	years := collectYears(text, currentYear)

	spanYears := yearsFromSpan(years, currentYear)
	explicit := explicitYears(text)

	result.TotalYears = max(spanYears, explicit)
	result.Seniority = SeniorityFor(result.TotalYears)
	result.Records = extractRecords(text)
	return result
}

// collectYears gathers the distinct 4-digit years between 1990 and the
// current year mentioned anywhere in the text.
func collectYears(text string, currentYear int) map[int]bool {
	years := make(map[int]bool)
	for _, m := range yearPattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if year >= earliestPlausibleYear && year <= currentYear {
			years[year] = true
		}
	}
	return years
}

// yearsFromSpan returns max-min when the set spans more than one year,
// otherwise the distance from the single earliest year to now.
func yearsFromSpan(years map[int]bool, currentYear int) int {
	if len(years) == 0 {
		return 0
	}
	earliest, latest := currentYear, 0
	for y := range years {
		if y < earliest {
			earliest = y
		}
		if y > latest {
			latest = y
		}
	}
	if latest-earliest > 0 {
		return latest - earliest
	}
	return currentYear - earliest
}

// explicitYears returns the first "N years experience" style mention, or 0.
func explicitYears(text string) int {
	m := explicitPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// SeniorityFor maps total years of experience onto the seniority scale.
func SeniorityFor(years int) string {
	switch {
	case years < 1:
		return types.SeniorityEntry
	case years < 3:
		return types.SeniorityJunior
	case years < 6:
		return types.SeniorityMid
	case years < 10:
		return types.SenioritySenior
	default:
		return types.SeniorityExpert
	}
}

// extractRecords captures work-history lines: lines inside a detected
// experience section that mention a job title or a date range, plus any line
// with an explicit year range regardless of section. Records are descriptive
// artifacts only; an empty result is valid.
func extractRecords(text string) []types.ExperienceRecord {
	var records []types.ExperienceRecord
	inSection := false

	for _, raw := range ingestion.SplitLines(text) {
		line := ingestion.CleanLine(raw)
		lower := strings.ToLower(line)

		for _, boundary := range sectionBoundaries {
			if strings.Contains(lower, boundary) {
				inSection = false
			}
		}
		for _, kw := range sectionKeywords {
			if strings.Contains(lower, kw) {
				inSection = true
			}
		}

		if line == "" || len(line) <= 5 {
			continue
		}

		rangeMatch := yearRange.FindStringSubmatch(line)
		if rangeMatch == nil && !(inSection && hasTitleKeyword(lower)) {
			continue
		}

		record := types.ExperienceRecord{Description: line}
		if rangeMatch != nil {
			record.DurationMonths = durationMonths(rangeMatch)
		}
		records = append(records, record)
	}
	return records
}

func hasTitleKeyword(lower string) bool {
	for _, kw := range titleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// durationMonths converts a matched "YYYY-YYYY" or "YYYY-present" range into
// whole months, or 0 when the range cannot be parsed.
func durationMonths(m []string) int {
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	end := time.Now().Year()
	if end2, err := strconv.Atoi(m[2]); err == nil {
		end = end2
	}
	if end < start {
		return 0
	}
	return (end - start) * 12
}
