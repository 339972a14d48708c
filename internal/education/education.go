// Package education extracts education history, degrees, institutions and
// certifications from resume text.
package education

import (
	"regexp"
	"strings"

	"github.com/resumelab/resume-analyzer/internal/ingestion"
	"github.com/resumelab/resume-analyzer/internal/types"
)

// Degree labels in priority order.
const (
	DegreePhD          = "PhD/Doctorate"
	DegreeMasters      = "Master's"
	DegreeBachelors    = "Bachelor's"
	DegreeAssociate    = "Associate/Diploma"
	DegreeNotSpecified = "Not Specified"
)

// Education score contributions per highest degree, plus a per-certification
// bonus, clamped to 1.0.
const (
	scorePhD       = 1.0
	scoreMasters   = 0.8
	scoreBachelors = 0.6
	scoreAssociate = 0.4
	scoreNone      = 0.2
	certBonus      = 0.1
)

var (
	sectionKeywords = []string{
		"education", "degree", "university", "college", "bachelor", "master",
		"phd", "doctorate", "graduated", "certification", "course", "diploma",
		"institute", "school", "academic", "studied",
	}
	sectionBoundaries = []string{"experience", "work", "skills", "projects"}

	degreeTypes = []string{
		"Bachelor", "Master", "PhD", "Doctorate", "Associate", "Certificate",
		"B.S.", "B.A.", "M.S.", "M.A.", "MBA", "B.E.", "B.Tech", "M.Tech",
	}

	studyFields = []string{
		"Computer Science", "Engineering", "Business", "Mathematics", "Physics",
		"Chemistry", "Biology", "Economics", "Finance", "Marketing", "Psychology",
		"Information Technology", "Software Engineering", "Data Science",
	}

	certKeywords = []string{
		"certified", "certification", "certificate", "aws certified",
		"microsoft certified", "google certified", "oracle certified",
		"cisco certified", "comptia", "pmp", "cissp", "cisa",
	}

	institutionPattern = regexp.MustCompile(
		`(?i)(?:University|College|Institute|School)\s+of\s+([A-Za-z\s]+)|` +
			`([A-Za-z\s]+)\s+(?:University|College|Institute|School)`)
)

// minCapturedLineLength filters out fragments too short to describe a degree.
const minCapturedLineLength = 5

// Extract scans the text line by line for education content. A line is
// captured when the scan is inside a detected education section, or
// independently when the line itself mentions a degree type, so a line that
// reads like a degree mention is picked up outside any section. The
// boundary check runs on every line and closes the section when another
// resume section starts.
func Extract(text string) []types.EducationRecord {
	var records []types.EducationRecord
	inSection := false

	for _, raw := range ingestion.SplitLines(text) {
		line := ingestion.CleanLine(raw)
		lower := strings.ToLower(line)

		if containsAny(lower, sectionKeywords) {
			inSection = true
		}

		if inSection || containsDegreeType(lower) {
			if line != "" && len(line) > minCapturedLineLength {
				records = append(records, types.EducationRecord{
					Description: line,
					Degree:      degreeOnLine(lower),
				})
			}
		}

		if containsAny(lower, sectionBoundaries) {
			inSection = false
		}
	}
	return records
}

// ExtractHighestDegree returns the highest degree mentioned anywhere in the
// text. Advanced degrees are checked first; the first matching keyword wins.
func ExtractHighestDegree(text string) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate"):
		return DegreePhD
	case strings.Contains(lower, "master") || strings.Contains(lower, "m.s.") ||
		strings.Contains(lower, "m.a.") || strings.Contains(lower, "mba") ||
		strings.Contains(lower, "m.tech"):
		return DegreeMasters
	case strings.Contains(lower, "bachelor") || strings.Contains(lower, "b.s.") ||
		strings.Contains(lower, "b.a.") || strings.Contains(lower, "b.e.") ||
		strings.Contains(lower, "b.tech"):
		return DegreeBachelors
	case strings.Contains(lower, "associate") || strings.Contains(lower, "diploma"):
		return DegreeAssociate
	}
	return DegreeNotSpecified
}

// ExtractFieldsOfStudy returns the known study fields mentioned in the text.
func ExtractFieldsOfStudy(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, field := range studyFields {
		if strings.Contains(lower, strings.ToLower(field)) {
			found = append(found, field)
		}
	}
	return found
}

// ExtractInstitutions returns institution names matching "<X> of <Y>" or
// "<Y> <University|College|Institute|School>" patterns.
func ExtractInstitutions(text string) []string {
	var institutions []string
	for _, m := range institutionPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if name == "" {
			name = m[2]
		}
		name = strings.TrimSpace(name)
		if len(name) > 2 {
			institutions = append(institutions, name)
		}
	}
	return institutions
}

// ExtractCertifications captures, for each certification keyword present,
// the first line mentioning it.
func ExtractCertifications(text string) []string {
	lower := strings.ToLower(text)
	lines := ingestion.SplitLines(text)

	var certifications []string
	for _, keyword := range certKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, line := range lines {
			if strings.Contains(strings.ToLower(line), keyword) {
				certifications = append(certifications, strings.TrimSpace(line))
				break
			}
		}
	}
	return certifications
}

// CalculateScore produces an education score in [0,1]: a base contribution
// from the highest degree plus 0.1 per detected certification.
func CalculateScore(text string) float64 {
	var score float64
	switch ExtractHighestDegree(text) {
	case DegreePhD:
		score = scorePhD
	case DegreeMasters:
		score = scoreMasters
	case DegreeBachelors:
		score = scoreBachelors
	case DegreeAssociate:
		score = scoreAssociate
	default:
		score = scoreNone
	}

	score += float64(len(ExtractCertifications(text))) * certBonus
	if score > 1.0 {
		return 1.0
	}
	return score
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsDegreeType(lower string) bool {
	for _, degree := range degreeTypes {
		if strings.Contains(lower, strings.ToLower(degree)) {
			return true
		}
	}
	return false
}

// degreeOnLine labels a captured line with the degree level it mentions,
// or "" when the line is other section content.
func degreeOnLine(lower string) string {
	if !containsDegreeType(lower) {
		return ""
	}
	switch deg := ExtractHighestDegree(lower); deg {
	case DegreeNotSpecified:
		return ""
	default:
		return deg
	}
}
