// Package summary composes the narrative profile summary, detects domain
// expertise and computes the overall profile quality score.
package summary

import (
	"fmt"
	"strings"

	"github.com/resumelab/resume-analyzer/internal/education"
	"github.com/resumelab/resume-analyzer/internal/types"
)

// Overall score weights. Experience contributes up to 0.3, skills up to 0.4,
// education up to 0.2 and identity-field completeness up to 0.1.
const (
	experienceWeightPerYear = 0.05
	experienceWeightCap     = 0.3
	skillWeightPerSkill     = 0.02
	skillWeightCap          = 0.4
	educationWeightPhD      = 0.2
	educationWeightMasters  = 0.15
	educationWeightBachelor = 0.1
	educationWeightNone     = 0.05
	completenessPerField    = 0.02
)

// domainRule counts keyword hits against the text; the first rule whose
// threshold is met wins, checked in declaration order.
type domainRule struct {
	Name      string
	Keywords  []string
	Threshold int
}

var domainRules = []domainRule{
	{"Frontend Development", []string{"web", "frontend", "react", "angular", "vue"}, 3},
	{"Backend Development", []string{"backend", "api", "server", "database", "microservices"}, 3},
	{"Full Stack Development", []string{"fullstack", "full stack", "frontend", "backend"}, 2},
	{"Mobile Development", []string{"mobile", "android", "ios", "react native", "flutter"}, 2},
	{"Data Science & Analytics", []string{"data science", "machine learning", "ai", "analytics", "python"}, 3},
	{"DevOps & Cloud", []string{"devops", "cloud", "aws", "docker", "kubernetes"}, 3},
}

// Generate writes the narrative summary onto the profile. Each clause is
// appended only when its source data is present.
func Generate(profile *types.CandidateProfile, text string) {
	var b strings.Builder

	if profile.TotalExperienceYears > 0 {
		fmt.Fprintf(&b, "Professional with %d years of experience. ", profile.TotalExperienceYears)
	}
	if profile.Seniority != "" {
		fmt.Fprintf(&b, "%s level candidate. ", profile.Seniority)
	}
	if n := profile.SkillCount(); n > 0 {
		fmt.Fprintf(&b, "Skilled in %d technologies across multiple domains. ", n)
	}
	if domain := DetectDomain(text); domain != "" {
		fmt.Fprintf(&b, "Specializes in %s. ", domain)
	}
	if level := educationLevel(text); level != "" {
		fmt.Fprintf(&b, "Holds %s degree. ", level)
	}

	profile.Summary = strings.TrimSpace(b.String())
}

// DetectDomain returns the first domain whose keyword hit count meets its
// threshold, or "" when no domain qualifies.
func DetectDomain(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range domainRules {
		hits := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits >= rule.Threshold {
			return rule.Name
		}
	}
	return ""
}

// CalculateOverallScore combines experience, skill count, education level and
// identity completeness into a [0,1] quality score.
func CalculateOverallScore(profile *types.CandidateProfile, text string) float64 {
	score := float64(profile.TotalExperienceYears) * experienceWeightPerYear
	if score > experienceWeightCap {
		score = experienceWeightCap
	}

	skillScore := float64(profile.SkillCount()) * skillWeightPerSkill
	if skillScore > skillWeightCap {
		skillScore = skillWeightCap
	}
	score += skillScore

	switch educationLevel(text) {
	case education.DegreePhD:
		score += educationWeightPhD
	case education.DegreeMasters:
		score += educationWeightMasters
	case education.DegreeBachelors:
		score += educationWeightBachelor
	default:
		score += educationWeightNone
	}

	score += float64(profile.IdentityFieldCount()) * completenessPerField

	if score > 1.0 {
		return 1.0
	}
	return score
}

// educationLevel is the summary generator's coarse degree detection: only
// doctorates, master's and bachelor's degrees produce a clause.
func educationLevel(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate"):
		return education.DegreePhD
	case strings.Contains(lower, "master") || strings.Contains(lower, "mba"):
		return education.DegreeMasters
	case strings.Contains(lower, "bachelor"):
		return education.DegreeBachelors
	}
	return ""
}
