// Package ats matches a finished candidate profile against a job description
// and produces a compatibility score with actionable recommendations.
package ats

import (
	"fmt"
	"math"
	"strings"

	"github.com/resumelab/resume-analyzer/internal/types"
)

// Final-score weights: skills 50%, keywords 30%, experience relevance 20%.
const (
	skillWeight      = 0.5
	keywordWeight    = 0.3
	experienceWeight = 0.2
)

// maxListedMissingSkills caps how many missing skills a recommendation names.
const maxListedMissingSkills = 5

// Analyze matches a profile against a job requirement. A missing or blank
// job description yields a zero result, never an error. The profile is read
// but never mutated.
func Analyze(profile *types.CandidateProfile, req types.JobRequirement) *types.MatchResult {
	if strings.TrimSpace(req.JobDescription) == "" {
		return &types.MatchResult{
			MatchingSkills:  []string{},
			MissingSkills:   []string{},
			KeywordMatches:  []string{},
			MissingKeywords: []string{},
			Recommendations: []types.Recommendation{},
		}
	}

	jobDesc := strings.ToLower(req.JobDescription)
	resumeText := strings.ToLower(profile.ProcessedText)
	resumeSkills := loweredSkillNames(profile)

	wantedKeywords := foundIn(jobDesc, jobKeywords)
	wantedSkills := foundIn(jobDesc, jobSkills)

	matching, missing := partitionSkills(resumeSkills, wantedSkills)
	keywordMatches, missingKeywords := partitionKeywords(resumeText, wantedKeywords)

	skillScore := percentOf(len(matching), len(wantedSkills))
	keywordScore := percentOf(len(keywordMatches), len(wantedKeywords))
	experienceScore := experienceRelevance(profile, jobDesc)

	score := round2(skillScore*skillWeight + keywordScore*keywordWeight + experienceScore*experienceWeight)

	return &types.MatchResult{
		ATSScore:        score,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		KeywordMatches:  keywordMatches,
		MissingKeywords: missingKeywords,
		Recommendations: recommendations(missing, missingKeywords, profile),
		OverallFeedback: feedback(score, len(matching), len(missing)),
	}
}

// loweredSkillNames returns the profile's extracted skill names, lowercased.
func loweredSkillNames(profile *types.CandidateProfile) []string {
	names := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		names = append(names, strings.ToLower(s.Name))
	}
	return names
}

// foundIn returns the vocabulary entries present in the lowered text.
func foundIn(lowerText string, vocabulary []string) []string {
	var found []string
	for _, entry := range vocabulary {
		if strings.Contains(lowerText, entry) {
			found = append(found, entry)
		}
	}
	return found
}

// partitionSkills splits wanted job skills into matched and missing using
// bidirectional substring containment, tolerating partial-name variants in
// either direction.
func partitionSkills(resumeSkills, wantedSkills []string) (matching, missing []string) {
	matching = []string{}
	missing = []string{}
	for _, want := range wantedSkills {
		if skillMatched(resumeSkills, want) {
			matching = append(matching, want)
		} else {
			missing = append(missing, want)
		}
	}
	return matching, missing
}

func skillMatched(resumeSkills []string, want string) bool {
	for _, have := range resumeSkills {
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

// partitionKeywords splits wanted keywords into those present in the resume
// text and those absent.
func partitionKeywords(resumeText string, wantedKeywords []string) (matches, missing []string) {
	matches = []string{}
	missing = []string{}
	for _, kw := range wantedKeywords {
		if strings.Contains(resumeText, kw) {
			matches = append(matches, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matches, missing
}

// percentOf returns matched/total as a percentage, with full credit when the
// job description asked for nothing.
func percentOf(matched, total int) float64 {
	if total == 0 {
		return 100.0
	}
	return float64(matched) / float64(total) * 100.0
}

// experienceRelevance scores how the candidate's experience stacks up against
// the level the job description asks for. Candidates with no experience
// records at all get a neutral 50.
func experienceRelevance(profile *types.CandidateProfile, jobDesc string) float64 {
	if len(profile.Experience) == 0 {
		return 50.0
	}

	years := float64(profile.TotalExperienceYears)
	switch {
	case strings.Contains(jobDesc, "entry level") || strings.Contains(jobDesc, "0-2 years"):
		return 100.0
	case strings.Contains(jobDesc, "mid level") || strings.Contains(jobDesc, "3-5 years"):
		if years >= 3 {
			return 100.0
		}
		return math.Max(50.0, years*20.0)
	case strings.Contains(jobDesc, "senior") || strings.Contains(jobDesc, "5+ years"):
		if years >= 5 {
			return 100.0
		}
		return math.Max(30.0, years*15.0)
	}
	return math.Min(100.0, years*10.0+50.0)
}

// recommendations produces the fixed-order recommendation list. Each entry is
// appended only when its trigger condition holds; the formatting tip is
// always appended last.
func recommendations(missingSkills, missingKeywords []string, profile *types.CandidateProfile) []types.Recommendation {
	recs := []types.Recommendation{}

	if len(missingSkills) > 0 {
		listed := missingSkills
		if len(listed) > maxListedMissingSkills {
			listed = listed[:maxListedMissingSkills]
		}
		recs = append(recs, types.Recommendation{
			Category:   "Skills",
			Issue:      "Missing key technical skills: " + strings.Join(listed, ", "),
			Suggestion: "Consider adding these skills to your resume if you have experience with them, or highlight similar/related technologies",
			Priority:   types.PriorityHigh,
		})
	}

	if len(missingKeywords) > 0 {
		recs = append(recs, types.Recommendation{
			Category:   "Keywords",
			Issue:      "Missing important keywords from job description",
			Suggestion: "Incorporate relevant keywords naturally throughout your resume, especially in summary and experience sections",
			Priority:   types.PriorityMedium,
		})
	}

	if len(profile.Experience) == 0 {
		recs = append(recs, types.Recommendation{
			Category:   "Experience",
			Issue:      "No work experience detected",
			Suggestion: "Add internships, projects, or volunteer work that demonstrates relevant skills",
			Priority:   types.PriorityHigh,
		})
	}

	if len(profile.Education) == 0 {
		recs = append(recs, types.Recommendation{
			Category:   "Education",
			Issue:      "Education information not clearly formatted",
			Suggestion: "Ensure education section is clearly labeled with degree, institution, and graduation year",
			Priority:   types.PriorityMedium,
		})
	}

	recs = append(recs, types.Recommendation{
		Category:   "Format",
		Issue:      "Optimize for ATS scanning",
		Suggestion: "Use standard section headings (Summary, Experience, Education, Skills), avoid complex formatting, tables, or graphics",
		Priority:   types.PriorityMedium,
	})

	return recs
}

// feedback renders the banded overall feedback sentence.
func feedback(score float64, matchingCount, missingCount int) string {
	var b strings.Builder

	switch {
	case score >= 80:
		b.WriteString("Excellent ATS compatibility! Your resume aligns well with the job requirements. ")
	case score >= 60:
		b.WriteString("Good ATS score with room for improvement. ")
	case score >= 40:
		b.WriteString("Moderate ATS compatibility. Consider significant improvements. ")
	default:
		b.WriteString("Low ATS score. Major improvements needed for better job matching. ")
	}

	fmt.Fprintf(&b, "You match %d key requirements", matchingCount)
	if missingCount > 0 {
		fmt.Fprintf(&b, " and could strengthen your profile by adding %d missing skills.", missingCount)
	} else {
		b.WriteString(".")
	}

	return b.String()
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
