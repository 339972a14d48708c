// Package types defines the shared data model for the resume analysis pipeline.
package types

// Seniority levels derived from total years of experience.
const (
	SeniorityEntry  = "Entry Level"
	SeniorityJunior = "Junior"
	SeniorityMid    = "Mid-Level"
	SenioritySenior = "Senior"
	SeniorityExpert = "Expert/Lead"
)

// PersonalInfo holds identity fields extracted from a resume.
// Every field is optional and populated at most once (first match wins).
type PersonalInfo struct {
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`
	GitHubURL   string `json:"github_url,omitempty"`
}

// SkillRecord is a single categorized skill with an extraction confidence.
// The (Name, Category) pair is unique within a profile.
type SkillRecord struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Mentions   int     `json:"mentions,omitempty"`
	Context    string  `json:"context,omitempty"`
}

// ExperienceRecord is a line captured from the work-experience portion of a
// resume. Records are extraction artifacts, not authoritative; a profile with
// zero records is valid.
type ExperienceRecord struct {
	Description    string `json:"description"`
	DurationMonths int    `json:"duration_months,omitempty"`
}

// EducationRecord is a line captured from the education portion of a resume.
type EducationRecord struct {
	Description string `json:"description"`
	Degree      string `json:"degree,omitempty"`
}

// CandidateProfile is the aggregate built by the pipeline. Stages mutate it
// field by field; once built it is treated as read-only by the ATS matcher.
type CandidateProfile struct {
	PersonalInfo         PersonalInfo       `json:"personal_info"`
	Skills               []SkillRecord      `json:"skills,omitempty"`
	Experience           []ExperienceRecord `json:"experience,omitempty"`
	Education            []EducationRecord  `json:"education,omitempty"`
	TotalExperienceYears int                `json:"total_experience_years"`
	Seniority            string             `json:"seniority"`
	Summary              string             `json:"summary,omitempty"`
	ProcessedText        string             `json:"processed_text,omitempty"`
}

// SkillCount returns the number of distinct skill entries.
func (p *CandidateProfile) SkillCount() int {
	return len(p.Skills)
}

// IdentityFieldCount returns how many of the five scored identity fields
// (name, email, phone, LinkedIn, GitHub) are populated. Address is tracked
// but does not contribute to completeness scoring.
func (p *CandidateProfile) IdentityFieldCount() int {
	n := 0
	for _, v := range []string{
		p.PersonalInfo.FullName,
		p.PersonalInfo.Email,
		p.PersonalInfo.PhoneNumber,
		p.PersonalInfo.LinkedInURL,
		p.PersonalInfo.GitHubURL,
	} {
		if v != "" {
			n++
		}
	}
	return n
}
