package types

// Recommendation priorities.
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// JobRequirement describes the job a profile is matched against.
// It is supplied by the caller and never persisted.
type JobRequirement struct {
	JobDescription string `json:"job_description" validate:"required"`
	JobTitle       string `json:"job_title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
}

// Recommendation is a single actionable suggestion produced by the matcher.
type Recommendation struct {
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// MatchResult is the outcome of matching a profile against a job requirement.
// The score is in [0,100] rounded to two decimals.
type MatchResult struct {
	ATSScore        float64          `json:"ats_score"`
	MatchingSkills  []string         `json:"matching_skills"`
	MissingSkills   []string         `json:"missing_skills"`
	KeywordMatches  []string         `json:"keyword_matches"`
	MissingKeywords []string         `json:"missing_keywords"`
	Recommendations []Recommendation `json:"recommendations"`
	OverallFeedback string           `json:"overall_feedback"`
}
