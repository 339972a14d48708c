// Package pipeline orchestrates the resume analysis stages over a single
// document.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/resumelab/resume-analyzer/internal/education"
	"github.com/resumelab/resume-analyzer/internal/experience"
	"github.com/resumelab/resume-analyzer/internal/ingestion"
	"github.com/resumelab/resume-analyzer/internal/personal"
	"github.com/resumelab/resume-analyzer/internal/skills"
	"github.com/resumelab/resume-analyzer/internal/summary"
	"github.com/resumelab/resume-analyzer/internal/types"
)

// Process runs the full extraction pipeline over raw resume text and returns
// the assembled profile. It never returns an error for bad input: empty or
// undecodable text produces a profile with all optional fields unset, zero
// experience years and entry-level seniority.
//
// After normalization the four extractors run as parallel tasks. Each one
// reads only the normalized text and writes a disjoint set of profile fields,
// so no locking is needed; the summary generator runs after the join since it
// reads every prior output.
func Process(ctx context.Context, text string) *types.CandidateProfile {
	profile := &types.CandidateProfile{Seniority: types.SeniorityEntry}

	normalized := ingestion.PreprocessText(text)
	if normalized == "" {
		return profile
	}
	profile.ProcessedText = normalized

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		personal.Extract(&profile.PersonalInfo, normalized)
		return nil
	})
	g.Go(func() error {
		for _, r := range skills.Extract(normalized) {
			profile.Skills = append(profile.Skills, types.SkillRecord{
				Name:       r.Name,
				Category:   r.Category,
				Confidence: r.Confidence,
				Mentions:   r.Mentions,
			})
		}
		return nil
	})
	g.Go(func() error {
		result := experience.Calculate(normalized)
		profile.TotalExperienceYears = result.TotalYears
		profile.Seniority = result.Seniority
		profile.Experience = result.Records
		return nil
	})
	g.Go(func() error {
		profile.Education = education.Extract(normalized)
		return nil
	})

	// Extractors never fail; the group exists for the join and ctx plumbing.
	_ = g.Wait()

	summary.Generate(profile, normalized)
	return profile
}

// OverallScore computes the profile quality score for a processed profile.
func OverallScore(profile *types.CandidateProfile) float64 {
	return summary.CalculateOverallScore(profile, profile.ProcessedText)
}

// SkillMatch scores a list of required skills against the original resume
// text, returning the average per-skill confidence in [0,1].
func SkillMatch(originalText string, requiredSkills []string) float64 {
	return skills.MatchRequired(originalText, requiredSkills)
}
