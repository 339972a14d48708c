// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/resumelab/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if profile.PersonalInfo.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.PersonalInfo.FullName))
	}
	if profile.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", profile.PersonalInfo.Email))
	}
	if profile.PersonalInfo.PhoneNumber != "" {
		sb.WriteString(fmt.Sprintf("Phone:      %s\n", profile.PersonalInfo.PhoneNumber))
	}
	sb.WriteString(fmt.Sprintf("Experience: %d years (%s)\n", profile.TotalExperienceYears, profile.Seniority))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := profile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.1f)\n", skill.Name, skill.Confidence))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			entry := profile.Education[i].Description
			if len(entry) > 50 {
				entry = entry[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if len(profile.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Education)-3))
		}
		sb.WriteString("\n")
	}

	if profile.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary: %s\n", profile.Summary))
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs an ATS match result with score, skill gaps and
// recommendations.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score: %.2f\n\n", result.ATSScore))

	if len(result.MatchingSkills) > 0 {
		skills := strings.Join(result.MatchingSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Matching:  %s\n", skills))
	}
	if len(result.MissingSkills) > 0 {
		skills := strings.Join(result.MissingSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Missing:   %s\n", skills))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		count := min(len(result.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := result.Recommendations[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", rec.Priority, rec.Category))
			issue := rec.Issue
			if len(issue) > 48 {
				issue = issue[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", issue))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Feedback: %s", result.OverallFeedback))

	p.printBox("ATS MATCH RESULT", sb.String())
}
