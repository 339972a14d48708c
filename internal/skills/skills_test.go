package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRecord(records []Record, name, category string) *Record {
	for i := range records {
		if records[i].Name == name && records[i].Category == category {
			return &records[i]
		}
	}
	return nil
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Nil(t, Extract(""))
}

func TestExtract_CatalogueMatching(t *testing.T) {
	records := Extract("Built services in Java and Python, deployed on AWS with Docker")

	require.NotNil(t, findRecord(records, "Java", CategoryLanguages))
	require.NotNil(t, findRecord(records, "Python", CategoryLanguages))
	require.NotNil(t, findRecord(records, "AWS", CategoryCloud))
	require.NotNil(t, findRecord(records, "Docker", CategoryCloud))
	assert.Nil(t, findRecord(records, "React", CategoryWeb))
}

func TestExtract_WordBoundaries(t *testing.T) {
	// "Java" must not fire inside "JavaScript".
	records := Extract("JavaScript developer")
	assert.Nil(t, findRecord(records, "Java", CategoryLanguages))
	assert.NotNil(t, findRecord(records, "JavaScript", CategoryLanguages))
}

func TestExtract_DuplicateCategories(t *testing.T) {
	// Swift is catalogued under both languages and mobile.
	records := Extract("Swift developer")
	assert.NotNil(t, findRecord(records, "Swift", CategoryLanguages))
	assert.NotNil(t, findRecord(records, "Swift", CategoryMobile))
}

func TestExtract_CountsMentions(t *testing.T) {
	records := Extract("Python scripts, Python services and more python tooling")
	rec := findRecord(records, "Python", CategoryLanguages)
	require.NotNil(t, rec)
	assert.Equal(t, 3, rec.Mentions)
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		skill    string
		expected float64
	}{
		{"bare mention", "java", "Java", 0.6},
		{"single context after", "java experience", "Java", 0.7},
		{"single context before", "using java", "Java", 0.7},
		{"suffix bonus", "java development", "Java", 0.8}, // "development" is also a context phrase
		{"proficiency prefix", "expert java", "Java", 0.8},
		{"advanced prefix", "advanced java", "Java", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Confidence(strings.ToLower(tt.text), tt.skill), 1e-9)
		})
	}
}

func TestConfidence_ExpertPrefixNotDoubleCounted(t *testing.T) {
	// "expert java" earns the 0.2 proficiency bonus; the "expert" context
	// phrase must not also add 0.1 for the same occurrence.
	got := Confidence("expert java", "Java")
	assert.InDelta(t, 0.8, got, 1e-9)

	// "java expert" is context-after only, no proficiency prefix.
	got = Confidence("java expert", "Java")
	assert.InDelta(t, 0.7, got, 1e-9)
}

func TestConfidence_ClampedAtOne(t *testing.T) {
	text := "expert java experience proficient java skilled java using java " +
		"with java in java knowledge java java development java programming"
	assert.InDelta(t, 1.0, Confidence(text, "Java"), 1e-9)
}

func TestExtractSoft(t *testing.T) {
	found := ExtractSoft("Strong leadership and communication, focused on problem solving")
	assert.Contains(t, found, "Leadership")
	assert.Contains(t, found, "Communication")
	assert.Contains(t, found, "Problem Solving")
	assert.NotContains(t, found, "Creativity")
}

func TestMatchRequired(t *testing.T) {
	text := "Senior engineer with Java experience and some Python"

	tests := []struct {
		name     string
		required []string
		expected float64
	}{
		{"empty list scores zero", []string{}, 0.0},
		{"absent skill", []string{"Rust"}, 0.0},
		{"present skill", []string{"Python"}, 0.6},
		{"present with experience bump", []string{"Java"}, 0.8},
		{"averaged", []string{"Java", "Rust"}, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MatchRequired(text, tt.required), 1e-9)
		})
	}
}
