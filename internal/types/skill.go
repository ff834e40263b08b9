// Package types provides type definitions for structured data used throughout the skill gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// SkillCategory classifies a skill in the vocabulary.
type SkillCategory string

// Skill categories recognized by the vocabulary. The set is fixed;
// extending it means updating the vocabulary catalog.
const (
	CategoryTechnical      SkillCategory = "technical"
	CategorySoft           SkillCategory = "soft"
	CategoryTools          SkillCategory = "tools"
	CategoryCertifications SkillCategory = "certifications"
	// CategoryUnknown is used for skills the vocabulary does not know.
	// It never appears in ExtractedSkill output, only at lookup boundaries.
	CategoryUnknown SkillCategory = "unknown"
)

// Valid reports whether c is one of the fixed vocabulary categories.
func (c SkillCategory) Valid() bool {
	switch c {
	case CategoryTechnical, CategorySoft, CategoryTools, CategoryCertifications:
		return true
	}
	return false
}

// MatchMethod records which detection strategy produced an extracted skill.
type MatchMethod string

// Detection strategies used by the extractor.
const (
	MethodExact      MatchMethod = "exact"
	MethodVariation  MatchMethod = "variation"
	MethodContextual MatchMethod = "contextual"
	MethodAcronym    MatchMethod = "acronym"
)

// MaxSupportingSentences caps the verbatim sentences kept per extracted skill.
const MaxSupportingSentences = 3

// ExtractedSkill is one skill mention found in a single document.
// Values are created by the extractor and never mutated afterward.
type ExtractedSkill struct {
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category"`
	Confidence  float64       `json:"confidence"`
	Occurrences int           `json:"occurrences"`
	Sentences   []string      `json:"sentences,omitempty"`
	Method      MatchMethod   `json:"method"`
}

// Validate checks the internal invariants of an ExtractedSkill.
func (s *ExtractedSkill) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("extracted skill has empty name")
	}
	if !s.Category.Valid() {
		return fmt.Errorf("extracted skill %q has invalid category %q", s.Name, s.Category)
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("extracted skill %q has confidence %f outside [0,1]", s.Name, s.Confidence)
	}
	if s.Occurrences < 0 {
		return fmt.Errorf("extracted skill %q has negative occurrence count", s.Name)
	}
	if len(s.Sentences) > MaxSupportingSentences {
		return fmt.Errorf("extracted skill %q has %d supporting sentences (max %d)",
			s.Name, len(s.Sentences), MaxSupportingSentences)
	}
	return nil
}

// SkillNames extracts the canonical names from a slice of extracted skills,
// preserving order.
func SkillNames(skills []ExtractedSkill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}
