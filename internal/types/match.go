package types

import "fmt"

// MatchClassification is the three-way verdict for one required skill.
type MatchClassification string

// Classification values. Exactly one applies per job-description skill.
const (
	ClassificationMatched MatchClassification = "matched"
	ClassificationPartial MatchClassification = "partial"
	ClassificationMissing MatchClassification = "missing"
)

// SkillMatch is the matcher's verdict for a single job-description skill.
// ResumeSkill is empty when no resume candidate cleared the diagnostic
// floor; Similarity always records the best score found, even below the
// partial threshold.
type SkillMatch struct {
	JDSkill        string              `json:"jd_skill"`
	ResumeSkill    string              `json:"resume_skill,omitempty"`
	Similarity     float64             `json:"similarity"`
	Classification MatchClassification `json:"classification"`
}

// Validate checks the internal invariants of a SkillMatch.
func (m *SkillMatch) Validate() error {
	if m.JDSkill == "" {
		return fmt.Errorf("skill match has empty jd_skill")
	}
	switch m.Classification {
	case ClassificationMatched, ClassificationPartial, ClassificationMissing:
	default:
		return fmt.Errorf("skill match %q has invalid classification %q", m.JDSkill, m.Classification)
	}
	if m.Similarity < -1 || m.Similarity > 1 {
		return fmt.Errorf("skill match %q has similarity %f outside [-1,1]", m.JDSkill, m.Similarity)
	}
	return nil
}

// PriorityTier buckets a gap by urgency.
type PriorityTier string

// Priority tiers, derived from normalized importance.
const (
	PriorityHigh   PriorityTier = "high"
	PriorityMedium PriorityTier = "medium"
	PriorityLow    PriorityTier = "low"
)

// PriorityGap is a missing skill annotated with urgency and guidance.
type PriorityGap struct {
	Skill           string       `json:"skill"`
	Priority        PriorityTier `json:"priority"`
	Importance      float64      `json:"importance"`
	Similarity      float64      `json:"similarity"`
	SuggestedAction string       `json:"suggested_action"`
}

// GapAnalysisResult is the aggregate outcome for one resume/JD pair.
// It is created once per analysis and read-only afterward.
type GapAnalysisResult struct {
	Matched []SkillMatch `json:"matched"`
	Partial []SkillMatch `json:"partial"`
	Missing []SkillMatch `json:"missing"`

	// OverallScore is 0-100: full credit per matched skill, half per partial.
	OverallScore float64 `json:"overall_score"`

	// SimilarityMatrix is resume-skills x jd-skills, kept for visualization.
	// Nil when the lexical fallback ran.
	SimilarityMatrix [][]float64 `json:"similarity_matrix,omitempty"`

	PriorityGaps []PriorityGap `json:"priority_gaps"`

	// Degraded is true when the similarity provider was unavailable and
	// the lexical fallback produced this result.
	Degraded bool `json:"degraded"`
	// Provider names the similarity backend that produced this result.
	Provider string `json:"provider"`
}

// AllMatches returns every SkillMatch in classification order
// (matched, partial, missing). The result has exactly one entry per
// job-description skill.
func (r *GapAnalysisResult) AllMatches() []SkillMatch {
	all := make([]SkillMatch, 0, len(r.Matched)+len(r.Partial)+len(r.Missing))
	all = append(all, r.Matched...)
	all = append(all, r.Partial...)
	all = append(all, r.Missing...)
	return all
}

// Validate checks the aggregate invariants of a GapAnalysisResult.
func (r *GapAnalysisResult) Validate() error {
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return fmt.Errorf("overall score %f outside [0,100]", r.OverallScore)
	}
	for i := range r.Matched {
		if r.Matched[i].Classification != ClassificationMatched {
			return fmt.Errorf("match %q misfiled under matched", r.Matched[i].JDSkill)
		}
	}
	for i := range r.Partial {
		if r.Partial[i].Classification != ClassificationPartial {
			return fmt.Errorf("match %q misfiled under partial", r.Partial[i].JDSkill)
		}
	}
	for i := range r.Missing {
		if r.Missing[i].Classification != ClassificationMissing {
			return fmt.Errorf("match %q misfiled under missing", r.Missing[i].JDSkill)
		}
	}
	for i := range r.PriorityGaps {
		g := &r.PriorityGaps[i]
		if g.Importance < 0 || g.Importance > 1 {
			return fmt.Errorf("priority gap %q has importance %f outside [0,1]", g.Skill, g.Importance)
		}
	}
	return nil
}
