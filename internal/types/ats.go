package types

import "fmt"

// ScoreCategory is the qualitative bucket for an ATS score.
type ScoreCategory string

// Score categories, from best to worst.
const (
	ScoreExcellent ScoreCategory = "excellent"
	ScoreGood      ScoreCategory = "good"
	ScoreAverage   ScoreCategory = "average"
	ScorePoor      ScoreCategory = "poor"
)

// CategoryForScore maps a [0,1] score to its qualitative bucket.
func CategoryForScore(score float64) ScoreCategory {
	switch {
	case score >= 0.8:
		return ScoreExcellent
	case score >= 0.6:
		return ScoreGood
	case score >= 0.4:
		return ScoreAverage
	default:
		return ScorePoor
	}
}

// FactorScore is one independently computed ATS factor with guidance.
type FactorScore struct {
	Score           float64       `json:"score"`
	Category        ScoreCategory `json:"category"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// ATSResult is the outcome of the ATS compatibility scorer. It is
// independent of the gap analysis and shares no mutable state with it.
type ATSResult struct {
	OverallScore  float64       `json:"overall_score"`
	ScoreCategory ScoreCategory `json:"score_category"`

	KeywordMatch        FactorScore `json:"keyword_match"`
	Formatting          FactorScore `json:"formatting"`
	SectionCompleteness FactorScore `json:"section_completeness"`
	Readability         FactorScore `json:"readability"`
	ExperienceRelevance FactorScore `json:"experience_relevance"`

	MissingKeywords  []string `json:"missing_keywords,omitempty"`
	FormattingIssues []string `json:"formatting_issues,omitempty"`
}

// Validate checks that every factor and the composite are within [0,1].
func (r *ATSResult) Validate() error {
	if r.OverallScore < 0 || r.OverallScore > 1 {
		return fmt.Errorf("ats overall score %f outside [0,1]", r.OverallScore)
	}
	factors := map[string]FactorScore{
		"keyword_match":        r.KeywordMatch,
		"formatting":           r.Formatting,
		"section_completeness": r.SectionCompleteness,
		"readability":          r.Readability,
		"experience_relevance": r.ExperienceRelevance,
	}
	for name, f := range factors {
		if f.Score < 0 || f.Score > 1 {
			return fmt.Errorf("ats factor %s score %f outside [0,1]", name, f.Score)
		}
	}
	return nil
}
