package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		match   SkillMatch
		wantErr bool
	}{
		{
			name:  "valid matched",
			match: SkillMatch{JDSkill: "Python", ResumeSkill: "Python", Similarity: 1.0, Classification: ClassificationMatched},
		},
		{
			name:  "valid missing with no candidate",
			match: SkillMatch{JDSkill: "Kubernetes", Similarity: 0.0, Classification: ClassificationMissing},
		},
		{
			name:    "empty jd skill",
			match:   SkillMatch{Similarity: 0.5, Classification: ClassificationPartial},
			wantErr: true,
		},
		{
			name:    "bad classification",
			match:   SkillMatch{JDSkill: "Go", Similarity: 0.5, Classification: "maybe"},
			wantErr: true,
		},
		{
			name:    "similarity out of range",
			match:   SkillMatch{JDSkill: "Go", Similarity: 1.5, Classification: ClassificationMatched},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.match.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGapAnalysisResult_AllMatches(t *testing.T) {
	result := &GapAnalysisResult{
		Matched: []SkillMatch{{JDSkill: "Python", Similarity: 1.0, Classification: ClassificationMatched}},
		Partial: []SkillMatch{{JDSkill: "Docker", Similarity: 0.7, Classification: ClassificationPartial}},
		Missing: []SkillMatch{{JDSkill: "Kubernetes", Similarity: 0.0, Classification: ClassificationMissing}},
	}

	all := result.AllMatches()
	require.Len(t, all, 3)
	assert.Equal(t, "Python", all[0].JDSkill)
	assert.Equal(t, "Docker", all[1].JDSkill)
	assert.Equal(t, "Kubernetes", all[2].JDSkill)
}

func TestGapAnalysisResult_Validate_MisfiledMatch(t *testing.T) {
	result := &GapAnalysisResult{
		Matched:      []SkillMatch{{JDSkill: "Python", Similarity: 0.2, Classification: ClassificationMissing}},
		OverallScore: 50,
	}
	assert.Error(t, result.Validate())
}

func TestGapAnalysisResult_Validate_ScoreBounds(t *testing.T) {
	result := &GapAnalysisResult{OverallScore: 101}
	assert.Error(t, result.Validate())

	result.OverallScore = 100
	assert.NoError(t, result.Validate())
}

func TestExtractedSkill_Validate(t *testing.T) {
	valid := ExtractedSkill{
		Name:        "Python",
		Category:    CategoryTechnical,
		Confidence:  0.9,
		Occurrences: 2,
		Sentences:   []string{"Built services in Python."},
		Method:      MethodExact,
	}
	assert.NoError(t, valid.Validate())

	tooManySentences := valid
	tooManySentences.Sentences = []string{"a", "b", "c", "d"}
	assert.Error(t, tooManySentences.Validate())

	badCategory := valid
	badCategory.Category = "hobbies"
	assert.Error(t, badCategory.Validate())
}

func TestCategoryForScore(t *testing.T) {
	assert.Equal(t, ScoreExcellent, CategoryForScore(0.8))
	assert.Equal(t, ScoreGood, CategoryForScore(0.6))
	assert.Equal(t, ScoreAverage, CategoryForScore(0.4))
	assert.Equal(t, ScorePoor, CategoryForScore(0.39))
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	req := &AnalyzeRequest{ResumeText: "resume", JDText: "jd"}
	assert.NoError(t, req.Validate())

	missing := &AnalyzeRequest{JDText: "jd"}
	assert.Error(t, missing.Validate())

	outOfRange := &AnalyzeRequest{ResumeText: "r", JDText: "j", SimilarityThreshold: 1.5}
	assert.Error(t, outOfRange.Validate())
}

func TestRequestValidationSharedValidator(t *testing.T) {
	// All request types validate through the one package-level instance,
	// so repeated calls across types must stay independent and correct.
	for i := 0; i < 3; i++ {
		assert.NoError(t, (&AnalyzeRequest{ResumeText: "r", JDText: "j"}).Validate())
		assert.Error(t, (&ATSRequest{ResumeText: "r"}).Validate())
		assert.NoError(t, (&ATSRequest{ResumeText: "r", JDText: "j"}).Validate())
		assert.Error(t, (&TokenRequest{}).Validate())
		assert.NoError(t, (&TokenRequest{APIKey: "sk-test"}).Validate())
	}
}
