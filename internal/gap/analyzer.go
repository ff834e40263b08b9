// Package gap classifies job-description skills against resume skills
// and produces the prioritized gap report.
package gap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/similarity"
	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

// Classification thresholds. MatchedThreshold is fixed; the partial
// floor is configurable per analyzer.
const (
	MatchedThreshold           = 0.9
	DefaultSimilarityThreshold = 0.6

	// candidateFloor is the diagnostic floor below which a missing
	// skill's best resume candidate is not worth reporting.
	candidateFloor = 0.3

	// lexicalPartialSimilarity is the fixed score the lexical fallback
	// assigns to any substring containment, regardless of length ratio.
	lexicalPartialSimilarity = 0.6

	lexicalProviderName = "lexical"
)

// Analyzer matches resume skills against job-description skills.
// It is stateless between calls; concurrent Analyze calls share the
// injected provider, which must be safe for concurrent use.
type Analyzer struct {
	provider  similarity.Provider
	vocab     *vocabulary.Vocabulary
	threshold float64
}

// NewAnalyzer creates an Analyzer. The partial-match threshold must be
// in [0,1]; an out-of-range value is a configuration error reported at
// construction, before any analysis runs.
func NewAnalyzer(provider similarity.Provider, vocab *vocabulary.Vocabulary, threshold float64) (*Analyzer, error) {
	if provider == nil {
		return nil, fmt.Errorf("analyzer requires a similarity provider")
	}
	if vocab == nil {
		return nil, fmt.Errorf("analyzer requires a vocabulary")
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("similarity threshold %f outside [0,1]", threshold)
	}
	return &Analyzer{provider: provider, vocab: vocab, threshold: threshold}, nil
}

// Analyze classifies every job-description skill as matched, partial,
// or missing and computes the overall match score. Exactly one
// SkillMatch is produced per element of jdSkills, in input order across
// the three classification buckets.
//
// If the similarity provider is unavailable the analysis degrades to a
// pure lexical comparison and the result is flagged Degraded; any other
// encoding error fails the analysis.
func (a *Analyzer) Analyze(ctx context.Context, resumeSkills, jdSkills []string) (*types.GapAnalysisResult, error) {
	return a.AnalyzeWithMultiset(ctx, resumeSkills, jdSkills, jdSkills)
}

// AnalyzeWithMultiset is Analyze with an explicit job-description skill
// multiset for gap importance. jdSkills drives matching; jdMultiset
// (typically the pre-deduplication skill list) drives how important
// each missing skill is ranked.
func (a *Analyzer) AnalyzeWithMultiset(ctx context.Context, resumeSkills, jdSkills, jdMultiset []string) (*types.GapAnalysisResult, error) {
	if len(jdSkills) == 0 {
		return a.finish(&types.GapAnalysisResult{Provider: a.provider.Name()}, jdMultiset), nil
	}
	if len(resumeSkills) == 0 {
		result := &types.GapAnalysisResult{Provider: a.provider.Name()}
		for _, jd := range jdSkills {
			result.Missing = append(result.Missing, types.SkillMatch{
				JDSkill:        jd,
				Similarity:     0,
				Classification: types.ClassificationMissing,
			})
		}
		return a.finish(result, jdMultiset), nil
	}

	vectors, err := a.encodeUnion(ctx, resumeSkills, jdSkills)
	if err != nil {
		// Only provider unavailability degrades to the lexical fallback;
		// anything else is a real analysis failure.
		if !errors.Is(err, similarity.ErrUnavailable) {
			return nil, fmt.Errorf("encoding skills failed: %w", err)
		}
		log.Printf("[GAP] degraded to lexical matching: %v", err)
		return a.finish(a.lexical(resumeSkills, jdSkills), jdMultiset), nil
	}

	resumeVecs := make([][]float32, len(resumeSkills))
	for i, name := range resumeSkills {
		resumeVecs[i] = vectors[strings.ToLower(name)]
	}
	jdVecs := make([][]float32, len(jdSkills))
	for i, name := range jdSkills {
		jdVecs[i] = vectors[strings.ToLower(name)]
	}

	matrix := similarity.Matrix(resumeVecs, jdVecs)

	result := &types.GapAnalysisResult{
		SimilarityMatrix: matrix,
		Provider:         a.provider.Name(),
	}
	for j, jd := range jdSkills {
		best, bestIdx := matrix[0][j], 0
		for i := 1; i < len(resumeSkills); i++ {
			if matrix[i][j] > best {
				best, bestIdx = matrix[i][j], i
			}
		}
		appendMatch(result, a.classify(jd, resumeSkills[bestIdx], best))
	}
	return a.finish(result, jdMultiset), nil
}

// encodeUnion embeds the unique lowercase names of both skill lists in
// one batched provider call and returns a name-keyed vector lookup.
func (a *Analyzer) encodeUnion(ctx context.Context, resumeSkills, jdSkills []string) (map[string][]float32, error) {
	seen := make(map[string]bool)
	var names []string
	for _, name := range append(append([]string{}, resumeSkills...), jdSkills...) {
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			names = append(names, name)
		}
	}

	vectors, err := a.provider.Encode(ctx, names)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(names) {
		return nil, fmt.Errorf("provider returned %d vectors for %d names", len(vectors), len(names))
	}

	byName := make(map[string][]float32, len(names))
	for i, name := range names {
		byName[strings.ToLower(name)] = vectors[i]
	}
	return byName, nil
}

// classify applies the threshold rules to one job-description skill.
// A missing skill still records its best similarity for diagnostics,
// but names the candidate only above the diagnostic floor.
func (a *Analyzer) classify(jdSkill, resumeSkill string, score float64) types.SkillMatch {
	m := types.SkillMatch{JDSkill: jdSkill, Similarity: score}
	switch {
	case score >= MatchedThreshold:
		m.Classification = types.ClassificationMatched
		m.ResumeSkill = resumeSkill
	case score >= a.threshold:
		m.Classification = types.ClassificationPartial
		m.ResumeSkill = resumeSkill
	default:
		m.Classification = types.ClassificationMissing
		if score > candidateFloor {
			m.ResumeSkill = resumeSkill
		}
	}
	return m
}

// lexical is the provider-free fallback: exact case-insensitive
// equality counts as matched, substring containment either direction as
// partial, everything else as missing. The result has the same shape
// as the embedding path so callers never branch on which ran.
func (a *Analyzer) lexical(resumeSkills, jdSkills []string) *types.GapAnalysisResult {
	result := &types.GapAnalysisResult{
		Degraded: true,
		Provider: lexicalProviderName,
	}
	for _, jd := range jdSkills {
		jdLower := strings.ToLower(jd)
		match := types.SkillMatch{
			JDSkill:        jd,
			Classification: types.ClassificationMissing,
		}
		for _, resume := range resumeSkills {
			resumeLower := strings.ToLower(resume)
			if resumeLower == jdLower {
				match.ResumeSkill = resume
				match.Similarity = 1.0
				match.Classification = types.ClassificationMatched
				break
			}
			if match.Classification == types.ClassificationMissing &&
				(strings.Contains(resumeLower, jdLower) || strings.Contains(jdLower, resumeLower)) {
				match.ResumeSkill = resume
				match.Similarity = lexicalPartialSimilarity
				match.Classification = types.ClassificationPartial
			}
		}
		appendMatch(result, match)
	}
	return result
}

// appendMatch files a SkillMatch into the bucket its classification
// names, preserving job-description order within each bucket.
func appendMatch(result *types.GapAnalysisResult, m types.SkillMatch) {
	switch m.Classification {
	case types.ClassificationMatched:
		result.Matched = append(result.Matched, m)
	case types.ClassificationPartial:
		result.Partial = append(result.Partial, m)
	default:
		result.Missing = append(result.Missing, m)
	}
}

// finish computes the overall score and priority gaps on a populated
// result.
func (a *Analyzer) finish(result *types.GapAnalysisResult, jdMultiset []string) *types.GapAnalysisResult {
	total := len(result.Matched) + len(result.Partial) + len(result.Missing)
	if total > 0 {
		score := (float64(len(result.Matched)) + 0.5*float64(len(result.Partial))) / float64(total) * 100
		result.OverallScore = clamp(score, 0, 100)
	}
	result.PriorityGaps = Prioritize(result.Missing, jdMultiset, a.vocab)
	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
