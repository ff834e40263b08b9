package extraction

import (
	"strings"
	"testing"

	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(vocabulary.New())
}

func findSkill(skills []types.ExtractedSkill, name string) (types.ExtractedSkill, bool) {
	for _, s := range skills {
		if s.Name == name {
			return s, true
		}
	}
	return types.ExtractedSkill{}, false
}

func TestExtract_ContextPatternsFindSkills(t *testing.T) {
	e := newExtractor(t)

	text := "Experienced in Python and proficient in Machine Learning."
	skills := e.Extract(text, 0.3)

	python, ok := findSkill(skills, "Python")
	require.True(t, ok, "Python should be extracted")
	assert.Equal(t, types.CategoryTechnical, python.Category)
	assert.Contains(t, []types.MatchMethod{types.MethodExact, types.MethodContextual}, python.Method)

	ml, ok := findSkill(skills, "Machine Learning")
	require.True(t, ok, "Machine Learning should be extracted")
	assert.Contains(t, []types.MatchMethod{types.MethodExact, types.MethodContextual}, ml.Method)
}

func TestExtract_EmptyTextYieldsEmptyResult(t *testing.T) {
	e := newExtractor(t)

	assert.Empty(t, e.Extract("", 0.3))
	assert.Empty(t, e.Extract("   \n\t  ", 0.3))
}

func TestExtract_MalformedTextNeverPanics(t *testing.T) {
	e := newExtractor(t)

	inputs := []string{
		"|||||....####",
		strings.Repeat("((", 500),
		"\x00\x01\x02",
		"experienced in ",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { e.Extract(input, 0.3) })
	}
}

func TestExtract_VariationResolvesToCanonical(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("My skills include k8s and golang in production.", 0.3)

	kube, ok := findSkill(skills, "Kubernetes")
	require.True(t, ok)
	assert.Equal(t, types.MethodVariation, kube.Method)

	goSkill, ok := findSkill(skills, "Go")
	require.True(t, ok)
	assert.Equal(t, types.MethodVariation, goSkill.Method)

	// The variation surface must not also appear as a separate skill.
	_, ok = findSkill(skills, "k8s")
	assert.False(t, ok)
}

func TestExtract_AcronymMatch(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("Skills: built NLP services at scale.", 0.3)

	nlp, ok := findSkill(skills, "Natural Language Processing")
	require.True(t, ok)
	assert.Equal(t, types.MethodAcronym, nlp.Method)
}

func TestExtract_LowercaseProseDoesNotTriggerAcronyms(t *testing.T) {
	e := newExtractor(t)

	// "ml" inside ordinary prose must not become Machine Learning.
	skills := e.Extract("Worked on html layouts and email campaigns.", 0.1)

	_, ok := findSkill(skills, "Machine Learning")
	assert.False(t, ok)
}

func TestExtract_DeduplicationKeepsHighestConfidence(t *testing.T) {
	e := newExtractor(t)

	text := "Skills: Python, Python, Python. Experienced in Python web services."
	skills := e.Extract(text, 0.3)

	count := 0
	for _, s := range skills {
		if s.Name == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one entry per canonical skill")

	python, _ := findSkill(skills, "Python")
	assert.GreaterOrEqual(t, python.Occurrences, 3)
}

func TestExtract_ConfidenceThresholdFilters(t *testing.T) {
	e := newExtractor(t)

	text := "Python mentioned once, nothing else."
	permissive := e.Extract(text, 0.1)
	strict := e.Extract(text, 0.99)

	_, ok := findSkill(permissive, "Python")
	assert.True(t, ok)
	assert.Empty(t, strict)
}

func TestExtract_ConfidenceWithinBounds(t *testing.T) {
	e := newExtractor(t)

	text := strings.Repeat("Python Docker Kubernetes AWS skills experience projects. ", 20)
	skills := e.Extract(text, 0.1)
	require.NotEmpty(t, skills)

	for _, s := range skills {
		assert.GreaterOrEqual(t, s.Confidence, 0.1)
		assert.LessOrEqual(t, s.Confidence, 1.0)
		require.NoError(t, s.Validate())
	}
}

func TestExtract_SupportingSentencesCapped(t *testing.T) {
	e := newExtractor(t)

	text := "Python first. Python second. Python third. Python fourth. Python fifth."
	skills := e.Extract(text, 0.3)

	python, ok := findSkill(skills, "Python")
	require.True(t, ok)
	assert.LessOrEqual(t, len(python.Sentences), 3)
	for _, sentence := range python.Sentences {
		assert.Contains(t, strings.ToLower(sentence), "python")
	}
}

func TestExtract_FuzzyCatchesNearMissSpelling(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("Skills: deployed workloads on Kubernets clusters.", 0.3)

	kube, ok := findSkill(skills, "Kubernetes")
	require.True(t, ok)
	assert.GreaterOrEqual(t, kube.Confidence, 0.3)
}

func TestExtract_ShortTokenRequiresStandaloneMatch(t *testing.T) {
	e := newExtractor(t)

	// "go" must not fire inside "google" or "cargo".
	skills := e.Extract("Searched google and shipped cargo.", 0.1)
	_, ok := findSkill(skills, "Go")
	assert.False(t, ok)

	skills = e.Extract("We write Go services.", 0.1)
	_, ok = findSkill(skills, "Go")
	assert.True(t, ok)
}

func TestExtract_DeterministicOrder(t *testing.T) {
	e := newExtractor(t)

	text := "Skills: Python, Docker, Kubernetes, AWS, Git, Leadership."
	first := e.Extract(text, 0.3)
	second := e.Extract(text, 0.3)

	assert.Equal(t, first, second)
}

func TestSimilarityRatio(t *testing.T) {
	assert.Equal(t, 1.0, similarityRatio("python", "python"))
	assert.InDelta(t, 0.9, similarityRatio("kubernets", "kubernetes"), 0.01)
	assert.Less(t, similarityRatio("java", "kubernetes"), 0.4)
}
