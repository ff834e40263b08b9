// Package ats estimates how well a resume survives automated
// applicant-tracking parsers, independent of the skill gap analysis.
package ats

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// Factor weights of the composite score.
const (
	weightKeywordMatch        = 0.4
	weightFormatting          = 0.15
	weightSectionCompleteness = 0.15
	weightReadability         = 0.10
	weightExperienceRelevance = 0.20
)

// recommendationCut is the factor score below which the scorer emits
// improvement guidance.
const recommendationCut = 0.7

var wordPattern = regexp.MustCompile(`\b[\w]+\b`)

// stopwords excluded from keyword extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true, "with": true,
	"this": true, "that": true, "these": true, "those": true,
	"have": true, "has": true, "had": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "must": true, "shall": true,
	"was": true, "were": true, "been": true, "being": true,
	"they": true, "them": true, "their": true, "your": true, "our": true,
}

// sectionKeywordGroups drive the completeness factor. Each group
// present in the resume is worth an equal share.
var sectionKeywordGroups = []struct {
	name     string
	keywords []string
}{
	{"contact", []string{"email", "phone", "address", "linkedin", "github"}},
	{"summary", []string{"summary", "objective", "profile", "about"}},
	{"experience", []string{"experience", "work", "employment", "job"}},
	{"education", []string{"education", "university", "college", "degree"}},
	{"skills", []string{"skills", "competencies", "abilities", "expertise"}},
	{"projects", []string{"projects", "portfolio", "work"}},
}

// decorativeChars trip older ATS parsers; each found kind costs a
// small formatting penalty.
var decorativeChars = []string{"•", "■", "◆", "★", "✓", "✗"}

// Scorer evaluates resume text against ATS heuristics. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct{}

// NewScorer creates a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the weighted five-factor compatibility result. Skill
// lists are the canonical names the extractor produced for each
// document; text inputs are the raw documents.
func (s *Scorer) Score(resumeText, jdText string, resumeSkills, jdSkills []string) *types.ATSResult {
	keyword := keywordMatchScore(resumeSkills, jdSkills)
	formatting := formattingScore(resumeText)
	sections := sectionCompletenessScore(resumeText)
	readability := readabilityScore(resumeText)
	relevance := experienceRelevanceScore(resumeText, jdText)

	overall := keyword*weightKeywordMatch +
		formatting*weightFormatting +
		sections*weightSectionCompleteness +
		readability*weightReadability +
		relevance*weightExperienceRelevance

	missing := missingKeywords(resumeText, jdText)

	result := &types.ATSResult{
		OverallScore:        overall,
		ScoreCategory:       types.CategoryForScore(overall),
		KeywordMatch:        factor(keyword, keywordRecommendations(keyword, missing)),
		Formatting:          factor(formatting, formattingRecommendations(formatting)),
		SectionCompleteness: factor(sections, sectionRecommendations(sections, resumeText)),
		Readability:         factor(readability, readabilityRecommendations(readability)),
		ExperienceRelevance: factor(relevance, relevanceRecommendations(relevance)),
		MissingKeywords:     missing,
		FormattingIssues:    formattingIssues(resumeText),
	}
	return result
}

func factor(score float64, recs []string) types.FactorScore {
	return types.FactorScore{
		Score:           score,
		Category:        types.CategoryForScore(score),
		Recommendations: recs,
	}
}

// keywordMatchScore is the fraction of unique job-description skills
// present (case-insensitively) in the resume skill set.
func keywordMatchScore(resumeSkills, jdSkills []string) float64 {
	if len(jdSkills) == 0 {
		return 0.5
	}
	resumeSet := lowerSet(resumeSkills)
	jdSet := lowerSet(jdSkills)

	matched := 0
	for skill := range jdSet {
		if resumeSet[skill] {
			matched++
		}
	}
	return float64(matched) / float64(len(jdSet))
}

// formattingScore starts at 0.5 and deducts for layout patterns that
// confuse ATS parsers, floored at 0.1.
func formattingScore(text string) float64 {
	score := 0.5
	var issues float64

	if hasPipeTable(text) {
		issues += 0.2
	}
	if looksMultiColumn(text) {
		issues += 0.15
	}
	if hasPageNumbers(text) {
		issues += 0.1
	}
	for _, ch := range decorativeChars {
		if strings.Contains(text, ch) {
			issues += 0.05
		}
	}

	score -= issues
	if score < 0.1 {
		score = 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// hasPipeTable reports lines with more than two pipe characters,
// the usual signature of a markdown or ASCII table.
func hasPipeTable(text string) bool {
	if !strings.Contains(text, "|") || !strings.Contains(text, "\n") {
		return false
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.Count(line, "|") > 2 {
			return true
		}
	}
	return false
}

// looksMultiColumn flags long documents whose average line length is
// short, which usually means side-by-side columns were flattened.
func looksMultiColumn(text string) bool {
	lines := strings.Split(text, "\n")
	if len(lines) <= 20 {
		return false
	}
	total := 0
	for _, line := range lines {
		total += len(line)
	}
	return float64(total)/float64(len(lines)) < 40
}

func hasPageNumbers(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "page") &&
		(strings.Contains(lower, "of") || strings.Contains(text, "/"))
}

// sectionCompletenessScore awards an equal share per keyword group
// found anywhere in the resume.
func sectionCompletenessScore(text string) float64 {
	lower := strings.ToLower(text)
	found := 0
	for _, group := range sectionKeywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				found++
				break
			}
		}
	}
	return float64(found) / float64(len(sectionKeywordGroups))
}

// readabilityScore blends average sentence length (ideal 15-20 words)
// with a long-paragraph penalty.
func readabilityScore(text string) float64 {
	sentences := strings.Split(text, ".")
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0.5
	}

	avg := float64(len(words)) / float64(len(sentences))
	var sentenceScore float64
	switch {
	case avg >= 15 && avg <= 20:
		sentenceScore = 1.0
	case (avg >= 10 && avg < 15) || (avg > 20 && avg <= 25):
		sentenceScore = 0.8
	case (avg >= 5 && avg < 10) || (avg > 25 && avg <= 30):
		sentenceScore = 0.6
	default:
		sentenceScore = 0.4
	}

	paragraphScore := 0.5
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) > 0 {
		long := 0
		for _, p := range paragraphs {
			if len(strings.Fields(p)) > 100 {
				long++
			}
		}
		paragraphScore = 1.0 - float64(long)/float64(len(paragraphs))*0.5
		if paragraphScore < 0.2 {
			paragraphScore = 0.2
		}
	}

	return sentenceScore*0.6 + paragraphScore*0.4
}

// experienceRelevanceScore is the lexical overlap of content words
// (longer than 3 characters) between the two documents, as a fraction
// of the job description's vocabulary.
func experienceRelevanceScore(resumeText, jdText string) float64 {
	jdWords := contentWords(jdText)
	if len(jdWords) == 0 {
		return 0.5
	}
	resumeWords := contentWords(resumeText)

	overlap := 0
	for w := range jdWords {
		if resumeWords[w] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(jdWords))
}

// missingKeywords returns up to 10 repeated job-description content
// words absent from the resume, sorted for determinism.
func missingKeywords(resumeText, jdText string) []string {
	jdTokens := wordPattern.FindAllString(strings.ToLower(jdText), -1)
	resumeWords := contentWords(resumeText)

	counts := make(map[string]int)
	for _, w := range jdTokens {
		counts[w]++
	}

	seen := make(map[string]bool)
	var missing []string
	for _, w := range jdTokens {
		if len(w) <= 3 || stopwords[w] || resumeWords[w] || seen[w] {
			continue
		}
		if counts[w] > 1 {
			seen[w] = true
			missing = append(missing, w)
		}
	}

	sort.Strings(missing)
	if len(missing) > 10 {
		missing = missing[:10]
	}
	return missing
}

// formattingIssues describes the layout problems the formatting factor
// penalized, for display to the user.
func formattingIssues(text string) []string {
	var issues []string
	if hasPipeTable(text) {
		issues = append(issues, "Tables detected; ATS systems may not parse tables correctly")
	}
	if looksMultiColumn(text) {
		issues = append(issues, "Possible multiple-column layout; ATS systems read left to right")
	}
	if hasPageNumbers(text) {
		issues = append(issues, "Page numbers detected; not necessary for ATS")
	}
	var found []string
	for _, ch := range decorativeChars {
		if ch == "•" {
			continue
		}
		if strings.Contains(text, ch) {
			found = append(found, ch)
		}
	}
	if len(found) > 0 {
		issues = append(issues, fmt.Sprintf("Special characters detected (%s); use standard bullet points instead", strings.Join(found, ", ")))
	}
	return issues
}

func keywordRecommendations(score float64, missing []string) []string {
	if score >= recommendationCut {
		return nil
	}
	var recs []string
	if len(missing) > 0 {
		top := missing
		if len(top) > 5 {
			top = top[:5]
		}
		recs = append(recs, "Add these keywords from the job description: "+strings.Join(top, ", "))
	}
	return append(recs, "Mirror the language used in the job description")
}

func formattingRecommendations(score float64) []string {
	if score >= recommendationCut {
		return nil
	}
	return []string{
		"Remove tables and use a single-column layout",
		"Use standard bullet points (- or *) instead of special characters",
		"Remove headers, footers, and page numbers",
	}
}

func sectionRecommendations(score float64, resumeText string) []string {
	if score >= recommendationCut {
		return nil
	}
	lower := strings.ToLower(resumeText)
	var recs []string
	if !containsAny(lower, "summary", "objective", "profile") {
		recs = append(recs, "Add a professional summary section")
	}
	if !containsAny(lower, "skills", "competencies") {
		recs = append(recs, "Add a dedicated skills section")
	}
	if !containsAny(lower, "projects", "portfolio") {
		recs = append(recs, "Consider adding a projects section")
	}
	return recs
}

func readabilityRecommendations(score float64) []string {
	if score >= recommendationCut {
		return nil
	}
	return []string{
		"Keep sentences between 15 and 20 words on average",
		"Break up paragraphs longer than 100 words",
	}
}

func relevanceRecommendations(score float64) []string {
	if score >= recommendationCut {
		return nil
	}
	return []string{
		"Quantify achievements with concrete metrics",
		"Use action verbs that match the job description",
	}
}

func contentWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(w) > 3 && !stopwords[w] {
			words[w] = true
		}
	}
	return words
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func lowerSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = true
	}
	return set
}
