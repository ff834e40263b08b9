// Package extraction finds normalized skill mentions in free text.
package extraction

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

// Confidence model constants. A detection starts at baseConfidence and
// accumulates bonuses; the final value is clamped to
// [minConfidence, maxConfidence].
const (
	baseConfidence = 0.5
	minConfidence  = 0.1
	maxConfidence  = 1.0

	frequencyBonusPerHit = 0.1
	frequencyBonusCap    = 0.3
	sectionBonus         = 0.1

	exactBonus      = 0.1
	contextualBonus = 0.1
	variationBonus  = 0.05
	acronymBonus    = 0.05

	// shortTokenPenalty applies to canonical names of at most
	// shortTokenLen runes, which match too easily inside prose.
	shortTokenPenalty = 0.15
	shortTokenLen     = 3

	// fuzzyAcceptRatio is the minimum normalized edit-distance ratio for
	// the fuzzy path; fuzzyFloor is the confidence floor any fuzzy hit
	// must clear regardless of the caller's threshold.
	fuzzyAcceptRatio = 0.8
	fuzzyFloor       = 0.3
	fuzzyMinTokenLen = 4
)

// sectionMarkers raise confidence when present anywhere in the
// document, on the theory that a resume naming these sections is
// describing abilities rather than mentioning terms in passing.
var sectionMarkers = []string{"skills", "experience", "projects"}

// contextPatterns capture skill phrases introduced by ability language.
var contextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)experienced (?:in|with) ([\w\s+#./-]+)`),
	regexp.MustCompile(`(?i)proficient (?:in|with|at) ([\w\s+#./-]+)`),
	regexp.MustCompile(`(?i)expertise (?:in|with) ([\w\s+#./-]+)`),
	regexp.MustCompile(`(?i)knowledge (?:of|in) ([\w\s+#./-]+)`),
	regexp.MustCompile(`(?i)skilled (?:in|at|with) ([\w\s+#./-]+)`),
	regexp.MustCompile(`(?i)familiar with ([\w\s+#./-]+)`),
	regexp.MustCompile(`(?i)hands.on experience (?:in|with) ([\w\s+#./-]+)`),
	regexp.MustCompile(`(?i)working knowledge of ([\w\s+#./-]+)`),
}

// Extractor finds vocabulary skills in document text. It is stateless
// between calls and safe for concurrent use.
type Extractor struct {
	vocab *vocabulary.Vocabulary
}

// New creates an extractor over the given vocabulary.
func New(vocab *vocabulary.Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

// candidate is one detection before deduplication.
type candidate struct {
	name        string
	method      types.MatchMethod
	surface     string // the form that actually matched, for sentence lookup
	occurrences int
	confidence  float64
}

// Extract returns at most one ExtractedSkill per canonical skill found
// in text, each with confidence at or above confidenceThreshold.
// Malformed or empty text never causes an error; it yields an empty
// result.
func (e *Extractor) Extract(text string, confidenceThreshold float64) []types.ExtractedSkill {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	inSection := containsAny(lower, sectionMarkers)
	tokens := tokenize(text)

	best := make(map[string]candidate)
	consider := func(c candidate) {
		c.confidence = clamp(c.confidence, minConfidence, maxConfidence)
		prev, seen := best[c.name]
		if !seen || c.confidence > prev.confidence {
			best[c.name] = c
		}
	}

	// Exact and variation substring detection over the whole catalog.
	for _, entry := range e.vocab.Entries() {
		if occ := countMentions(lower, tokens, entry.Name); occ > 0 {
			consider(e.scored(entry.Name, entry.Name, types.MethodExact, occ, inSection))
		}
		for _, variation := range entry.Variations {
			if occ := countMentions(lower, tokens, variation); occ > 0 {
				consider(e.scored(entry.Name, variation, types.MethodVariation, occ, inSection))
			}
		}
	}

	// Context-pattern detection: phrases introduced by ability language.
	for _, canonical := range e.contextMatches(text) {
		occ := countMentions(lower, tokens, canonical)
		if occ == 0 {
			occ = 1
		}
		consider(e.scored(canonical, canonical, types.MethodContextual, occ, inSection))
	}

	// Acronym detection on standalone upper-case tokens.
	for _, tok := range tokens {
		if !looksLikeAcronym(tok) {
			continue
		}
		canonical, ok := e.vocab.ResolveAcronym(tok)
		if !ok {
			continue
		}
		occ := countTokens(tokens, tok)
		consider(e.scored(canonical, tok, types.MethodAcronym, occ, inSection))
	}

	// Fuzzy detection for near-miss spellings of single-word skills.
	for _, c := range e.fuzzyMatches(tokens, inSection) {
		consider(c)
	}

	out := make([]types.ExtractedSkill, 0, len(best))
	for _, c := range best {
		if c.confidence < confidenceThreshold {
			continue
		}
		out = append(out, types.ExtractedSkill{
			Name:        c.name,
			Category:    e.vocab.CategoryOf(c.name),
			Confidence:  c.confidence,
			Occurrences: c.occurrences,
			Sentences:   supportingSentences(text, c.surface),
			Method:      c.method,
		})
	}

	// Deterministic order: confidence descending, then name.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// scored builds a candidate with the full confidence model applied.
func (e *Extractor) scored(canonical, surface string, method types.MatchMethod, occurrences int, inSection bool) candidate {
	conf := baseConfidence
	conf += minFloat(frequencyBonusCap, frequencyBonusPerHit*float64(occurrences))
	if inSection {
		conf += sectionBonus
	}
	switch method {
	case types.MethodExact:
		conf += exactBonus
	case types.MethodContextual:
		conf += contextualBonus
	case types.MethodVariation:
		conf += variationBonus
	case types.MethodAcronym:
		conf += acronymBonus
	}
	if len([]rune(surface)) <= shortTokenLen {
		conf -= shortTokenPenalty
	}
	return candidate{
		name:        canonical,
		method:      method,
		surface:     surface,
		occurrences: occurrences,
		confidence:  conf,
	}
}

// contextMatches runs the ability-language patterns and canonicalizes
// the captured phrases. A capture like "Python and Docker" yields both
// skills.
func (e *Extractor) contextMatches(text string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, pat := range contextPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			for _, chunk := range splitPhrase(m[1]) {
				canonical, ok := e.canonicalizePrefix(chunk)
				if ok && !seen[canonical] {
					seen[canonical] = true
					found = append(found, canonical)
				}
			}
		}
	}
	return found
}

// canonicalizePrefix tries progressively shorter word prefixes of a
// phrase against the vocabulary, longest first, so "Machine Learning
// models" resolves to "Machine Learning".
func (e *Extractor) canonicalizePrefix(phrase string) (string, bool) {
	words := strings.Fields(phrase)
	if len(words) > 3 {
		words = words[:3]
	}
	for n := len(words); n > 0; n-- {
		joined := strings.Join(words[:n], " ")
		if canonical, ok := e.vocab.Canonicalize(joined); ok {
			return canonical, true
		}
		// The capture class keeps trailing punctuation; retry without it.
		if canonical, ok := e.vocab.Canonicalize(strings.TrimRight(joined, ".-/ ")); ok {
			return canonical, true
		}
	}
	return "", false
}

// fuzzyMatches compares document tokens against single-word canonical
// names by normalized edit distance, catching near-miss spellings like
// "Kubernets". Very short tokens are skipped entirely; accepted hits
// have their confidence scaled by the ratio and must clear fuzzyFloor.
func (e *Extractor) fuzzyMatches(tokens []string, inSection bool) []candidate {
	var out []candidate
	for _, entry := range e.vocab.Entries() {
		if strings.ContainsRune(entry.Name, ' ') {
			continue
		}
		nameLower := strings.ToLower(entry.Name)
		if len([]rune(nameLower)) < fuzzyMinTokenLen {
			continue
		}
		for _, tok := range tokens {
			tokLower := strings.ToLower(tok)
			if tokLower == nameLower || len([]rune(tokLower)) < fuzzyMinTokenLen {
				continue
			}
			ratio := similarityRatio(tokLower, nameLower)
			if ratio < fuzzyAcceptRatio {
				continue
			}
			c := e.scored(entry.Name, tok, types.MethodVariation, 1, inSection)
			c.confidence = clamp(c.confidence*ratio, minConfidence, maxConfidence)
			if c.confidence < fuzzyFloor {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

// countMentions counts occurrences of needle in the document. Needles
// longer than shortTokenLen runes count as substrings; shorter ones
// only count as standalone tokens so that "go" never fires inside
// "google".
func countMentions(lowerText string, tokens []string, needle string) int {
	n := strings.ToLower(needle)
	if len([]rune(n)) > shortTokenLen {
		return strings.Count(lowerText, n)
	}
	return countTokens(tokens, needle)
}

func countTokens(tokens []string, needle string) int {
	count := 0
	for _, tok := range tokens {
		if strings.EqualFold(tok, needle) {
			count++
		}
	}
	return count
}

// tokenize splits text into word tokens, keeping + # . inside words so
// tech names like "C++", "C#" and "Node.js" survive.
func tokenize(text string) []string {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#' && r != '.'
	})
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.Trim(tok, ".")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// looksLikeAcronym reports whether a token is plausibly a curated
// abbreviation: short, and mostly upper-case or digits ("NLP", "K8s").
// Ordinary capitalized words like "Go" are rejected so that prose never
// triggers the acronym table.
func looksLikeAcronym(tok string) bool {
	runes := []rune(tok)
	if len(runes) < 2 || len(runes) > 4 {
		return false
	}
	upperOrDigit := 0
	for _, r := range runes {
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			upperOrDigit++
		}
	}
	return upperOrDigit >= len(runes)-1 && upperOrDigit >= 2
}

// phraseSeparators splits a captured context phrase into skill chunks.
var phraseSeparators = regexp.MustCompile(`(?i)\s*(?:,|;| and )\s*`)

func splitPhrase(phrase string) []string {
	parts := phraseSeparators.Split(phrase, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
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

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
