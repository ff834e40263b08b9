package extraction

import (
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// supportingSentences returns up to types.MaxSupportingSentences
// verbatim sentences containing the surface form, in document order.
func supportingSentences(text, surface string) []string {
	needle := strings.ToLower(surface)
	var out []string
	for _, sentence := range splitSentences(text) {
		if strings.Contains(strings.ToLower(sentence), needle) {
			out = append(out, sentence)
			if len(out) == types.MaxSupportingSentences {
				break
			}
		}
	}
	return out
}

// splitSentences breaks text on '.', '!', '?' and newlines, trimming
// whitespace and dropping empty fragments. It makes no attempt at
// abbreviation handling; supporting snippets are for human audit, not
// parsing.
func splitSentences(text string) []string {
	var out []string
	var sb strings.Builder
	flush := func() {
		s := strings.TrimSpace(sb.String())
		sb.Reset()
		if s != "" {
			out = append(out, s)
		}
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?', '\n':
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()
	return out
}

// similarityRatio is a normalized edit-distance similarity in [0,1]:
// 1 means identical, 0 means nothing in common.
func similarityRatio(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(longest)
}

// levenshtein computes edit distance with a two-row table.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
