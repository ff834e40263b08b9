package gap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

// maxPriorityGaps caps the report at the most important gaps.
const maxPriorityGaps = 10

// Priority cut-points over normalized importance.
const (
	highImportanceCut   = 0.05
	mediumImportanceCut = 0.02
)

// Prioritize ranks missing skills by how often they appear in the raw
// job-description skill multiset. Importance is the skill's share of
// the total multiset; ranking is by importance descending, capped at
// maxPriorityGaps, with ties kept in missing-list order.
func Prioritize(missing []types.SkillMatch, jdMultiset []string, vocab *vocabulary.Vocabulary) []types.PriorityGap {
	if len(missing) == 0 || len(jdMultiset) == 0 {
		return nil
	}

	counts := make(map[string]int, len(jdMultiset))
	for _, name := range jdMultiset {
		counts[strings.ToLower(name)]++
	}
	total := float64(len(jdMultiset))

	gaps := make([]types.PriorityGap, 0, len(missing))
	for _, m := range missing {
		importance := float64(counts[strings.ToLower(m.JDSkill)]) / total
		gaps = append(gaps, types.PriorityGap{
			Skill:           m.JDSkill,
			Priority:        tierFor(importance),
			Importance:      importance,
			Similarity:      m.Similarity,
			SuggestedAction: suggestedAction(m.JDSkill, vocab),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Importance > gaps[j].Importance
	})
	if len(gaps) > maxPriorityGaps {
		gaps = gaps[:maxPriorityGaps]
	}
	return gaps
}

func tierFor(importance float64) types.PriorityTier {
	switch {
	case importance > highImportanceCut:
		return types.PriorityHigh
	case importance > mediumImportanceCut:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// suggestedAction picks a remediation template by skill category.
func suggestedAction(skill string, vocab *vocabulary.Vocabulary) string {
	category := types.CategoryUnknown
	if vocab != nil {
		category = vocab.CategoryOf(skill)
	}
	switch category {
	case types.CategoryTechnical:
		return fmt.Sprintf("Take an online course in %s and build a hands-on project with it", skill)
	case types.CategorySoft:
		return fmt.Sprintf("Practice %s through team projects or workshops", skill)
	case types.CategoryTools:
		return fmt.Sprintf("Work through hands-on tutorials to get comfortable with %s", skill)
	case types.CategoryCertifications:
		return fmt.Sprintf("Pursue the %s certification", skill)
	default:
		return fmt.Sprintf("Build familiarity with %s through targeted learning resources", skill)
	}
}
