// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedSkills outputs a summary of one document's extraction.
func (p *Printer) PrintExtractedSkills(label string, skills []types.ExtractedSkill) {
	var sb strings.Builder

	if len(skills) == 0 {
		sb.WriteString("(no skills found)")
	}
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := skills[i]
		sb.WriteString(fmt.Sprintf("%-24s %-14s %.2f x%d (%s)\n",
			s.Name, s.Category, s.Confidence, s.Occurrences, s.Method))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(skills)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("%s (%d skills)", label, len(skills)), strings.TrimRight(sb.String(), "\n"))
}

// PrintGapResult outputs a human-readable summary of the gap analysis.
func (p *Printer) PrintGapResult(result *types.GapAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.1f%%\n", result.OverallScore))
	sb.WriteString(fmt.Sprintf("Provider: %s", result.Provider))
	if result.Degraded {
		sb.WriteString(" (degraded to lexical matching)")
	}
	sb.WriteString("\n\n")

	writeMatches := func(title string, matches []types.SkillMatch) {
		if len(matches) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", title, len(matches)))
		count := min(len(matches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := matches[i]
			if m.ResumeSkill != "" {
				sb.WriteString(fmt.Sprintf("  %s <- %s (%.2f)\n", m.JDSkill, m.ResumeSkill, m.Similarity))
			} else {
				sb.WriteString(fmt.Sprintf("  %s (%.2f)\n", m.JDSkill, m.Similarity))
			}
		}
	}
	writeMatches("Matched", result.Matched)
	writeMatches("Partial", result.Partial)
	writeMatches("Missing", result.Missing)

	p.printBox("Gap Analysis", strings.TrimRight(sb.String(), "\n"))

	p.printPriorityGaps(result.PriorityGaps)
}

func (p *Printer) printPriorityGaps(gaps []types.PriorityGap) {
	if len(gaps) == 0 {
		return
	}

	var sb strings.Builder
	for _, g := range gaps {
		sb.WriteString(fmt.Sprintf("[%-6s] %s (importance %.2f)\n", g.Priority, g.Skill, g.Importance))
		sb.WriteString(fmt.Sprintf("         %s\n", g.SuggestedAction))
	}

	p.printBox("Priority Gaps", strings.TrimRight(sb.String(), "\n"))
}

// PrintATSResult outputs the ATS factor breakdown.
func (p *Printer) PrintATSResult(result *types.ATSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %.0f%% (%s)\n\n", result.OverallScore*100, result.ScoreCategory))

	factors := []struct {
		name   string
		factor types.FactorScore
	}{
		{"Keyword match", result.KeywordMatch},
		{"Formatting", result.Formatting},
		{"Sections", result.SectionCompleteness},
		{"Readability", result.Readability},
		{"Relevance", result.ExperienceRelevance},
	}
	for _, f := range factors {
		sb.WriteString(fmt.Sprintf("%-14s %.2f (%s)\n", f.name, f.factor.Score, f.factor.Category))
	}

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords: ")
		sb.WriteString(strings.Join(result.MissingKeywords, ", "))
		sb.WriteString("\n")
	}
	for _, issue := range result.FormattingIssues {
		sb.WriteString(fmt.Sprintf("! %s\n", issue))
	}

	p.printBox("ATS Compatibility", strings.TrimRight(sb.String(), "\n"))
}
