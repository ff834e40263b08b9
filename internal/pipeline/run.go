// Package pipeline orchestrates one full analysis: extraction of both
// documents, gap matching, and the optional ATS evaluation.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skillgap-analyzer/internal/ats"
	"github.com/jonathan/skillgap-analyzer/internal/extraction"
	"github.com/jonathan/skillgap-analyzer/internal/gap"
	"github.com/jonathan/skillgap-analyzer/internal/similarity"
	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

// Store persists finished reports. Implementations must be safe for
// concurrent use; a nil Store disables persistence.
type Store interface {
	SaveReport(ctx context.Context, report *types.Report) error
}

// Options holds configuration for one analysis run.
type Options struct {
	ResumeText string
	JDText     string

	ConfidenceThreshold float64
	SimilarityThreshold float64

	IncludeATS bool
	Verbose    bool
}

// Pipeline wires the analysis components together. Construct once and
// reuse; Run is safe to call concurrently.
type Pipeline struct {
	vocab    *vocabulary.Vocabulary
	provider similarity.Provider
	scorer   *ats.Scorer
	store    Store
}

// New creates a Pipeline. store may be nil to disable persistence.
func New(vocab *vocabulary.Vocabulary, provider similarity.Provider, store Store) (*Pipeline, error) {
	if vocab == nil {
		return nil, fmt.Errorf("pipeline requires a vocabulary")
	}
	if provider == nil {
		return nil, fmt.Errorf("pipeline requires a similarity provider")
	}
	return &Pipeline{
		vocab:    vocab,
		provider: provider,
		scorer:   ats.NewScorer(),
		store:    store,
	}, nil
}

// Run executes the full analysis and returns the assembled report.
// Empty documents are not errors: they produce empty skill sets and a
// zero-scored gap result.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*types.Report, error) {
	extractor := extraction.New(p.vocab)

	analyzer, err := gap.NewAnalyzer(p.provider, p.vocab, opts.SimilarityThreshold)
	if err != nil {
		return nil, err
	}

	// The two documents are independent, so extract them concurrently.
	var (
		resumeSkills, jdSkills []types.ExtractedSkill
		mu                     sync.Mutex
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		skills := extractor.Extract(opts.ResumeText, opts.ConfidenceThreshold)
		mu.Lock()
		resumeSkills = skills
		mu.Unlock()
		return gCtx.Err()
	})
	g.Go(func() error {
		skills := extractor.Extract(opts.JDText, opts.ConfidenceThreshold)
		mu.Lock()
		jdSkills = skills
		mu.Unlock()
		return gCtx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		log.Printf("[PIPELINE] Extracted %d resume skills, %d job-description skills",
			len(resumeSkills), len(jdSkills))
	}

	gapResult, err := analyzer.AnalyzeWithMultiset(ctx,
		types.SkillNames(resumeSkills), types.SkillNames(jdSkills), jdMultiset(jdSkills))
	if err != nil {
		return nil, fmt.Errorf("gap analysis failed: %w", err)
	}

	report := &types.Report{
		ID:           uuid.New(),
		CreatedAt:    time.Now().UTC(),
		ResumeSkills: resumeSkills,
		JDSkills:     jdSkills,
		Gap:          gapResult,
	}

	if opts.IncludeATS {
		report.ATS = p.scorer.Score(opts.ResumeText, opts.JDText,
			types.SkillNames(resumeSkills), types.SkillNames(jdSkills))
	}

	if p.store != nil {
		if err := p.store.SaveReport(ctx, report); err != nil {
			// Persistence is best-effort; the analysis itself succeeded.
			log.Printf("[PIPELINE] Failed to save report %s: %v", report.ID, err)
		}
	}

	return report, nil
}

// jdMultiset expands deduplicated job-description skills back into a
// multiset by occurrence count, so match totals and gap importance
// reflect how often each skill is actually demanded. Every skill
// contributes at least one element.
func jdMultiset(skills []types.ExtractedSkill) []string {
	var names []string
	for _, s := range skills {
		n := s.Occurrences
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			names = append(names, s.Name)
		}
	}
	return names
}

// Summary renders a one-line human summary of a report.
func Summary(report *types.Report) string {
	if report == nil || report.Gap == nil {
		return "no analysis available"
	}
	g := report.Gap
	parts := fmt.Sprintf("score %.1f%%: %d matched, %d partial, %d missing",
		g.OverallScore, len(g.Matched), len(g.Partial), len(g.Missing))
	if g.Degraded {
		parts += " (lexical fallback)"
	}
	if report.ATS != nil {
		parts += fmt.Sprintf("; ATS %.0f%% (%s)", report.ATS.OverallScore*100, report.ATS.ScoreCategory)
	}
	return strings.TrimSpace(parts)
}
