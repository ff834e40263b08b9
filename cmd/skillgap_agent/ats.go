package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-analyzer/internal/ats"
	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/extraction"
	"github.com/jonathan/skillgap-analyzer/internal/observability"
	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

var atsCommand = &cobra.Command{
	Use:   "ats",
	Short: "Check ATS compatibility of a resume against a job description",
	Long: `Scores how well a resume will survive automated applicant tracking
systems: keyword coverage, formatting hazards, section completeness,
readability, and experience relevance. Runs entirely offline.`,
	RunE: runATSCmd,
}

var (
	atsResume     string
	atsJob        string
	atsJobURL     string
	atsUseBrowser bool
	atsVerbose    bool
)

func init() {
	atsCommand.Flags().StringVarP(&atsResume, "resume", "r", "", "Path to resume text file (required)")
	atsCommand.Flags().StringVarP(&atsJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	atsCommand.Flags().StringVar(&atsJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	atsCommand.Flags().BoolVar(&atsUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	atsCommand.Flags().BoolVarP(&atsVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = atsCommand.MarkFlagRequired("resume")

	rootCmd.AddCommand(atsCommand)
}

func runATSCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if atsJob != "" && atsJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}
	if atsJob == "" && atsJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	resumeText, err := os.ReadFile(atsResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jdText, err := loadJobDescription(ctx, config.Config{
		Job:        atsJob,
		JobURL:     atsJobURL,
		UseBrowser: atsUseBrowser,
		Verbose:    atsVerbose,
	})
	if err != nil {
		return err
	}

	vocab := vocabulary.New()
	extractor := extraction.New(vocab)
	resumeSkills := extractor.Extract(string(resumeText), config.DefaultConfidenceThreshold)
	jdSkills := extractor.Extract(jdText, config.DefaultConfidenceThreshold)

	result := ats.NewScorer().Score(string(resumeText), jdText,
		types.SkillNames(resumeSkills), types.SkillNames(jdSkills))

	printer := observability.NewPrinter(os.Stdout)
	if atsVerbose {
		printer.PrintExtractedSkills("Resume Skills", resumeSkills)
		printer.PrintExtractedSkills("Job Description Skills", jdSkills)
	}
	printer.PrintATSResult(result)

	return nil
}
