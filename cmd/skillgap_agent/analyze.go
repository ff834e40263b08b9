package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/fetch"
	"github.com/jonathan/skillgap-analyzer/internal/observability"
	"github.com/jonathan/skillgap-analyzer/internal/pipeline"
	"github.com/jonathan/skillgap-analyzer/internal/schemas"
	"github.com/jonathan/skillgap-analyzer/internal/similarity"
	"github.com/jonathan/skillgap-analyzer/internal/types"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the skill gap between a resume and a job description",
	Long: `Extracts skills from both documents, matches them by embedding similarity
(with a lexical fallback when the provider is unreachable), scores the overall
match, and lists the most important missing skills.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath    string
	analyzeResume        string
	analyzeJob           string
	analyzeJobURL        string
	analyzeConfThreshold float64
	analyzeSimThreshold  float64
	analyzeModel         string
	analyzeAPIKey        string
	analyzeUseBrowser    bool
	analyzeIncludeATS    bool
	analyzeVerbose       bool
	analyzeOutputPath    string
	analyzeDatabaseURL   string
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCommand.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	analyzeCommand.Flags().Float64Var(&analyzeConfThreshold, "confidence-threshold", 0, "Minimum extraction confidence (0-1)")
	analyzeCommand.Flags().Float64Var(&analyzeSimThreshold, "similarity-threshold", 0, "Minimum similarity for a partial match (0-1)")
	analyzeCommand.Flags().StringVar(&analyzeModel, "model", "", "Gemini embedding model identifier")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	analyzeCommand.Flags().BoolVar(&analyzeIncludeATS, "ats", false, "Also compute the ATS compatibility score")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCommand.Flags().StringVarP(&analyzeOutputPath, "output", "o", "", "Write the JSON report to this file")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for report persistence
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jdText, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	var providerOpts []similarity.GeminiOption
	if cfg.EmbeddingModel != "" {
		providerOpts = append(providerOpts, similarity.WithModel(cfg.EmbeddingModel))
	}
	provider := similarity.NewGeminiProvider(cfg.APIKey, providerOpts...)
	defer provider.Close()

	var store pipeline.Store
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		store = database
	}

	pipe, err := pipeline.New(vocabulary.New(), provider, store)
	if err != nil {
		return err
	}

	report, err := pipe.Run(ctx, pipeline.Options{
		ResumeText:          string(resumeText),
		JDText:              jdText,
		ConfidenceThreshold: cfg.ConfidenceThreshold,
		SimilarityThreshold: cfg.SimilarityThreshold,
		IncludeATS:          cfg.IncludeATS,
		Verbose:             cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if err := schemas.ValidateReportValue(report); err != nil {
		return fmt.Errorf("report failed schema validation: %w", err)
	}

	printReport(report, cfg.Verbose)

	if analyzeOutputPath != "" {
		if err := writeReportJSON(report, analyzeOutputPath); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", analyzeOutputPath)
	}

	return nil
}

// resolveAnalyzeConfig merges the config file, CLI flags, and defaults
// into the final configuration. Flags win over the file.
func resolveAnalyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if analyzeVerbose {
			fmt.Printf("Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("confidence-threshold") {
		cfg.ConfidenceThreshold = analyzeConfThreshold
	}
	if cmd.Flags().Changed("similarity-threshold") {
		cfg.SimilarityThreshold = analyzeSimThreshold
	}
	if cmd.Flags().Changed("model") {
		cfg.EmbeddingModel = analyzeModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("ats") {
		cfg.IncludeATS = analyzeIncludeATS
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required (or set 'resume' in the config file)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("either --job or --job-url is required")
	}

	return cfg, nil
}

// loadJobDescription reads the job description from a file or fetches
// it from a URL.
func loadJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	result, err := fetch.JobDescription(ctx, cfg.JobURL, &fetch.Options{
		UseBrowser: cfg.UseBrowser,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return result.Text, nil
}

func printReport(report *types.Report, verbose bool) {
	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintExtractedSkills("Resume Skills", report.ResumeSkills)
		printer.PrintExtractedSkills("Job Description Skills", report.JDSkills)
	}
	printer.PrintGapResult(report.Gap)
	if report.ATS != nil {
		printer.PrintATSResult(report.ATS)
	}
	fmt.Println(pipeline.Summary(report))
}

func writeReportJSON(report *types.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
