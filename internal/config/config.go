// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Default thresholds applied when neither the config file nor flags set
// them.
const (
	DefaultConfidenceThreshold = 0.6
	DefaultSimilarityThreshold = 0.6
)

// knownEmbeddingModels are the model identifiers the similarity
// provider accepts. An unknown identifier is a configuration error
// surfaced before any analysis runs.
var knownEmbeddingModels = map[string]bool{
	"text-embedding-004": true,
	"embedding-001":      true,
}

var validate = validator.New()

// Config represents the analyzer configuration that can be loaded from
// a JSON file. All fields are optional; missing values use defaults or
// must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job description from

	// Matching behavior
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty" validate:"gte=0,lte=1"` // Extraction acceptance floor
	SimilarityThreshold float64 `json:"similarity_threshold,omitempty" validate:"gte=0,lte=1"` // Partial-match floor
	EmbeddingModel      string  `json:"embedding_model,omitempty"`                             // Gemini embedding model id
	APIKey              string  `json:"api_key,omitempty"`                                     // Gemini API key

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job pages
	IncludeATS bool `json:"include_ats,omitempty"` // Also compute the ATS compatibility score
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information

	// Server / persistence
	ListenAddr  string `json:"listen_addr,omitempty"` // HTTP listen address for serve mode
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (optional)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required
// fields are not checked here since those are handled by CLI flag
// validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.EmbeddingModel != "" && !knownEmbeddingModels[c.EmbeddingModel] {
		return fmt.Errorf("config error: unknown embedding model %q", c.EmbeddingModel)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.ConfidenceThreshold == 0 {
		if defaults.ConfidenceThreshold > 0 {
			result.ConfidenceThreshold = defaults.ConfidenceThreshold
		} else {
			result.ConfidenceThreshold = DefaultConfidenceThreshold
		}
	}
	if result.SimilarityThreshold == 0 {
		if defaults.SimilarityThreshold > 0 {
			result.SimilarityThreshold = defaults.SimilarityThreshold
		} else {
			result.SimilarityThreshold = DefaultSimilarityThreshold
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
