package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/types"
)

const (
	testResume = `Senior backend engineer with six years of Python and Django.
Shipped containerized services with Docker and PostgreSQL.

Skills
Python, Django, Docker, PostgreSQL, Git`

	testJob = `We are hiring a platform engineer.
Requirements: strong Python, Kubernetes, and Terraform experience.
PostgreSQL knowledge is a plus.`
)

func writeInputFiles(t *testing.T) (resumePath, jobPath string) {
	t.Helper()
	dir := t.TempDir()
	resumePath = filepath.Join(dir, "resume.txt")
	jobPath = filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte(testResume), 0o644))
	require.NoError(t, os.WriteFile(jobPath, []byte(testJob), 0o644))
	return resumePath, jobPath
}

// The flag-merge tests run before any command execution, while no flag
// carries a stale Changed marker.

func TestResolveAnalyzeConfigFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "")

	resumePath, jobPath := writeInputFiles(t)

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	cfgJSON, err := json.Marshal(config.Config{
		Resume:              resumePath,
		Job:                 jobPath,
		SimilarityThreshold: 0.7,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, cfgJSON, 0o644))

	analyzeConfigPath = cfgPath
	defer func() { analyzeConfigPath = "" }()

	cfg, err := resolveAnalyzeConfig(analyzeCommand)
	require.NoError(t, err)
	assert.Equal(t, resumePath, cfg.Resume)
	assert.Equal(t, jobPath, cfg.Job)
	assert.InDelta(t, 0.7, cfg.SimilarityThreshold, 1e-9)
	assert.InDelta(t, config.DefaultConfidenceThreshold, cfg.ConfidenceThreshold, 1e-9)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestResolveAnalyzeConfigRequiresResume(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := resolveAnalyzeConfig(analyzeCommand)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--resume")
}

func TestLoadJobDescriptionFromFile(t *testing.T) {
	_, jobPath := writeInputFiles(t)

	text, err := loadJobDescription(context.Background(), config.Config{Job: jobPath})
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")
}

func TestAnalyzeCommandEndToEnd(t *testing.T) {
	// Without an API key the analyzer uses its lexical fallback, so the
	// command runs fully offline.
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	resumePath, jobPath := writeInputFiles(t)
	outputPath := filepath.Join(t.TempDir(), "report.json")

	rootCmd.SetArgs([]string{"analyze", "-r", resumePath, "-j", jobPath, "-o", outputPath})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var report types.Report
	require.NoError(t, json.Unmarshal(data, &report))
	require.NotNil(t, report.Gap)
	assert.True(t, report.Gap.Degraded)
	assert.NotEmpty(t, report.JDSkills)
	require.NoError(t, report.Validate())
}

func TestAnalyzeCommandRequiresJob(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	resumePath, _ := writeInputFiles(t)

	// Flag values persist across executions in one test binary, so the
	// job flags are explicitly cleared here.
	rootCmd.SetArgs([]string{"analyze", "-r", resumePath, "-j", "", "--job-url", "", "-o", ""})
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--job")
}
