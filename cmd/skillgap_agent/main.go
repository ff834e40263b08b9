// Package main provides the entry point for the skill gap analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgap_agent",
	Short: "Resume skill gap analyzer",
	Long:  "Skillgap Analyzer compares a resume against a job description, scores the overall match, surfaces prioritized skill gaps, and optionally checks ATS compatibility.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
