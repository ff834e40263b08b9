package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/pipeline"
	"github.com/jonathan/skillgap-analyzer/internal/server"
	"github.com/jonathan/skillgap-analyzer/internal/similarity"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server exposing the analyzer over REST. Clients exchange
the operator API key for a bearer token at POST /v1/token, then call
POST /v1/analyze and POST /v1/ats. With a database configured, past
analyses are available under GET /v1/analyses.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}
	apiKeyConfig, err := config.NewAPIKeyConfig()
	if err != nil {
		return err
	}

	// The embedding API key is optional; without it the analyzer serves
	// lexical fallback results.
	provider := similarity.NewGeminiProvider(os.Getenv("GEMINI_API_KEY"))
	defer provider.Close()

	var database *db.DB
	var store pipeline.Store
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		database, err = db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		store = database
	} else {
		log.Printf("DATABASE_URL not set, analysis history disabled")
	}

	vocab := vocabulary.New()
	pipe, err := pipeline.New(vocab, provider, store)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Addr:     serveAddr,
		Pipeline: pipe,
		Vocab:    vocab,
		Database: database,
		JWT:      jwtConfig,
		APIKey:   apiKeyConfig,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
