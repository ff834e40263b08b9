// Package db provides PostgreSQL persistence for analysis reports.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/skillgap-analyzer/internal/types"
)

// ErrNotFound is returned when a report does not exist.
var ErrNotFound = errors.New("report not found")

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the analyses table if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			overall_score DOUBLE PRECISION NOT NULL,
			degraded BOOLEAN NOT NULL,
			report JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}

// SaveReport stores a finished report as JSONB, keyed by its ID.
func (db *DB) SaveReport(ctx context.Context, report *types.Report) error {
	if report == nil || report.Gap == nil {
		return fmt.Errorf("cannot save incomplete report")
	}

	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (id, created_at, overall_score, degraded, report)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET report = $5`,
		report.ID, report.CreatedAt, report.Gap.OverallScore, report.Gap.Degraded, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", report.ID, err)
	}
	return nil
}

// GetReport retrieves one report by ID.
func (db *DB) GetReport(ctx context.Context, id uuid.UUID) (*types.Report, error) {
	var jsonBytes []byte
	err := db.pool.QueryRow(ctx,
		`SELECT report FROM analyses WHERE id = $1`, id,
	).Scan(&jsonBytes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report %s: %w", id, err)
	}

	var report types.Report
	if err := json.Unmarshal(jsonBytes, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
	}
	return &report, nil
}

// ReportSummary is one row of the analysis history listing.
type ReportSummary struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	OverallScore float64   `json:"overall_score"`
	Degraded     bool      `json:"degraded"`
}

// ListReports returns the most recent analyses, newest first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]ReportSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, created_at, overall_score, degraded
		 FROM analyses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var summaries []ReportSummary
	for rows.Next() {
		var s ReportSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.OverallScore, &s.Degraded); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return summaries, nil
}
