package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitPostgres initializes and returns a PostgreSQL connection pool
func InitPostgres() (*pgxpool.Pool, error) {
	// Get database URL from environment variable or use default
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// Default local development configuration
		host := getEnvOrDefault("POSTGRES_HOST", "localhost")
		port := getEnvOrDefault("POSTGRES_PORT", "5432")
		user := getEnvOrDefault("POSTGRES_USER", "dailyreflect")
		password := getEnvOrDefault("POSTGRES_PASSWORD", "")
		dbname := getEnvOrDefault("POSTGRES_DB", "dailyreflect")
		sslmode := getEnvOrDefault("POSTGRES_SSLMODE", "disable")

		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			user, password, host, port, dbname, sslmode)
	}

	// Configure connection pool
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Set connection pool settings
	config.MaxConns = 25
	config.MinConns = 5
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = time.Minute * 30
	config.HealthCheckPeriod = time.Minute * 5

	// Create connection pool
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Create tables if they don't exist
	if err := createTables(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pool, nil
}

// createTables creates all required tables if they don't exist
func createTables(ctx context.Context, pool *pgxpool.Pool) error {
	// Entries table - stores journal entries. Tags keep their insertion
	// order in a text array; attachments and AI insights round-trip as JSONB.
	entriesTable := `
		CREATE TABLE IF NOT EXISTS entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_uid VARCHAR(255) NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			mood SMALLINT CHECK (mood BETWEEN 1 AND 5),
			mood_emoji VARCHAR(16) NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			attachments JSONB,
			is_voice_note BOOLEAN NOT NULL DEFAULT FALSE,
			word_count INTEGER NOT NULL DEFAULT 0,
			ai_insights JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	// Mood logs table - stores standalone mood check-ins, optionally linked
	// to the entry that produced them
	moodLogsTable := `
		CREATE TABLE IF NOT EXISTS mood_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_uid VARCHAR(255) NOT NULL,
			entry_id UUID REFERENCES entries(id) ON DELETE SET NULL,
			mood SMALLINT NOT NULL CHECK (mood BETWEEN 1 AND 5),
			mood_emoji VARCHAR(16) NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	// Daily prompts - stores generated writing prompts by date
	dailyPromptsTable := `
		CREATE TABLE IF NOT EXISTS daily_prompts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			prompt TEXT NOT NULL,
			date DATE NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`

	// Create indexes for better performance
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_entries_user_uid ON entries(user_uid);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_user_created ON entries(user_uid, created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_mood_logs_user_uid ON mood_logs(user_uid);`,
		`CREATE INDEX IF NOT EXISTS idx_mood_logs_created_at ON mood_logs(created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_prompts_date ON daily_prompts(date);`,
	}

	// Execute table creation statements
	tables := []string{entriesTable, moodLogsTable, dailyPromptsTable}

	for _, table := range tables {
		if _, err := pool.Exec(ctx, table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Execute index creation statements
	for _, index := range indexes {
		if _, err := pool.Exec(ctx, index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default value if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
