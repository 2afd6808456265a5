package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PromptStore persists one generated writing prompt per UTC date in the
// daily_prompts table.
type PromptStore struct {
	pool *pgxpool.Pool
}

// NewPromptStore builds a PromptStore over the given connection pool.
func NewPromptStore(pool *pgxpool.Pool) *PromptStore {
	return &PromptStore{pool: pool}
}

func (s *PromptStore) PromptForDate(ctx context.Context, date time.Time) (string, error) {
	var prompt string
	err := s.pool.QueryRow(ctx,
		`SELECT prompt FROM daily_prompts WHERE date = $1`,
		date.UTC().Format("2006-01-02"),
	).Scan(&prompt)
	if err != nil {
		return "", storeErr(err)
	}
	return prompt, nil
}

func (s *PromptStore) SavePrompt(ctx context.Context, date time.Time, prompt string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO daily_prompts (prompt, date)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET prompt = EXCLUDED.prompt
	`, prompt, date.UTC().Format("2006-01-02"))
	return storeErr(err)
}
