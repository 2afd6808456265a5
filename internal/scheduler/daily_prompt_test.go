package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/ai"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage/memory"
)

func TestGenerateTodayPromptStoresFallbackWithoutAI(t *testing.T) {
	store := memory.NewStore()
	s := NewPromptScheduler(store, nil, zap.NewNop().Sugar())

	s.generateTodayPrompt()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	got, err := store.PromptForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("PromptForDate: %v", err)
	}
	if got != ai.DefaultWritingPrompt {
		t.Fatalf("prompt = %q, want fallback", got)
	}
}

func TestGenerateTodayPromptKeepsExisting(t *testing.T) {
	store := memory.NewStore()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := store.SavePrompt(context.Background(), today, "already here"); err != nil {
		t.Fatalf("SavePrompt: %v", err)
	}

	s := NewPromptScheduler(store, nil, zap.NewNop().Sugar())
	s.generateTodayPrompt()

	got, err := store.PromptForDate(context.Background(), today)
	if err != nil {
		t.Fatalf("PromptForDate: %v", err)
	}
	if got != "already here" {
		t.Fatalf("existing prompt overwritten: %q", got)
	}
}
