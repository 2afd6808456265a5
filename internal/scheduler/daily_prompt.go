package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/ai"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// dailyPromptSpec fires shortly after UTC midnight so the day's prompt is
// ready before anyone asks for it.
const dailyPromptSpec = "5 0 * * *"

// PromptScheduler pre-generates one writing prompt per UTC day.
type PromptScheduler struct {
	prompts     storage.PromptStore
	ai          *ai.Client
	cronManager *cron.Cron
	logger      *zap.SugaredLogger
}

// NewPromptScheduler creates a scheduler over the given prompt store.
// aiClient may be nil; the fallback prompt is stored instead.
func NewPromptScheduler(prompts storage.PromptStore, aiClient *ai.Client, logger *zap.SugaredLogger) *PromptScheduler {
	return &PromptScheduler{
		prompts:     prompts,
		ai:          aiClient,
		cronManager: cron.New(cron.WithLocation(time.UTC)),
		logger:      logger,
	}
}

// Start registers the daily job and launches the cron loop. It also runs
// the job once immediately to cover a restart mid-day.
func (s *PromptScheduler) Start() error {
	if _, err := s.cronManager.AddFunc(dailyPromptSpec, s.generateTodayPrompt); err != nil {
		return err
	}
	s.cronManager.Start()
	go s.generateTodayPrompt()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *PromptScheduler) Stop() {
	ctx := s.cronManager.Stop()
	<-ctx.Done()
}

func (s *PromptScheduler) generateTodayPrompt() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	existing, err := s.prompts.PromptForDate(ctx, today)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.logger.Errorw("failed to check existing daily prompt", "error", err)
		return
	}
	if existing != "" {
		return
	}

	prompt := ai.DefaultWritingPrompt
	if s.ai != nil {
		prompt = s.ai.GenerateWritingPrompt(ctx)
	}

	if err := s.prompts.SavePrompt(ctx, today, prompt); err != nil {
		s.logger.Errorw("failed to save daily prompt", "error", err)
		return
	}
	s.logger.Infow("daily writing prompt generated", "date", today.Format("2006-01-02"))
}
