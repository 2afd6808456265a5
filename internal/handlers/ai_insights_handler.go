package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/ai"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// aiAnalyzeMinChars is the minimum text length accepted for ad-hoc
// sentiment analysis.
const aiAnalyzeMinChars = 10

// AIHandler serves the AI analysis endpoints. It degrades gracefully: when
// no AI client is configured the endpoints return neutral fallbacks instead
// of errors.
type AIHandler struct {
	entries storage.EntryStore
	prompts storage.PromptStore
	ai      *ai.Client
	redis   *redis.Client
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewAIHandler creates a new AI handler. aiClient and redisClient may be nil.
func NewAIHandler(entries storage.EntryStore, prompts storage.PromptStore, aiClient *ai.Client, redisClient *redis.Client, timeout time.Duration, logger *zap.SugaredLogger) *AIHandler {
	return &AIHandler{
		entries: entries,
		prompts: prompts,
		ai:      aiClient,
		redis:   redisClient,
		timeout: timeout,
		logger:  logger,
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeSentiment runs sentiment analysis over an arbitrary piece of text.
func (h *AIHandler) AnalyzeSentiment(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if _, ok := uidFromContext(c); !ok {
		return
	}

	if len(strings.TrimSpace(req.Text)) < aiAnalyzeMinChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is too short to analyze"})
		return
	}

	if h.ai == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI analysis is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	sentiment, err := h.ai.AnalyzeSentiment(ctx, req.Text)
	if err != nil {
		h.logError(c, err, "failed to analyze sentiment")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to analyze text"})
		return
	}

	c.JSON(http.StatusOK, sentiment)
}

// WeeklyInsights analyzes the user's last seven days of entries. A week
// with no entries yields a neutral payload rather than an error.
func (h *AIHandler) WeeklyInsights(c *gin.Context) {
	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	ctx := context.Background()
	now := time.Now().UTC()

	entries, err := h.entries.ListEntriesInRange(ctx, userUID, now.AddDate(0, 0, -7), now)
	if err != nil {
		h.logError(c, err, "failed to load entries for weekly insights")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch entries"})
		return
	}

	if len(entries) == 0 || h.ai == nil {
		c.JSON(http.StatusOK, ai.WeeklyInsights{
			MoodTrend:       "No entries this week",
			KeyPatterns:     []string{},
			Recommendations: []string{"Try writing a journal entry to get personalized insights"},
			WellnessScore:   50,
		})
		return
	}

	texts := make([]string, 0, len(entries))
	for _, entry := range entries {
		texts = append(texts, entry.Content)
	}

	aiCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	insights, err := h.ai.GenerateWeeklyInsights(aiCtx, texts)
	if err != nil {
		h.logError(c, err, "failed to generate weekly insights")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to generate insights"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

// WritingPrompt returns today's writing prompt. One prompt is generated per
// UTC day: the scheduler usually pre-fills it, this handler fills the gap
// on demand and caches the result.
func (h *AIHandler) WritingPrompt(c *gin.Context) {
	if _, ok := uidFromContext(c); !ok {
		return
	}

	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	cacheKey := "writing_prompt:" + today.Format("2006-01-02")

	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			c.JSON(http.StatusOK, gin.H{"prompt": cached})
			return
		}
	}

	prompt, err := h.prompts.PromptForDate(ctx, today)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		h.logError(c, err, "failed to load daily prompt")
	}

	if prompt == "" {
		prompt = ai.DefaultWritingPrompt
		if h.ai != nil {
			aiCtx, cancel := context.WithTimeout(ctx, h.timeout)
			prompt = h.ai.GenerateWritingPrompt(aiCtx)
			cancel()
		}
		if err := h.prompts.SavePrompt(ctx, today, prompt); err != nil {
			h.logError(c, err, "failed to save daily prompt")
		}
	}

	if h.redis != nil {
		h.redis.Set(ctx, cacheKey, prompt, 24*time.Hour)
	}

	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}
