package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	moodmodels "github.com/Shivaganesh9/DailyReflectAI/internal/models/mood_log"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

const defaultMoodLogLimit = 30

// MoodHandler serves the standalone mood check-in endpoints.
type MoodHandler struct {
	moods  storage.MoodLogStore
	redis  *redis.Client
	logger *zap.SugaredLogger
}

// NewMoodHandler creates a new mood handler. redisClient may be nil.
func NewMoodHandler(moods storage.MoodLogStore, redisClient *redis.Client, logger *zap.SugaredLogger) *MoodHandler {
	return &MoodHandler{moods: moods, redis: redisClient, logger: logger}
}

// ListMoodLogs returns the user's most recent mood check-ins.
func (h *MoodHandler) ListMoodLogs(c *gin.Context) {
	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	limit, ok := queryInt(c, "limit", defaultMoodLogLimit)
	if !ok {
		return
	}

	logs, err := h.moods.ListMoodLogs(context.Background(), userUID, limit)
	if err != nil {
		h.logError(c, err, "failed to list mood logs")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch mood logs"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// CreateMoodLog records a mood check-in, optionally tied to an entry.
func (h *MoodHandler) CreateMoodLog(c *gin.Context) {
	var req moodmodels.CreateMoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	if !journal.ValidMood(req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mood must be between 1 and 5"})
		return
	}

	emoji := req.MoodEmoji
	if emoji == "" {
		emoji = journal.MoodEmoji(req.Mood)
	}

	ctx := context.Background()

	log, err := h.moods.CreateMoodLog(ctx, storage.NewMoodLog{
		UserID:    userUID,
		EntryID:   req.EntryID,
		Mood:      req.Mood,
		MoodEmoji: emoji,
		Tags:      req.Tags,
		Notes:     req.Notes,
	})
	if err != nil {
		h.logError(c, err, "failed to create mood log")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to record mood"})
		return
	}

	if h.redis != nil {
		h.redis.Del(ctx, statsCacheKey(userUID))
	}

	c.JSON(http.StatusCreated, log)
}
