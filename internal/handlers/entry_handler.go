package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/ai"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

const (
	entryCacheTTL = 24 * time.Hour
	statsCacheTTL = 5 * time.Minute
)

// EntryHandler serves the journal entry CRUD, search, calendar and export
// operations. It talks to the stores through their interfaces so the same
// handlers run against PostgreSQL or the in-memory store.
type EntryHandler struct {
	entries   storage.EntryStore
	moods     storage.MoodLogStore
	redis     *redis.Client
	ai        *ai.Client
	aiTimeout time.Duration
	logger    *zap.SugaredLogger
}

// NewEntryHandler creates a new entry handler. redis and aiClient may be
// nil; caching and insight generation are then skipped.
func NewEntryHandler(entries storage.EntryStore, moods storage.MoodLogStore, redisClient *redis.Client, aiClient *ai.Client, aiTimeout time.Duration, logger *zap.SugaredLogger) *EntryHandler {
	return &EntryHandler{
		entries:   entries,
		moods:     moods,
		redis:     redisClient,
		ai:        aiClient,
		aiTimeout: aiTimeout,
		logger:    logger,
	}
}

// uidFromContext pulls the authenticated user's uid set by the auth
// middleware, writing the error response itself when missing.
func uidFromContext(c *gin.Context) (string, bool) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	userUID, ok := uid.(string)
	if !ok || userUID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user context"})
		return "", false
	}
	return userUID, true
}

func entryCacheKey(entryID string) string {
	return "entry:" + entryID
}

func statsCacheKey(userUID string) string {
	return "dashboard_stats:" + userUID
}

// invalidateEntryCaches drops the cached entry and the owner's cached
// dashboard stats after any write.
func (h *EntryHandler) invalidateEntryCaches(ctx context.Context, entryID, userUID string) {
	if h.redis == nil {
		return
	}
	keys := []string{statsCacheKey(userUID)}
	if entryID != "" {
		keys = append(keys, entryCacheKey(entryID))
	}
	h.redis.Del(ctx, keys...)
}
