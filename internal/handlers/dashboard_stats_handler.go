package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/stats"
)

// StatsHandler serves the dashboard statistics endpoint.
type StatsHandler struct {
	stats  *stats.Service
	redis  *redis.Client
	logger *zap.SugaredLogger
}

// NewStatsHandler creates a new stats handler. redisClient may be nil;
// stats are then computed on every request.
func NewStatsHandler(service *stats.Service, redisClient *redis.Client, logger *zap.SugaredLogger) *StatsHandler {
	return &StatsHandler{stats: service, redis: redisClient, logger: logger}
}

// DashboardStats returns the user's streak, entry count, rolling mood
// average and wellness score. Results are cached briefly per user; entry
// and mood writes invalidate the cache.
func (h *StatsHandler) DashboardStats(c *gin.Context) {
	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	ctx := context.Background()
	cacheKey := statsCacheKey(userUID)

	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
			var s journal.DashboardStats
			if err := json.Unmarshal([]byte(cached), &s); err == nil {
				c.JSON(http.StatusOK, s)
				return
			}
		}
	}

	s, err := h.stats.Dashboard(ctx, userUID)
	if err != nil {
		h.logError(c, err, "failed to compute dashboard stats")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch dashboard stats"})
		return
	}

	if h.redis != nil {
		if data, err := json.Marshal(s); err == nil {
			h.redis.Set(ctx, cacheKey, data, statsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, s)
}
