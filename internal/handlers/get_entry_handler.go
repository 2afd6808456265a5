package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// GetEntry handles fetching a single journal entry by id.
func (h *EntryHandler) GetEntry(c *gin.Context) {
	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	entryID := c.Param("id")
	if entryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	ctx := context.Background()

	// Check Redis cache first. Cached entries still go through the
	// ownership check below.
	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, entryCacheKey(entryID)).Result(); err == nil && cached != "" {
			var entry journal.Entry
			if err := json.Unmarshal([]byte(cached), &entry); err == nil && entry.UserID == userUID {
				c.JSON(http.StatusOK, entry)
				return
			}
		}
	}

	entry, err := h.entries.GetEntry(ctx, entryID, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		h.logError(c, err, "failed to fetch entry", "entry_id", entryID)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch entry"})
		return
	}

	if h.redis != nil {
		if payload, err := json.Marshal(entry); err == nil {
			h.redis.Set(ctx, entryCacheKey(entryID), payload, entryCacheTTL)
		}
	}

	c.JSON(http.StatusOK, entry)
}
