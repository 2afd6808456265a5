package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivaganesh9/DailyReflectAI/internal/search"
)

// SearchEntries filters the user's entries by text query, moods, tags
// and date range. An empty filter set returns an empty list rather than
// everything; plain listing goes through GET /api/entries.
func (h *EntryHandler) SearchEntries(c *gin.Context) {
	var filters search.Filters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	ctx := context.Background()

	entries, err := h.entries.ListEntries(ctx, userUID, 0, 0)
	if err != nil {
		h.logError(c, err, "failed to load entries for search")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to search entries"})
		return
	}

	results, err := search.Apply(entries, filters)
	if err != nil {
		if errors.Is(err, search.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logError(c, err, "failed to apply search filters")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search entries"})
		return
	}

	c.JSON(http.StatusOK, results)
}
