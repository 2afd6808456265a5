package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// DeleteEntry removes an entry owned by the authenticated user.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
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

	if err := h.entries.DeleteEntry(ctx, entryID, userUID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		h.logError(c, err, "failed to delete entry", "entry_id", entryID)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to delete entry"})
		return
	}

	h.invalidateEntryCaches(ctx, entryID, userUID)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
