package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	updatemodels "github.com/Shivaganesh9/DailyReflectAI/internal/models/update_entry"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// UpdateEntry handles partial updates of an entry. A content change
// recomputes the word count and regenerates AI insights, mirroring the
// create flow.
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	var req updatemodels.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	entryID := c.Param("id")
	if entryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		return
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
		return
	}
	if req.Mood != nil && !journal.ValidMood(*req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mood must be between 1 and 5"})
		return
	}

	patch := storage.EntryPatch{
		Title:       req.Title,
		Content:     req.Content,
		Mood:        req.Mood,
		MoodEmoji:   req.MoodEmoji,
		Tags:        req.Tags,
		Attachments: req.Attachments,
		IsVoiceNote: req.IsVoiceNote,
	}
	if req.Mood != nil && req.MoodEmoji == nil {
		emoji := journal.MoodEmoji(*req.Mood)
		patch.MoodEmoji = &emoji
	}

	ctx := context.Background()

	entry, err := h.entries.UpdateEntry(ctx, entryID, userUID, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		h.logError(c, err, "failed to update entry", "entry_id", entryID)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to update entry"})
		return
	}

	// Regenerate insights only when the text changed
	if req.Content != nil {
		if patched := h.attachInsights(c, entry); patched != nil {
			entry = patched
		}
	}

	h.invalidateEntryCaches(ctx, entry.ID, userUID)

	c.JSON(http.StatusOK, entry)
}
