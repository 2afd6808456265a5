package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	createmodels "github.com/Shivaganesh9/DailyReflectAI/internal/models/create_entry"
	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// aiInsightMinChars gates insight generation: very short entries carry too
// little signal to analyze.
const aiInsightMinChars = 50

// CreateEntry handles creation of new journal entries. When a mood is
// provided a linked mood log is recorded as well. Insight generation is
// awaited up to the configured timeout; its failure never fails the write.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req createmodels.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	// Validate required fields
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}
	if req.Mood != nil && !journal.ValidMood(*req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mood must be between 1 and 5"})
		return
	}

	moodEmoji := req.MoodEmoji
	if moodEmoji == "" && req.Mood != nil {
		moodEmoji = journal.MoodEmoji(*req.Mood)
	}

	ctx := context.Background()

	entry, err := h.entries.CreateEntry(ctx, storage.NewEntry{
		UserID:      userUID,
		Title:       req.Title,
		Content:     req.Content,
		Mood:        req.Mood,
		MoodEmoji:   moodEmoji,
		Tags:        req.Tags,
		Attachments: req.Attachments,
		IsVoiceNote: req.IsVoiceNote,
	})
	if err != nil {
		h.logError(c, err, "failed to create entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	// Record the mood check-in that came with the entry
	if req.Mood != nil {
		_, err := h.moods.CreateMoodLog(ctx, storage.NewMoodLog{
			UserID:    userUID,
			EntryID:   &entry.ID,
			Mood:      *req.Mood,
			MoodEmoji: moodEmoji,
			Tags:      req.Tags,
		})
		if err != nil {
			h.logError(c, err, "failed to record mood log for entry", "entry_id", entry.ID)
		}
	}

	if patched := h.attachInsights(c, entry); patched != nil {
		entry = patched
	}

	h.invalidateEntryCaches(ctx, entry.ID, userUID)

	c.JSON(http.StatusCreated, entry)
}

// attachInsights generates AI insights for the entry and patches them on.
// Any failure is logged and swallowed; the returned entry is nil when no
// patch happened.
func (h *EntryHandler) attachInsights(c *gin.Context, entry *journal.Entry) *journal.Entry {
	if h.ai == nil || len(entry.Content) <= aiInsightMinChars {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.aiTimeout)
	defer cancel()

	insights, err := h.ai.GenerateInsights(ctx, entry.Content)
	if err != nil {
		h.logError(c, err, "failed to generate AI insights", "entry_id", entry.ID)
		return nil
	}

	payload, err := json.Marshal(insights)
	if err != nil {
		h.logError(c, err, "failed to encode AI insights", "entry_id", entry.ID)
		return nil
	}

	patch := storage.EntryPatch{AIInsights: payload}
	if entry.Mood == nil {
		// Fall back to the sentiment mood when the author didn't pick one
		mood := insights.Sentiment.Mood
		emoji := journal.MoodEmoji(mood)
		patch.Mood = &mood
		patch.MoodEmoji = &emoji
	}

	patched, err := h.entries.UpdateEntry(context.Background(), entry.ID, entry.UserID, patch)
	if err != nil {
		h.logError(c, err, "failed to store AI insights", "entry_id", entry.ID)
		return nil
	}
	return patched
}
