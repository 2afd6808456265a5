package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ExportEntries writes all of the user's entries as a downloadable file.
// Supported formats are "json" and "txt".
func (h *EntryHandler) ExportEntries(c *gin.Context) {
	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	format := strings.ToLower(c.Param("format"))
	if format != "json" && format != "txt" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format must be json or txt"})
		return
	}

	ctx := context.Background()

	entries, err := h.entries.ListEntries(ctx, userUID, 0, 0)
	if err != nil {
		h.logError(c, err, "failed to load entries for export")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to export entries"})
		return
	}

	filename := fmt.Sprintf("journal-export-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "json" {
		c.JSON(http.StatusOK, entries)
		return
	}

	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(entry.Title)
		b.WriteString("\n")
		b.WriteString(entry.CreatedAt.UTC().Format("January 2, 2006"))
		if entry.Mood != nil {
			fmt.Fprintf(&b, " | Mood: %d/5 %s", *entry.Mood, entry.MoodEmoji)
		}
		if len(entry.Tags) > 0 {
			b.WriteString(" | Tags: ")
			b.WriteString(strings.Join(entry.Tags, ", "))
		}
		b.WriteString("\n\n")
		b.WriteString(entry.Content)
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}
