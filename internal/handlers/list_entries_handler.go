package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListEntries returns the user's entries newest first, with optional limit
// and offset query parameters. Negative values are rejected rather than
// silently ignored.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	entries, err := h.entries.ListEntries(context.Background(), userUID, limit, offset)
	if err != nil {
		h.logError(c, err, "failed to list entries")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// queryInt parses a non-negative integer query parameter, responding with
// 400 on malformed input.
func queryInt(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter"})
		return 0, false
	}
	return value, true
}
