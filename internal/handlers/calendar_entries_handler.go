package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// CalendarEntries returns the user's entries for one calendar month.
// Month is 1-12; the range covers [first of month, first of next month)
// in UTC.
func (h *EntryHandler) CalendarEntries(c *gin.Context) {
	userUID, ok := uidFromContext(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12"})
		return
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	ctx := context.Background()

	entries, err := h.entries.ListEntriesInRange(ctx, userUID, start, end)
	if err != nil {
		h.logError(c, err, "failed to list calendar entries", "year", year, "month", month)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
