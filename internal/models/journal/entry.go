package journal

import (
	"encoding/json"
	"strings"
	"time"
)

// Attachment describes a single uploaded file linked to an entry. The list
// is stored as-is on the entry and must round-trip without losing order or
// field names.
type Attachment struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// Entry is a single journal entry owned by one user.
type Entry struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Mood        *int            `json:"mood"`
	MoodEmoji   string          `json:"moodEmoji,omitempty"`
	Tags        []string        `json:"tags"`
	Attachments []Attachment    `json:"attachments,omitempty"`
	IsVoiceNote bool            `json:"isVoiceNote"`
	WordCount   int             `json:"wordCount"`
	AIInsights  json.RawMessage `json:"aiInsights,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MoodLog is a standalone mood check-in, optionally linked to the entry
// that produced it. Mood logs are never updated or deleted.
type MoodLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	EntryID   *string   `json:"entryId"`
	Mood      int       `json:"mood"`
	MoodEmoji string    `json:"moodEmoji"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStats is the derived per-user summary returned by the dashboard
// endpoint. It is computed on demand and never persisted.
type DashboardStats struct {
	Streak        int     `json:"streak"`
	TotalEntries  int     `json:"totalEntries"`
	AverageMood   float64 `json:"averageMood"`
	WellnessScore int     `json:"wellnessScore"`
}

// CountWords returns the number of whitespace-delimited tokens in content.
// Word counts are always derived from content at write time and are never
// settable by callers.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// MoodEmoji maps a 1-5 mood rating to its display emoji. Out-of-range
// values return an empty string.
func MoodEmoji(mood int) string {
	switch mood {
	case 1:
		return "😢"
	case 2:
		return "😕"
	case 3:
		return "😐"
	case 4:
		return "🙂"
	case 5:
		return "😄"
	default:
		return ""
	}
}

// ValidMood reports whether mood is on the 1-5 scale.
func ValidMood(mood int) bool {
	return mood >= 1 && mood <= 5
}
