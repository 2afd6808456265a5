package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
)

var (
	// ErrNotFound is returned when a record does not exist or is not owned
	// by the requesting user. Ownership misses are indistinguishable from
	// missing rows on purpose.
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable wraps failures of the underlying persistence layer.
	ErrUnavailable = errors.New("store unavailable")
)

// NewEntry carries the caller-settable fields of an entry. The store assigns
// identity and timestamps and derives the word count.
type NewEntry struct {
	UserID      string
	Title       string
	Content     string
	Mood        *int
	MoodEmoji   string
	Tags        []string
	Attachments []journal.Attachment
	IsVoiceNote bool
}

// EntryPatch describes a partial update. Nil fields are left untouched.
// When Content is set the stored word count is recomputed.
type EntryPatch struct {
	Title       *string
	Content     *string
	Mood        *int
	MoodEmoji   *string
	Tags        *[]string
	Attachments *[]journal.Attachment
	IsVoiceNote *bool
	AIInsights  json.RawMessage
}

// NewMoodLog carries the caller-settable fields of a mood check-in.
type NewMoodLog struct {
	UserID    string
	EntryID   *string
	Mood      int
	MoodEmoji string
	Tags      []string
	Notes     string
}

// EntryStore is the persistence contract for journal entries. All reads and
// writes are scoped to a single owning user; a limit <= 0 means no limit.
type EntryStore interface {
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]journal.Entry, error)
	GetEntry(ctx context.Context, id, userID string) (*journal.Entry, error)
	CreateEntry(ctx context.Context, data NewEntry) (*journal.Entry, error)
	UpdateEntry(ctx context.Context, id, userID string, patch EntryPatch) (*journal.Entry, error)
	DeleteEntry(ctx context.Context, id, userID string) error
	ListEntriesInRange(ctx context.Context, userID string, start, end time.Time) ([]journal.Entry, error)
}

// MoodLogStore is the persistence contract for mood check-ins.
type MoodLogStore interface {
	ListMoodLogs(ctx context.Context, userID string, limit int) ([]journal.MoodLog, error)
	CreateMoodLog(ctx context.Context, data NewMoodLog) (*journal.MoodLog, error)
	ListMoodLogsInRange(ctx context.Context, userID string, start, end time.Time) ([]journal.MoodLog, error)
}

// PromptStore persists one generated writing prompt per UTC calendar date.
type PromptStore interface {
	PromptForDate(ctx context.Context, date time.Time) (string, error)
	SavePrompt(ctx context.Context, date time.Time, prompt string) error
}
