// Package memory holds a map-backed implementation of the storage
// contracts. It backs tests and lets the server run without PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// Store keeps entries, mood logs and daily prompts in process memory. All
// methods are safe for concurrent use. Identity is store-assigned uuids.
type Store struct {
	mu       sync.RWMutex
	entries  map[string]journal.Entry
	moodLogs map[string]journal.MoodLog
	prompts  map[string]string
	now      func() time.Time
}

// NewStore builds an empty in-memory store.
func NewStore() *Store {
	return &Store{
		entries:  make(map[string]journal.Entry),
		moodLogs: make(map[string]journal.MoodLog),
		prompts:  make(map[string]string),
		now:      time.Now,
	}
}

// SetClock overrides the store's notion of "now" for deterministic tests.
func (s *Store) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Store) ListEntries(ctx context.Context, userID string, limit, offset int) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]journal.Entry, 0)
	for _, entry := range s.entries {
		if entry.UserID == userID {
			entries = append(entries, cloneEntry(entry))
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	if offset > 0 {
		if offset >= len(entries) {
			return []journal.Entry{}, nil
		}
		entries = entries[offset:]
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Store) GetEntry(ctx context.Context, id, userID string) (*journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok || entry.UserID != userID {
		return nil, storage.ErrNotFound
	}
	out := cloneEntry(entry)
	return &out, nil
}

func (s *Store) CreateEntry(ctx context.Context, data storage.NewEntry) (*journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := journal.Entry{
		ID:          uuid.New().String(),
		UserID:      data.UserID,
		Title:       data.Title,
		Content:     data.Content,
		Mood:        cloneIntPtr(data.Mood),
		MoodEmoji:   data.MoodEmoji,
		Tags:        cloneStrings(data.Tags),
		Attachments: cloneAttachments(data.Attachments),
		IsVoiceNote: data.IsVoiceNote,
		WordCount:   journal.CountWords(data.Content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.entries[entry.ID] = entry

	out := cloneEntry(entry)
	return &out, nil
}

func (s *Store) UpdateEntry(ctx context.Context, id, userID string, patch storage.EntryPatch) (*journal.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || entry.UserID != userID {
		return nil, storage.ErrNotFound
	}

	if patch.Title != nil {
		entry.Title = *patch.Title
	}
	if patch.Content != nil {
		entry.Content = *patch.Content
		entry.WordCount = journal.CountWords(*patch.Content)
	}
	if patch.Mood != nil {
		mood := *patch.Mood
		entry.Mood = &mood
	}
	if patch.MoodEmoji != nil {
		entry.MoodEmoji = *patch.MoodEmoji
	}
	if patch.Tags != nil {
		entry.Tags = cloneStrings(*patch.Tags)
	}
	if patch.Attachments != nil {
		entry.Attachments = cloneAttachments(*patch.Attachments)
	}
	if patch.IsVoiceNote != nil {
		entry.IsVoiceNote = *patch.IsVoiceNote
	}
	if patch.AIInsights != nil {
		entry.AIInsights = append([]byte(nil), patch.AIInsights...)
	}
	entry.UpdatedAt = s.now()
	s.entries[id] = entry

	out := cloneEntry(entry)
	return &out, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok || entry.UserID != userID {
		return storage.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *Store) ListEntriesInRange(ctx context.Context, userID string, start, end time.Time) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]journal.Entry, 0)
	for _, entry := range s.entries {
		if entry.UserID != userID {
			continue
		}
		if entry.CreatedAt.Before(start) || entry.CreatedAt.After(end) {
			continue
		}
		entries = append(entries, cloneEntry(entry))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *Store) ListMoodLogs(ctx context.Context, userID string, limit int) ([]journal.MoodLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]journal.MoodLog, 0)
	for _, log := range s.moodLogs {
		if log.UserID == userID {
			logs = append(logs, cloneMoodLog(log))
		}
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	if limit > 0 && limit < len(logs) {
		logs = logs[:limit]
	}
	return logs, nil
}

func (s *Store) CreateMoodLog(ctx context.Context, data storage.NewMoodLog) (*journal.MoodLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := journal.MoodLog{
		ID:        uuid.New().String(),
		UserID:    data.UserID,
		EntryID:   cloneStringPtr(data.EntryID),
		Mood:      data.Mood,
		MoodEmoji: data.MoodEmoji,
		Tags:      cloneStrings(data.Tags),
		Notes:     data.Notes,
		CreatedAt: s.now(),
	}
	s.moodLogs[log.ID] = log

	out := cloneMoodLog(log)
	return &out, nil
}

func (s *Store) ListMoodLogsInRange(ctx context.Context, userID string, start, end time.Time) ([]journal.MoodLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]journal.MoodLog, 0)
	for _, log := range s.moodLogs {
		if log.UserID != userID {
			continue
		}
		if log.CreatedAt.Before(start) || log.CreatedAt.After(end) {
			continue
		}
		logs = append(logs, cloneMoodLog(log))
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	return logs, nil
}

func (s *Store) PromptForDate(ctx context.Context, date time.Time) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prompt, ok := s.prompts[date.UTC().Format("2006-01-02")]
	if !ok {
		return "", storage.ErrNotFound
	}
	return prompt, nil
}

func (s *Store) SavePrompt(ctx context.Context, date time.Time, prompt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts[date.UTC().Format("2006-01-02")] = prompt
	return nil
}

func cloneEntry(entry journal.Entry) journal.Entry {
	entry.Mood = cloneIntPtr(entry.Mood)
	entry.Tags = cloneStrings(entry.Tags)
	entry.Attachments = cloneAttachments(entry.Attachments)
	if entry.AIInsights != nil {
		entry.AIInsights = append([]byte(nil), entry.AIInsights...)
	}
	return entry
}

func cloneMoodLog(log journal.MoodLog) journal.MoodLog {
	log.EntryID = cloneStringPtr(log.EntryID)
	log.Tags = cloneStrings(log.Tags)
	return log
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}

func cloneAttachments(values []journal.Attachment) []journal.Attachment {
	if values == nil {
		return nil
	}
	return append([]journal.Attachment(nil), values...)
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneStringPtr(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
