package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestCreateEntryAssignsIdentityAndWordCount(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	entry, err := store.CreateEntry(ctx, storage.NewEntry{
		UserID:  "user-1",
		Title:   "First entry",
		Content: "I had a wonderful day today",
		Mood:    intPtr(5),
		Tags:    []string{"Gratitude"},
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected a store-assigned id")
	}
	if entry.WordCount != 6 {
		t.Fatalf("wordCount = %d, want 6", entry.WordCount)
	}
	if entry.CreatedAt.IsZero() || entry.UpdatedAt.IsZero() {
		t.Fatal("expected store-assigned timestamps")
	}

	got, err := store.GetEntry(ctx, entry.ID, "user-1")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if got.Title != "First entry" || *got.Mood != 5 {
		t.Fatalf("unexpected round-trip: %+v", got)
	}
}

func TestGetEntryHidesOtherUsers(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	entry, err := store.CreateEntry(ctx, storage.NewEntry{UserID: "user-1", Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	if _, err := store.GetEntry(ctx, entry.ID, "user-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
}

func TestUpdateEntryRecomputesWordCount(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	entry, err := store.CreateEntry(ctx, storage.NewEntry{
		UserID:  "user-1",
		Title:   "t",
		Content: "one two three",
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	updated, err := store.UpdateEntry(ctx, entry.ID, "user-1", storage.EntryPatch{
		Content: strPtr("one two three four five"),
	})
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if updated.WordCount != 5 {
		t.Fatalf("wordCount = %d, want 5", updated.WordCount)
	}
	if updated.Title != "t" {
		t.Fatalf("unpatched field changed: %q", updated.Title)
	}
}

func TestUpdateEntryNilFieldsUntouched(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	entry, err := store.CreateEntry(ctx, storage.NewEntry{
		UserID:  "user-1",
		Title:   "Keep me",
		Content: "body",
		Mood:    intPtr(3),
		Tags:    []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	updated, err := store.UpdateEntry(ctx, entry.ID, "user-1", storage.EntryPatch{Mood: intPtr(5)})
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if updated.Title != "Keep me" || updated.Content != "body" || len(updated.Tags) != 2 {
		t.Fatalf("nil patch fields modified: %+v", updated)
	}
	if *updated.Mood != 5 {
		t.Fatalf("mood = %d, want 5", *updated.Mood)
	}
}

func TestAttachmentsRoundTripPreservesOrderAndFields(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	attachments := []journal.Attachment{
		{ID: "a1", Filename: "a1.png", OriginalName: "sunset.png", Mimetype: "image/png", Size: 1234, URL: "/uploads/a1.png"},
		{ID: "a2", Filename: "a2.m4a", OriginalName: "note.m4a", Mimetype: "audio/mp4", Size: 9876, URL: "/uploads/a2.m4a"},
	}

	entry, err := store.CreateEntry(ctx, storage.NewEntry{
		UserID:      "user-1",
		Title:       "With files",
		Content:     "see attachments",
		Attachments: attachments,
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	got, err := store.GetEntry(ctx, entry.ID, "user-1")
	if err != nil {
		t.Fatalf("GetEntry: %v", err)
	}
	if len(got.Attachments) != 2 {
		t.Fatalf("attachments = %d, want 2", len(got.Attachments))
	}
	for i := range attachments {
		if got.Attachments[i] != attachments[i] {
			t.Fatalf("attachment %d = %+v, want %+v", i, got.Attachments[i], attachments[i])
		}
	}
}

func TestDeleteEntry(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	entry, err := store.CreateEntry(ctx, storage.NewEntry{UserID: "user-1", Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	if err := store.DeleteEntry(ctx, entry.ID, "user-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := store.DeleteEntry(ctx, entry.ID, "user-1"); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if _, err := store.GetEntry(ctx, entry.ID, "user-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListEntriesPagination(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		at := base.AddDate(0, 0, i)
		store.SetClock(func() time.Time { return at })
		if _, err := store.CreateEntry(ctx, storage.NewEntry{UserID: "user-1", Title: "t", Content: "c"}); err != nil {
			t.Fatalf("CreateEntry: %v", err)
		}
	}

	page, err := store.ListEntries(ctx, "user-1", 2, 1)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page size = %d, want 2", len(page))
	}
	// Newest first: offset 1 skips June 5th
	if !page[0].CreatedAt.Equal(base.AddDate(0, 0, 3)) {
		t.Fatalf("page[0] createdAt = %v, want June 4th", page[0].CreatedAt)
	}

	all, err := store.ListEntries(ctx, "user-1", 0, 0)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("unlimited list = %d entries, want 5", len(all))
	}
}

func TestMoodLogLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	log, err := store.CreateMoodLog(ctx, storage.NewMoodLog{
		UserID:    "user-1",
		EntryID:   strPtr("entry-1"),
		Mood:      4,
		MoodEmoji: "🙂",
		Notes:     "pretty good",
	})
	if err != nil {
		t.Fatalf("CreateMoodLog: %v", err)
	}
	if log.ID == "" || log.CreatedAt.IsZero() {
		t.Fatal("expected store-assigned identity and timestamp")
	}

	logs, err := store.ListMoodLogs(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("ListMoodLogs: %v", err)
	}
	if len(logs) != 1 || logs[0].Mood != 4 || *logs[0].EntryID != "entry-1" {
		t.Fatalf("unexpected logs: %+v", logs)
	}

	other, err := store.ListMoodLogs(ctx, "user-2", 10)
	if err != nil {
		t.Fatalf("ListMoodLogs: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("mood logs leaked across users: %+v", other)
	}
}

func TestPromptPerDate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	if _, err := store.PromptForDate(ctx, day); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}
	if err := store.SavePrompt(ctx, day, "What made you smile today?"); err != nil {
		t.Fatalf("SavePrompt: %v", err)
	}
	got, err := store.PromptForDate(ctx, day)
	if err != nil {
		t.Fatalf("PromptForDate: %v", err)
	}
	if got != "What made you smile today?" {
		t.Fatalf("prompt = %q", got)
	}
}
