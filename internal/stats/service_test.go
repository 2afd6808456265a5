package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/Shivaganesh9/DailyReflectAI/internal/stats"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage/memory"
)

func intPtr(v int) *int { return &v }

// seedEntry creates an entry pinned to the given creation time.
func seedEntry(t *testing.T, store *memory.Store, userID string, createdAt time.Time, mood *int) {
	t.Helper()
	store.SetClock(func() time.Time { return createdAt })
	_, err := store.CreateEntry(context.Background(), storage.NewEntry{
		UserID:  userID,
		Title:   "Entry",
		Content: "Something worth remembering happened today.",
		Mood:    mood,
	})
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
}

func TestDashboardNewUserAllZero(t *testing.T) {
	service := stats.NewService(memory.NewStore())

	got, err := service.Dashboard(context.Background(), "new-user")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if got.Streak != 0 || got.TotalEntries != 0 || got.AverageMood != 0 || got.WellnessScore != 0 {
		t.Fatalf("expected all-zero stats for a new user, got %+v", got)
	}
}

func TestDashboardDerivedFields(t *testing.T) {
	store := memory.NewStore()
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	seedEntry(t, store, "user-1", today.Add(-2*time.Hour), intPtr(5))
	seedEntry(t, store, "user-1", today.AddDate(0, 0, -1), intPtr(4))
	seedEntry(t, store, "user-1", today.AddDate(0, 0, -2), nil)
	// Outside the 30-day window: counts toward the total only
	seedEntry(t, store, "user-1", today.AddDate(0, 0, -45), intPtr(1))
	// Another user's entry must not leak in
	seedEntry(t, store, "user-2", today.Add(-time.Hour), intPtr(1))

	service := stats.NewService(store)
	service.SetClock(func() time.Time { return today })

	got, err := service.Dashboard(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if got.Streak != 3 {
		t.Errorf("streak = %d, want 3", got.Streak)
	}
	if got.TotalEntries != 4 {
		t.Errorf("totalEntries = %d, want 4", got.TotalEntries)
	}
	if got.AverageMood != 4.5 {
		t.Errorf("averageMood = %v, want 4.5 (old entry excluded from window)", got.AverageMood)
	}
	// 3 of 30 days journaled, mood 4.5: 0.6*10 + 0.4*90 = 42
	if got.WellnessScore != 42 {
		t.Errorf("wellnessScore = %d, want 42", got.WellnessScore)
	}
}

func TestDashboardMoodlessEntriesCountForStreak(t *testing.T) {
	store := memory.NewStore()
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	seedEntry(t, store, "user-1", today.Add(-time.Hour), nil)
	seedEntry(t, store, "user-1", today.AddDate(0, 0, -1), nil)

	service := stats.NewService(store)
	service.SetClock(func() time.Time { return today })

	got, err := service.Dashboard(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if got.Streak != 2 {
		t.Errorf("streak = %d, want 2", got.Streak)
	}
	if got.AverageMood != 0 {
		t.Errorf("averageMood = %v, want 0 with no rated entries", got.AverageMood)
	}
}
