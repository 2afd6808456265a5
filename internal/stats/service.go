package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
	"github.com/Shivaganesh9/DailyReflectAI/internal/storage"
)

// Service assembles DashboardStats for a user. Every derived field is
// computed from a single entry snapshot fetched once per call, so a stats
// object is always internally consistent even when writes race with reads.
type Service struct {
	entries storage.EntryStore
	now     func() time.Time
}

// NewService builds a stats Service over the given entry store.
func NewService(entries storage.EntryStore) *Service {
	return &Service{entries: entries, now: time.Now}
}

// SetClock overrides the service's notion of "now". Used by tests to pin
// the streak walk to a fixed day.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Dashboard computes the user's dashboard statistics. A brand-new user with
// no entries gets all-zero stats, not an error.
func (s *Service) Dashboard(ctx context.Context, userID string) (*journal.DashboardStats, error) {
	entries, err := s.entries.ListEntries(ctx, userID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("fetch entry snapshot: %w", err)
	}

	now := s.now()
	windowStart := now.AddDate(0, 0, -wellnessWindowDays)

	entryTimes := make([]time.Time, 0, len(entries))
	entriesInWindow := 0
	var moodsInWindow []int
	for _, entry := range entries {
		entryTimes = append(entryTimes, entry.CreatedAt)
		if entry.CreatedAt.Before(windowStart) {
			continue
		}
		entriesInWindow++
		if entry.Mood != nil {
			moodsInWindow = append(moodsInWindow, *entry.Mood)
		}
	}

	averageMood := AverageMood(moodsInWindow)

	return &journal.DashboardStats{
		Streak:        CurrentStreak(now, entryTimes),
		TotalEntries:  len(entries),
		AverageMood:   averageMood,
		WellnessScore: WellnessScore(entriesInWindow, averageMood),
	}, nil
}
