package search

import (
	"errors"
	"testing"
	"time"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
)

func intPtr(v int) *int { return &v }

func testEntries() []journal.Entry {
	at := func(value string) time.Time {
		t, _ := time.Parse(time.RFC3339, value)
		return t
	}
	return []journal.Entry{
		{
			ID:        "e1",
			Title:     "Morning walk",
			Content:   "A quiet stroll through the park before work.",
			Mood:      intPtr(4),
			Tags:      []string{"Health", "Outdoors"},
			CreatedAt: at("2025-06-01T08:00:00Z"),
		},
		{
			ID:        "e2",
			Title:     "Project deadline",
			Content:   "Shipped the quarterly report at last.",
			Mood:      intPtr(2),
			Tags:      []string{"Work"},
			CreatedAt: at("2025-06-03T18:30:00Z"),
		},
		{
			ID:        "e3",
			Title:     "Family dinner",
			Content:   "Cooked for everyone, great evening.",
			Mood:      intPtr(5),
			Tags:      []string{"Work", "Family"},
			CreatedAt: at("2025-06-05T20:00:00Z"),
		},
		{
			ID:        "e4",
			Title:     "Untitled thoughts",
			Content:   "Just writing things down.",
			Mood:      nil,
			Tags:      nil,
			CreatedAt: at("2025-06-04T10:00:00Z"),
		},
	}
}

func ids(entries []journal.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func assertIDs(t *testing.T, got []journal.Entry, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestApplyEmptyFilterMatchesNothing(t *testing.T) {
	got, err := Apply(testEntries(), Filters{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty filter must return no entries, got %d", len(got))
	}
}

func TestApplyQueryIsCaseInsensitive(t *testing.T) {
	got, err := Apply(testEntries(), Filters{Query: "QUARTERLY"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	assertIDs(t, got, "e2")
}

func TestApplyQueryMatchesTitleOrContent(t *testing.T) {
	got, err := Apply(testEntries(), Filters{Query: "walk"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	assertIDs(t, got, "e1")
}

func TestApplyMoodSetExcludesUnratedEntries(t *testing.T) {
	got, err := Apply(testEntries(), Filters{Moods: []int{4, 5}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// e4 has no mood, e2 is mood 2; neither may appear
	assertIDs(t, got, "e3", "e1")
}

func TestApplyTagIntersection(t *testing.T) {
	got, err := Apply(testEntries(), Filters{Tags: []string{"Work"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	assertIDs(t, got, "e3", "e2")
}

func TestApplyFiltersCombineWithAnd(t *testing.T) {
	got, err := Apply(testEntries(), Filters{Tags: []string{"Work"}, Moods: []int{5}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	assertIDs(t, got, "e3")
}

func TestApplyDateRangeInclusive(t *testing.T) {
	got, err := Apply(testEntries(), Filters{DateFrom: "2025-06-03", DateTo: "2025-06-04"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// e2 was written at 18:30 on the lower-bound day, e4 at 10:00 on the
	// upper-bound day; both fall inside
	assertIDs(t, got, "e4", "e2")
}

func TestApplyResultsNewestFirst(t *testing.T) {
	got, err := Apply(testEntries(), Filters{DateFrom: "2025-06-01"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	assertIDs(t, got, "e3", "e4", "e2", "e1")
}

func TestApplyMalformedDateFails(t *testing.T) {
	_, err := Apply(testEntries(), Filters{DateFrom: "June 3rd"})
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	entries := testEntries()
	if _, err := Apply(entries, Filters{Query: "walk"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if entries[0].ID != "e1" || entries[3].ID != "e4" {
		t.Fatal("input slice order changed")
	}
}
