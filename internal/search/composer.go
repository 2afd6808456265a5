// Package search implements the entry search filter composition. Filtering
// is a pure function over a snapshot of a user's entries so the same
// contract holds for every storage backend.
package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
)

// ErrInvalidFilter is returned for malformed filter input, e.g. a date
// bound that cannot be parsed.
var ErrInvalidFilter = errors.New("invalid search filter")

const dateOnlyLayout = "2006-01-02"

// Filters is the transient search specification sent by the client. Every
// field is optional; set fields are combined with logical AND.
type Filters struct {
	Query    string   `json:"query"`
	Moods    []int    `json:"mood"`
	Tags     []string `json:"tags"`
	DateFrom string   `json:"dateFrom"`
	DateTo   string   `json:"dateTo"`
}

// IsEmpty reports whether no filter field is set. An all-empty filter
// deliberately matches nothing; callers wanting every entry must use the
// plain listing operation.
func (f Filters) IsEmpty() bool {
	return f.Query == "" && len(f.Moods) == 0 && len(f.Tags) == 0 &&
		f.DateFrom == "" && f.DateTo == ""
}

// Apply filters entries down to those matching every set predicate and
// returns them ordered by creation time, most recent first. The input slice
// is not modified. Malformed date bounds fail with ErrInvalidFilter.
func Apply(entries []journal.Entry, f Filters) ([]journal.Entry, error) {
	if f.IsEmpty() {
		return []journal.Entry{}, nil
	}

	from, to, err := parseDateBounds(f.DateFrom, f.DateTo)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))

	matched := make([]journal.Entry, 0, len(entries))
	for _, entry := range entries {
		if query != "" && !matchesQuery(entry, query) {
			continue
		}
		if len(f.Moods) > 0 && !matchesMood(entry, f.Moods) {
			continue
		}
		if len(f.Tags) > 0 && !matchesTags(entry, f.Tags) {
			continue
		}
		if from != nil && entry.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && entry.CreatedAt.After(*to) {
			continue
		}
		matched = append(matched, entry)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

// matchesQuery does a case-insensitive substring match against the entry
// title or content.
func matchesQuery(entry journal.Entry, query string) bool {
	return strings.Contains(strings.ToLower(entry.Title), query) ||
		strings.Contains(strings.ToLower(entry.Content), query)
}

// matchesMood requires the entry mood to be a member of the filter set.
// Entries without a mood never match a non-empty mood filter.
func matchesMood(entry journal.Entry, moods []int) bool {
	if entry.Mood == nil {
		return false
	}
	for _, mood := range moods {
		if *entry.Mood == mood {
			return true
		}
	}
	return false
}

// matchesTags requires at least one tag in common between the entry and the
// filter set.
func matchesTags(entry journal.Entry, tags []string) bool {
	for _, want := range tags {
		for _, have := range entry.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func parseDateBounds(dateFrom, dateTo string) (from, to *time.Time, err error) {
	if dateFrom != "" {
		t, _, perr := parseFilterDate(dateFrom)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if dateTo != "" {
		t, dateOnly, perr := parseFilterDate(dateTo)
		if perr != nil {
			return nil, nil, perr
		}
		if dateOnly {
			// A bare upper-bound date is inclusive of the whole day.
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		to = &t
	}
	return from, to, nil
}

// parseFilterDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseFilterDate(value string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(dateOnlyLayout, value); err == nil {
		return t.UTC(), true, nil
	}
	if t, err = time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("%w: bad date %q", ErrInvalidFilter, value)
}
