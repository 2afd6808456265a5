// Package stats derives per-user dashboard statistics (journaling streak,
// rolling mood average, wellness score) from entry snapshots. The
// calculations are pure functions of the snapshot and an explicit "today"
// so they stay deterministic under test.
package stats

import "time"

// streakHorizonDays bounds how far back the streak walk looks. Entries
// older than this can never extend the current streak.
const streakHorizonDays = 365

const dayLayout = "2006-01-02"

// CurrentStreak returns the number of consecutive calendar days ending at
// today (UTC day boundary) on which at least one entry was written. Today
// not yet having an entry does not break an ongoing streak; any earlier gap
// does.
func CurrentStreak(today time.Time, entryTimes []time.Time) int {
	day := startOfDayUTC(today)
	cutoff := day.AddDate(0, 0, -streakHorizonDays)

	days := make(map[string]struct{}, len(entryTimes))
	for _, t := range entryTimes {
		d := startOfDayUTC(t)
		if d.Before(cutoff) {
			continue
		}
		days[d.Format(dayLayout)] = struct{}{}
	}

	if _, ok := days[day.Format(dayLayout)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[day.Format(dayLayout)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func startOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
