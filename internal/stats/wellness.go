package stats

import "math"

// wellnessWindowDays is the activity window the wellness score and the
// reported mood average are computed over.
const wellnessWindowDays = 30

// AverageMood returns the plain mean of the given mood values rounded to
// one decimal place, or 0 when there are none.
func AverageMood(moods []int) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, mood := range moods {
		sum += mood
	}
	avg := float64(sum) / float64(len(moods))
	return math.Round(avg*10) / 10
}

// WellnessScore blends journaling consistency with recent mood into a
// single 0-100 index: 60% weight on how many of the last 30 days saw
// entries, 40% on the mood average over the same window. Zero activity
// yields 0.
func WellnessScore(entriesInWindow int, averageMood float64) int {
	consistency := math.Min(100, float64(entriesInWindow)/float64(wellnessWindowDays)*100)
	moodScore := averageMood / 5 * 100
	score := int(math.Round(consistency*0.6 + moodScore*0.4))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
