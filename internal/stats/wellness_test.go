package stats

import "testing"

func TestAverageMood(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  float64
	}{
		{"no moods", nil, 0},
		{"single mood", []int{4}, 4},
		{"rounded to one decimal", []int{5, 4, 4}, 4.3},
		{"mixed", []int{1, 5}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageMood(tt.moods); got != tt.want {
				t.Fatalf("AverageMood(%v) = %v, want %v", tt.moods, got, tt.want)
			}
		})
	}
}

func TestWellnessScoreZeroActivity(t *testing.T) {
	if got := WellnessScore(0, 0); got != 0 {
		t.Fatalf("expected 0 for no activity, got %d", got)
	}
}

func TestWellnessScoreFullActivity(t *testing.T) {
	// 30 entries in 30 days at perfect mood: 0.6*100 + 0.4*100
	if got := WellnessScore(30, 5); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestWellnessScoreConsistencyCapped(t *testing.T) {
	// More than one entry per day must not push the score past 100
	if got := WellnessScore(90, 5); got != 100 {
		t.Fatalf("expected consistency capped at 100, got %d", got)
	}
}

func TestWellnessScoreBlend(t *testing.T) {
	// 15 of 30 days, mood 3: 0.6*50 + 0.4*60 = 54
	if got := WellnessScore(15, 3); got != 54 {
		t.Fatalf("expected 54, got %d", got)
	}
}

func TestWellnessScoreWithinBounds(t *testing.T) {
	for entries := 0; entries <= 60; entries += 5 {
		for mood := 0.0; mood <= 5.0; mood += 0.5 {
			got := WellnessScore(entries, mood)
			if got < 0 || got > 100 {
				t.Fatalf("WellnessScore(%d, %v) = %d, out of [0,100]", entries, mood, got)
			}
		}
	}
}
