package journal

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"I had a wonderful day", 5},
		{"spaced   out\twords\nhere", 4},
	}
	for _, tt := range tests {
		if got := CountWords(tt.content); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

func TestMoodEmoji(t *testing.T) {
	want := map[int]string{1: "😢", 2: "😕", 3: "😐", 4: "🙂", 5: "😄", 0: "", 6: ""}
	for mood, emoji := range want {
		if got := MoodEmoji(mood); got != emoji {
			t.Errorf("MoodEmoji(%d) = %q, want %q", mood, got, emoji)
		}
	}
}

func TestValidMood(t *testing.T) {
	for mood := -1; mood <= 7; mood++ {
		want := mood >= 1 && mood <= 5
		if got := ValidMood(mood); got != want {
			t.Errorf("ValidMood(%d) = %v, want %v", mood, got, want)
		}
	}
}
