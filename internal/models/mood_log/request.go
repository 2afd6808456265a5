package models

type CreateMoodLogRequest struct {
	EntryID   *string  `json:"entryId"`
	Mood      int      `json:"mood"`
	MoodEmoji string   `json:"moodEmoji"`
	Tags      []string `json:"tags"`
	Notes     string   `json:"notes"`
}
